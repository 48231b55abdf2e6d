package booking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

const (
	mockFlightsPath = "../../../../docs/response-mock/booking_flights_response.json"
	mockHotelsPath  = "../../../../docs/response-mock/booking_hotels_response.json"
)

func searchParams() domain.SearchParams {
	return domain.SearchParams{
		Flights: domain.FlightParams{
			Origin:        "Moscow",
			Destination:   "Paris",
			DepartureDate: "2025-06-01",
			ReturnDate:    "2025-06-08",
			Passengers:    2,
		},
		Hotels: domain.HotelParams{
			Destination: "Paris",
			CheckIn:     "2025-06-01",
			CheckOut:    "2025-06-08",
			Guests:      2,
			Rooms:       1,
		},
	}
}

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter("", "")
	assert.Equal(t, "booking", adapter.Name())
}

func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.TravelProvider = (*Adapter)(nil)
}

func TestAdapter_Capabilities(t *testing.T) {
	adapter := NewAdapter("", "")
	assert.True(t, adapter.Capabilities().Has(domain.CapabilityFlights))
	assert.True(t, adapter.Capabilities().Has(domain.CapabilityHotels))
	assert.True(t, adapter.Capabilities().Has(domain.CapabilityCombined))
}

func TestAdapter_SearchFlights(t *testing.T) {
	adapter := NewAdapter(mockFlightsPath, mockHotelsPath)

	flights, err := adapter.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)
	require.Len(t, flights, 4)

	first := flights[0]
	assert.Equal(t, "booking_flight_1", first.ID)
	assert.Equal(t, "Airline A", first.Airline)
	assert.Equal(t, "Moscow", first.Origin)
	assert.Equal(t, "Paris", first.Destination)
	assert.Equal(t, "4h 15m", first.Duration.Formatted)
	assert.Equal(t, float64(299), first.Price.Amount)
	assert.Equal(t, "booking", first.Source)
	assert.Equal(t, "https://www.booking.com/flights/search", first.BookingURL)

	var returns int
	for _, f := range flights {
		if f.IsReturn() {
			returns++
			assert.Equal(t, "Paris", f.Origin)
			assert.Equal(t, "2025-06-08", f.ReturnDate)
		}
	}
	assert.Equal(t, 2, returns)
}

func TestAdapter_SearchFlights_OneWay(t *testing.T) {
	adapter := NewAdapter(mockFlightsPath, mockHotelsPath)

	params := searchParams()
	params.Flights.ReturnDate = ""

	flights, err := adapter.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, flights, 2)
	for _, f := range flights {
		assert.False(t, f.IsReturn())
	}
}

func TestAdapter_SearchHotels(t *testing.T) {
	adapter := NewAdapter(mockFlightsPath, mockHotelsPath)

	hotels, err := adapter.SearchHotels(context.Background(), searchParams())
	require.NoError(t, err)
	require.Len(t, hotels, 2)

	first := hotels[0]
	assert.Equal(t, "booking_hotel_1", first.ID)
	assert.Equal(t, "Grand Hotel Central", first.Name)
	assert.Equal(t, "Paris", first.Location)
	assert.Equal(t, float64(120), first.Price.Amount)
	assert.Equal(t, 4.5, first.Rating)
	assert.Contains(t, first.Amenities, "Pool")
	assert.Equal(t, "2025-06-01", first.CheckIn)
	assert.Equal(t, "2025-06-08", first.CheckOut)
	assert.Equal(t, "booking", first.Source)
}

func TestAdapter_SearchHotels_MissingParams(t *testing.T) {
	adapter := NewAdapter(mockFlightsPath, mockHotelsPath)

	params := searchParams()
	params.Hotels.CheckIn = ""

	_, err := adapter.SearchHotels(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.EqualError(t, err, "missing required parameter: checkIn")
}

func TestAdapter_Search_FileNotFound(t *testing.T) {
	adapter := NewAdapter("/nonexistent/flights.json", "/nonexistent/hotels.json")

	_, err := adapter.SearchFlights(context.Background(), searchParams())
	require.Error(t, err)
	providerErr, ok := err.(*domain.ProviderError)
	require.True(t, ok)
	assert.Equal(t, ProviderName, providerErr.Provider)
	assert.True(t, providerErr.Retryable)

	_, err = adapter.SearchHotels(context.Background(), searchParams())
	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
}

func TestAdapter_Search_MalformedResponse(t *testing.T) {
	tempDir := t.TempDir()
	badPath := filepath.Join(tempDir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{ invalid json }`), 0644))

	adapter := NewAdapter(badPath, badPath)

	_, err := adapter.SearchFlights(context.Background(), searchParams())
	require.Error(t, err)
	assert.False(t, domain.IsRetryable(err))
}

func TestAdapter_Search_ErrorStatus(t *testing.T) {
	tempDir := t.TempDir()
	errPath := filepath.Join(tempDir, "err.json")
	require.NoError(t, os.WriteFile(errPath, []byte(`{"status": "error"}`), 0644))

	adapter := NewAdapter(errPath, errPath)

	_, err := adapter.SearchFlights(context.Background(), searchParams())
	require.Error(t, err)

	_, err = adapter.SearchHotels(context.Background(), searchParams())
	require.Error(t, err)
}

func TestAdapter_Search_ContextCancellation(t *testing.T) {
	adapter := NewAdapter(mockFlightsPath, mockHotelsPath)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.SearchFlights(ctx, searchParams())
	require.Error(t, err)
	providerErr, ok := err.(*domain.ProviderError)
	require.True(t, ok)
	assert.Equal(t, context.Canceled, providerErr.Err)

	_, err = adapter.SearchHotels(ctx, searchParams())
	require.Error(t, err)
}
