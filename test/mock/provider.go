// Package mock provides test doubles for the travel aggregation engine.
// These mocks are designed for tests that need configurable behavior:
// delays, errors, panics, and fixed per-leg responses.
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

// Provider is a configurable implementation of domain.TravelProvider.
// Configure it with the builder methods, then hand it to a registry.
type Provider struct {
	name         string
	capabilities domain.Capability
	flights      []domain.Flight
	hotels       []domain.Hotel
	flightsErr   error
	hotelsErr    error
	delay        time.Duration
	panicOnCall  bool

	mu              sync.Mutex
	flightCallCount int
	hotelCallCount  int
}

// NewProvider creates a mock provider with the given name and capabilities.
func NewProvider(name string, capabilities domain.Capability) *Provider {
	return &Provider{
		name:         name,
		capabilities: capabilities,
	}
}

// WithFlights configures the flight results.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.flights = flights
	return p
}

// WithHotels configures the hotel results.
func (p *Provider) WithHotels(hotels []domain.Hotel) *Provider {
	p.hotels = hotels
	return p
}

// WithFlightsError makes SearchFlights fail with err.
func (p *Provider) WithFlightsError(err error) *Provider {
	p.flightsErr = err
	return p
}

// WithHotelsError makes SearchHotels fail with err.
func (p *Provider) WithHotelsError(err error) *Provider {
	p.hotelsErr = err
	return p
}

// WithError makes both operations fail with err.
func (p *Provider) WithError(err error) *Provider {
	p.flightsErr = err
	p.hotelsErr = err
	return p
}

// WithDelay makes every operation wait before responding.
// Useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithPanic makes every operation panic. Useful for testing isolation.
func (p *Provider) WithPanic() *Provider {
	p.panicOnCall = true
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Capabilities returns the configured capability set.
func (p *Provider) Capabilities() domain.Capability {
	return p.capabilities
}

// SearchFlights implements domain.TravelProvider.
func (p *Provider) SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	p.mu.Lock()
	p.flightCallCount++
	p.mu.Unlock()

	if err := p.simulate(ctx); err != nil {
		return nil, err
	}
	if p.flightsErr != nil {
		return nil, p.flightsErr
	}
	return p.flights, nil
}

// SearchHotels implements domain.TravelProvider.
func (p *Provider) SearchHotels(ctx context.Context, params domain.SearchParams) ([]domain.Hotel, error) {
	p.mu.Lock()
	p.hotelCallCount++
	p.mu.Unlock()

	if err := p.simulate(ctx); err != nil {
		return nil, err
	}
	if p.hotelsErr != nil {
		return nil, p.hotelsErr
	}
	return p.hotels, nil
}

// simulate applies the configured panic and delay, honoring ctx.
func (p *Provider) simulate(ctx context.Context) error {
	if p.panicOnCall {
		panic("mock provider panic")
	}
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return ctx.Err()
}

// FlightCalls returns how many times SearchFlights was invoked.
func (p *Provider) FlightCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flightCallCount
}

// HotelCalls returns how many times SearchHotels was invoked.
func (p *Provider) HotelCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hotelCallCount
}

// Ensure Provider implements domain.TravelProvider at compile time.
var _ domain.TravelProvider = (*Provider)(nil)

// SampleFlights returns count outbound flights attributed to provider.
func SampleFlights(provider string, count int) []domain.Flight {
	baseTime := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	flights := make([]domain.Flight, count)
	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		flights[i] = domain.Flight{
			ID:            provider + "_flight_" + strconv.Itoa(i+1),
			Airline:       "Test Air",
			Origin:        "Moscow",
			Destination:   "Paris",
			DepartureTime: departure,
			ArrivalTime:   departure.Add(4 * time.Hour),
			Duration:      domain.NewDurationInfo(240),
			Price:         domain.PriceInfo{Amount: 200 + float64(i)*15, Currency: "USD"},
			Source:        provider,
		}
	}
	return flights
}

// SampleReturnFlights returns count return legs attributed to provider.
func SampleReturnFlights(provider string, count int, returnDate string) []domain.Flight {
	flights := SampleFlights(provider, count)
	for i := range flights {
		flights[i].ID = provider + "_return_" + strconv.Itoa(i+1)
		flights[i].Origin, flights[i].Destination = flights[i].Destination, flights[i].Origin
		flights[i].ReturnDate = returnDate
	}
	return flights
}

// SampleHotels returns count hotels attributed to provider.
func SampleHotels(provider string, count int) []domain.Hotel {
	hotels := make([]domain.Hotel, count)
	for i := 0; i < count; i++ {
		hotels[i] = domain.Hotel{
			ID:        provider + "_hotel_" + strconv.Itoa(i+1),
			Name:      "Hotel " + strconv.Itoa(i+1),
			Location:  "Paris",
			Price:     domain.PriceInfo{Amount: 90 + float64(i)*10, Currency: "USD"},
			Rating:    4.0,
			Amenities: []string{"WiFi", "Breakfast"},
			CheckIn:   "2025-06-01",
			CheckOut:  "2025-06-08",
			Source:    provider,
		}
	}
	return hotels
}
