package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func filterFlights() []domain.Flight {
	return []domain.Flight{
		{ID: "a", Airline: "Aeroflot", Price: domain.PriceInfo{Amount: 189}, Stops: 0, Duration: domain.NewDurationInfo(275), DepartureTime: time.Date(2025, 6, 1, 6, 45, 0, 0, time.UTC)},
		{ID: "b", Airline: "S7 Airlines", Price: domain.PriceInfo{Amount: 165}, Stops: 1, Duration: domain.NewDurationInfo(380), DepartureTime: time.Date(2025, 6, 1, 16, 10, 0, 0, time.UTC)},
		{ID: "c", Airline: "Lufthansa", Price: domain.PriceInfo{Amount: 220}, Stops: 0, Duration: domain.NewDurationInfo(330), DepartureTime: time.Date(2025, 6, 1, 10, 15, 0, 0, time.UTC)},
	}
}

func TestFilterOptions_Matches(t *testing.T) {
	tests := []struct {
		name    string
		filter  *FilterOptions
		wantIDs []string
	}{
		{name: "nil filter keeps everything", filter: nil, wantIDs: []string{"a", "b", "c"}},
		{name: "max price", filter: &FilterOptions{MaxPrice: ptrFloat(190)}, wantIDs: []string{"a", "b"}},
		{name: "direct only", filter: &FilterOptions{MaxStops: ptrInt(0)}, wantIDs: []string{"a", "c"}},
		{name: "airline case-insensitive", filter: &FilterOptions{Airlines: []string{"lufthansa"}}, wantIDs: []string{"c"}},
		{name: "combined filters", filter: &FilterOptions{MaxPrice: ptrFloat(200), MaxStops: ptrInt(0)}, wantIDs: []string{"a"}},
		{name: "nothing matches", filter: &FilterOptions{MaxPrice: ptrFloat(10)}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(filterFlights(), tt.filter)
			ids := make([]string, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortFlights(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  SortOption
		wantIDs []string
	}{
		{name: "none keeps completion order", sortBy: SortNone, wantIDs: []string{"a", "b", "c"}},
		{name: "by price", sortBy: SortByPrice, wantIDs: []string{"b", "a", "c"}},
		{name: "by duration", sortBy: SortByDuration, wantIDs: []string{"a", "c", "b"}},
		{name: "by departure", sortBy: SortByDeparture, wantIDs: []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortFlights(filterFlights(), tt.sortBy)
			ids := make([]string, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortFlights_DoesNotMutateInput(t *testing.T) {
	input := filterFlights()
	_ = sortFlights(input, SortByPrice)
	assert.Equal(t, "a", input[0].ID)
}

func TestSortHotels(t *testing.T) {
	hotels := []domain.Hotel{
		{ID: "h1", Price: domain.PriceInfo{Amount: 120}, Rating: 4.8},
		{ID: "h2", Price: domain.PriceInfo{Amount: 95}, Rating: 4.2},
		{ID: "h3", Price: domain.PriceInfo{Amount: 110}, Rating: 3.9},
	}

	byPrice := sortHotels(hotels, SortByPrice)
	assert.Equal(t, "h2", byPrice[0].ID)

	byRating := sortHotels(hotels, SortByRating)
	assert.Equal(t, "h1", byRating[0].ID)

	unsorted := sortHotels(hotels, SortNone)
	assert.Equal(t, "h1", unsorted[0].ID)
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortOption("price"))
	assert.Equal(t, SortByRating, ParseSortOption("rating"))
	assert.Equal(t, SortNone, ParseSortOption(""))
	assert.Equal(t, SortNone, ParseSortOption("garbage"))
}
