package usecase

import (
	"sort"
	"strings"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

// SortOption defines the available display orderings for search results.
type SortOption string

// Available sort options. The empty value keeps provider completion order,
// which is the aggregate's default.
const (
	SortNone        SortOption = ""
	SortByPrice     SortOption = "price"
	SortByDuration  SortOption = "duration"
	SortByDeparture SortOption = "departure"
	SortByRating    SortOption = "rating"
)

// IsValid checks if the sort option is a known value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNone, SortByPrice, SortByDuration, SortByDeparture, SortByRating:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption, falling back to
// completion order for unknown values.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortNone
}

// FilterOptions defines optional filters applied to flight results before
// they reach the wizard. Hotels are never filtered here; the wizard's
// multi-select covers that need.
type FilterOptions struct {
	// MaxPrice drops flights priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops flights with more stops (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only flights operated by these airlines (case-insensitive)
	Airlines []string `json:"airlines,omitempty"`
}

// Matches checks whether a flight passes every filter.
func (f *FilterOptions) Matches(flight domain.Flight) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && flight.Price.Amount > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, airline := range f.Airlines {
			if strings.EqualFold(airline, flight.Airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// applyFilters returns the flights passing every filter, preserving order.
func applyFilters(flights []domain.Flight, opts *FilterOptions) []domain.Flight {
	if opts == nil {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if opts.Matches(f) {
			result = append(result, f)
		}
	}
	return result
}

// sortFlights reorders flights for display. Sorting is stable so equal
// records keep their completion order.
func sortFlights(flights []domain.Flight, sortBy SortOption) []domain.Flight {
	if sortBy == SortNone || len(flights) <= 1 {
		return flights
	}

	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration.TotalMinutes < result[j].Duration.TotalMinutes
		})
	case SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		})
	}

	return result
}

// sortHotels reorders hotels for display.
func sortHotels(hotels []domain.Hotel, sortBy SortOption) []domain.Hotel {
	if len(hotels) <= 1 {
		return hotels
	}

	result := make([]domain.Hotel, len(hotels))
	copy(result, hotels)

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case SortByRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	default:
		return hotels
	}

	return result
}
