package domain

import (
	"fmt"
	"time"
)

// Flight represents a single flight offering from one provider.
// A Flight is created by a provider adapter during one search, lives for the
// duration of that search's Aggregate and is never mutated.
type Flight struct {
	// ID is unique within one search. Providers prefix their own identifiers
	// so id namespaces never collide across providers.
	ID string `json:"id"`

	// Airline is the operating airline's display name
	Airline string `json:"airline"`

	// Origin is the departure city or airport
	Origin string `json:"origin"`

	// Destination is the arrival city or airport
	Destination string `json:"destination"`

	// DepartureTime is the scheduled departure
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival
	ArrivalTime time.Time `json:"arrivalTime"`

	// Duration is the total travel time
	Duration DurationInfo `json:"duration"`

	// Price is the full fare for the searched passenger count
	Price PriceInfo `json:"price"`

	// Stops is the number of stops (0 = direct flight)
	Stops int `json:"stops"`

	// Source identifies the provider this result came from
	Source string `json:"source"`

	// BookingURL is an opaque external booking link
	BookingURL string `json:"bookingUrl,omitempty"`

	// ReturnDate marks a return leg; outbound legs leave it empty
	ReturnDate string `json:"returnDate,omitempty"`
}

// IsReturn reports whether the flight is a return leg.
func (f *Flight) IsReturn() bool {
	return f.ReturnDate != ""
}

// PriceInfo carries an amount tagged with its currency. No conversion is
// performed anywhere in the engine; combining prices assumes one currency.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Add returns the sum of two prices. The currency of the receiver wins;
// mixed-currency inputs are a known limitation of the engine.
func (p PriceInfo) Add(other PriceInfo) PriceInfo {
	return PriceInfo{Amount: p.Amount + other.Amount, Currency: p.Currency}
}

// Times returns the price multiplied by n (e.g., a nightly rate over a stay).
func (p PriceInfo) Times(n int) PriceInfo {
	return PriceInfo{Amount: p.Amount * float64(n), Currency: p.Currency}
}

// DurationInfo contains travel duration information.
type DurationInfo struct {
	// TotalMinutes is the duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		formatted = fmt.Sprintf("%dh", hours)
	default:
		formatted = fmt.Sprintf("%dm", mins)
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
