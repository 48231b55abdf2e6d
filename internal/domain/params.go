// Package domain contains the core business entities and rules for the travel
// aggregation engine. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"math"
	"regexp"
	"time"
)

// Defaults applied to search parameters when the caller omits them.
const (
	// DefaultStayNights is the assumed hotel stay length when no return date
	// or check-out date is given.
	DefaultStayNights = 3

	// DefaultGuests is the assumed number of hotel guests.
	DefaultGuests = 2

	// DefaultRooms is the assumed number of hotel rooms.
	DefaultRooms = 1
)

// DateFormat is the wire format for all travel dates.
const DateFormat = "2006-01-02"

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FlightParams holds the flight leg of a search request.
type FlightParams struct {
	// Origin is the departure city or airport
	Origin string `json:"origin"`

	// Destination is the arrival city or airport
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// When empty the search is one-way and no return legs are produced.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers
	Passengers int `json:"passengers"`
}

// HotelParams holds the hotel leg of a search request.
type HotelParams struct {
	// Destination is the city to search hotels in
	Destination string `json:"destination"`

	// CheckIn is the check-in date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the check-out date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Guests is the number of hotel guests
	Guests int `json:"guests"`

	// Rooms is the number of rooms
	Rooms int `json:"rooms"`
}

// SearchParams is the full, immutable parameter set for one search.
// It is created once by the caller and consumed read-only by providers
// and the wizard.
type SearchParams struct {
	Flights FlightParams `json:"flights"`
	Hotels  HotelParams  `json:"hotels"`
}

// Validate checks that every parameter required for a flight search is present.
// It returns a *ValidationError naming the first missing field.
func (p *FlightParams) Validate() error {
	if p.Origin == "" {
		return NewValidationError("origin")
	}
	if p.Destination == "" {
		return NewValidationError("destination")
	}
	if p.DepartureDate == "" {
		return NewValidationError("departureDate")
	}
	if !dateRegex.MatchString(p.DepartureDate) {
		return NewValidationError("departureDate")
	}
	if p.ReturnDate != "" && !dateRegex.MatchString(p.ReturnDate) {
		return NewValidationError("returnDate")
	}
	if p.Passengers < 1 {
		return NewValidationError("passengers")
	}
	return nil
}

// Validate checks that every parameter required for a hotel search is present.
// It returns a *ValidationError naming the first missing field.
func (p *HotelParams) Validate() error {
	if p.Destination == "" {
		return NewValidationError("destination")
	}
	if p.CheckIn == "" || !dateRegex.MatchString(p.CheckIn) {
		return NewValidationError("checkIn")
	}
	if p.CheckOut == "" || !dateRegex.MatchString(p.CheckOut) {
		return NewValidationError("checkOut")
	}
	if p.Guests < 1 {
		return NewValidationError("guests")
	}
	return nil
}

// SetDefaults fills in the hotel leg from the flight leg and applies default
// guest and room counts. The hotel stay mirrors the flight dates; when the
// flight has no return date the check-out defaults to check-in plus
// DefaultStayNights days.
func (p *SearchParams) SetDefaults() {
	if p.Hotels.Destination == "" {
		p.Hotels.Destination = p.Flights.Destination
	}
	if p.Hotels.CheckIn == "" {
		p.Hotels.CheckIn = p.Flights.DepartureDate
	}
	if p.Hotels.CheckOut == "" {
		if p.Flights.ReturnDate != "" {
			p.Hotels.CheckOut = p.Flights.ReturnDate
		} else {
			p.Hotels.CheckOut = addDays(p.Hotels.CheckIn, DefaultStayNights)
		}
	}
	if p.Hotels.Guests == 0 {
		p.Hotels.Guests = DefaultGuests
	}
	if p.Hotels.Rooms == 0 {
		p.Hotels.Rooms = DefaultRooms
	}
	if p.Flights.Passengers == 0 {
		p.Flights.Passengers = p.Hotels.Guests
	}
}

// Nights returns the stay length in nights, computed as the ceiling of the
// day difference between check-in and check-out. It falls back to
// DefaultStayNights when either date is missing or unparseable.
func (p *HotelParams) Nights() int {
	checkIn, err := time.Parse(DateFormat, p.CheckIn)
	if err != nil {
		return DefaultStayNights
	}
	checkOut, err := time.Parse(DateFormat, p.CheckOut)
	if err != nil {
		return DefaultStayNights
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return DefaultStayNights
	}
	return nights
}

// addDays shifts a YYYY-MM-DD date string by the given number of days.
// Returns the input unchanged if it cannot be parsed.
func addDays(date string, days int) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateFormat)
}
