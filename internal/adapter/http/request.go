// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/usecase"
	"github.com/SmokedKoala/TravelHelper/internal/wizard"
)

// SearchRequest represents the request body for a travel search.
// The same shape backs the query-parameter form of GET /api/v1/search.
type SearchRequest struct {
	// Type selects what to search for: flights, hotels, or combined.
	// Empty defaults to combined.
	Type string `json:"type,omitempty"`

	// Origin is the departure city (e.g., "Moscow")
	Origin string `json:"origin"`

	// Destination is the arrival city (e.g., "Paris")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format.
	// Hotel searches use it as the check-in date.
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// Hotel searches use it as the check-out date.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (defaults to the guest count)
	Passengers int `json:"passengers,omitempty"`

	// Guests is the number of hotel guests (defaults to 2)
	Guests int `json:"guests,omitempty"`

	// Rooms is the number of hotel rooms (defaults to 1)
	Rooms int `json:"rooms,omitempty"`

	// SessionID, when set, commits the results to an existing session
	// instead of opening a new one.
	SessionID string `json:"sessionId,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price, duration, departure, rating
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for flight results.
// Example: {"maxPrice": 250, "maxStops": 0, "airlines": ["Aeroflot"]}
type FilterDTO struct {
	// MaxPrice drops flights priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"250"`

	// MaxStops drops flights with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines keeps only flights operated by these airlines
	Airlines []string `json:"airlines,omitempty" example:"Aeroflot,S7 Airlines"`
}

// SessionEventRequest represents one wizard action posted to a session.
type SessionEventRequest struct {
	// Action is the wizard event: toggle_flight, toggle_hotel, next,
	// previous, or restart.
	Action string `json:"action"`

	// ID is the record id for toggle actions
	ID string `json:"id,omitempty"`

	// Leg addresses the flight selection set for toggle_flight:
	// outbound or return.
	Leg string `json:"leg,omitempty"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid search types.
var validTypes = map[string]bool{
	"flights":  true,
	"hotels":   true,
	"combined": true,
	"":         true, // Empty is valid (defaults to combined)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"rating":    true,
	"":          true, // Empty is valid (completion order)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Hotel-only searches do not require an origin; everything else does.
func (r *SearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Type = strings.ToLower(r.Type)
	if !validTypes[r.Type] {
		errs.Add("type", "type must be one of: flights, hotels, combined")
	}

	if r.Type != "hotels" && r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}

	switch {
	case r.DepartureDate == "":
		errs.Add("departureDate", "departureDate is required")
	case !datePattern.MatchString(r.DepartureDate):
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
	}

	if r.ReturnDate != "" && !datePattern.MatchString(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
	}

	if r.Passengers < 0 {
		errs.Add("passengers", "passengers must be a positive number")
	}
	if r.Guests < 0 {
		errs.Add("guests", "guests must be a positive number")
	}
	if r.Rooms < 0 {
		errs.Add("rooms", "rooms must be a positive number")
	}

	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure, rating")
	}

	if r.Filters != nil {
		if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
			errs.Add("filters.maxPrice", "maxPrice must be a positive number")
		}
		if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
			errs.Add("filters.maxStops", "maxStops must be a non-negative number")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Capability returns the requested search capability.
func (r *SearchRequest) Capability() domain.Capability {
	switch r.Type {
	case "flights":
		return domain.CapabilityFlights
	case "hotels":
		return domain.CapabilityHotels
	default:
		return domain.CapabilityCombined
	}
}

// ToSearchParams converts the request to domain search parameters.
// The hotel leg is left to be derived from the flight leg; only the
// explicitly-provided guest and room counts carry over.
func (r *SearchRequest) ToSearchParams() domain.SearchParams {
	params := domain.SearchParams{
		Flights: domain.FlightParams{
			Origin:        r.Origin,
			Destination:   r.Destination,
			DepartureDate: r.DepartureDate,
			ReturnDate:    r.ReturnDate,
			Passengers:    r.Passengers,
		},
		Hotels: domain.HotelParams{
			Guests: r.Guests,
			Rooms:  r.Rooms,
		},
	}
	if r.Type == "hotels" {
		// No flight leg to derive from.
		params.Hotels.Destination = r.Destination
		params.Hotels.CheckIn = r.DepartureDate
		params.Hotels.CheckOut = r.ReturnDate
	}
	return params
}

// ToSearchOptions converts the request's filter and sort fields.
func (r *SearchRequest) ToSearchOptions() usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	opts.SortBy = usecase.ParseSortOption(r.SortBy)
	if r.Filters != nil {
		opts.Filters = &usecase.FilterOptions{
			MaxPrice: r.Filters.MaxPrice,
			MaxStops: r.Filters.MaxStops,
			Airlines: r.Filters.Airlines,
		}
	}
	return opts
}

// SearchRequestFromQuery builds a SearchRequest from URL query parameters,
// the shareable-link form of the search endpoint:
//
//	/api/v1/search?from=Moscow&to=Paris&departure=2025-06-01&return=2025-06-08&guests=2&rooms=1
//
// Guests default to 2 and rooms to 1 when absent or unparseable. Validation
// of the required trio (from, to, departure) happens in Validate, same as
// for the body form.
func SearchRequestFromQuery(c echo.Context) *SearchRequest {
	req := &SearchRequest{
		Type:          c.QueryParam("type"),
		Origin:        c.QueryParam("from"),
		Destination:   c.QueryParam("to"),
		DepartureDate: c.QueryParam("departure"),
		ReturnDate:    c.QueryParam("return"),
		Guests:        queryInt(c, "guests", domain.DefaultGuests),
		Rooms:         queryInt(c, "rooms", domain.DefaultRooms),
		SessionID:     c.QueryParam("session"),
		SortBy:        c.QueryParam("sortBy"),
	}
	return req
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// Valid wizard actions.
var validActions = map[string]bool{
	"toggle_flight": true,
	"toggle_hotel":  true,
	"next":          true,
	"previous":      true,
	"restart":       true,
}

// Validate validates the session event request.
func (r *SessionEventRequest) Validate() error {
	errs := &ValidationErrors{}

	action := strings.ToLower(r.Action)
	if !validActions[action] {
		errs.Add("action", "action must be one of: toggle_flight, toggle_hotel, next, previous, restart")
	}
	r.Action = action

	switch action {
	case "toggle_flight":
		if r.ID == "" {
			errs.Add("id", "id is required for toggle_flight")
		}
		if r.Leg != string(wizard.LegOutbound) && r.Leg != string(wizard.LegReturn) {
			errs.Add("leg", "leg must be one of: outbound, return")
		}
	case "toggle_hotel":
		if r.ID == "" {
			errs.Add("id", "id is required for toggle_hotel")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToEvent converts a validated request to a wizard event.
func (r *SessionEventRequest) ToEvent() wizard.Event {
	switch r.Action {
	case "toggle_flight":
		return wizard.ToggleFlight{ID: r.ID, Leg: wizard.Leg(r.Leg)}
	case "toggle_hotel":
		return wizard.ToggleHotel{ID: r.ID}
	case "next":
		return wizard.Next{}
	case "previous":
		return wizard.Previous{}
	default:
		return wizard.Restart{}
	}
}
