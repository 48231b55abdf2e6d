// Package booking adapts the Booking.com data source to the TravelProvider
// contract. Booking is the one combined provider: it serves both flight and
// hotel legs, each from its own canned response file.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

// ProviderName is the unique identifier for the Booking.com provider.
const ProviderName = "booking"

// baseURL prefixes the booking links in normalized results.
const baseURL = "https://www.booking.com"

// Adapter serves Booking.com flight and hotel results from canned response
// files.
type Adapter struct {
	flightsPath string
	hotelsPath  string
}

// NewAdapter creates a Booking.com adapter reading from the given response files.
func NewAdapter(flightsPath, hotelsPath string) *Adapter {
	return &Adapter{flightsPath: flightsPath, hotelsPath: hotelsPath}
}

// Name implements domain.TravelProvider.
func (a *Adapter) Name() string { return ProviderName }

// Capabilities implements domain.TravelProvider. Booking serves both legs.
func (a *Adapter) Capabilities() domain.Capability { return domain.CapabilityCombined }

// SearchFlights loads and normalizes the canned flight response. Return legs
// are included only when the search carries a return date.
func (a *Adapter) SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if err := params.Flights.Validate(); err != nil {
		return nil, err
	}

	var resp flightsResponse
	if err := a.load(a.flightsPath, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("unexpected response status %q", resp.Status))
	}

	return normalizeFlights(resp.Flights, params.Flights), nil
}

// SearchHotels loads and normalizes the canned hotel response.
func (a *Adapter) SearchHotels(ctx context.Context, params domain.SearchParams) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if err := params.Hotels.Validate(); err != nil {
		return nil, err
	}

	var resp hotelsResponse
	if err := a.load(a.hotelsPath, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("unexpected response status %q", resp.Status))
	}

	return normalizeHotels(resp.Hotels, params.Hotels), nil
}

func (a *Adapter) load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewRetryableProviderError(ProviderName, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return domain.NewProviderError(ProviderName, err)
	}
	return nil
}
