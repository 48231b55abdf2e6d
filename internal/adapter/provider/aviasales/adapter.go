// Package aviasales adapts the Aviasales data source to the TravelProvider
// contract. The adapter replays a canned API response from disk; the response
// carries clock-only times that are anchored to the searched travel dates
// during normalization.
package aviasales

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

// ProviderName is the unique identifier for the Aviasales provider.
const ProviderName = "aviasales"

// baseURL prefixes the booking links in normalized results.
const baseURL = "https://www.aviasales.ru"

// Adapter serves Aviasales flight results from a canned response file.
type Adapter struct {
	flightsPath string
}

// NewAdapter creates an Aviasales adapter reading from the given response file.
func NewAdapter(flightsPath string) *Adapter {
	return &Adapter{flightsPath: flightsPath}
}

// Name implements domain.TravelProvider.
func (a *Adapter) Name() string { return ProviderName }

// Capabilities implements domain.TravelProvider. Aviasales serves flights only.
func (a *Adapter) Capabilities() domain.Capability { return domain.CapabilityFlights }

// SearchFlights loads and normalizes the canned flight response. Return legs
// are included only when the search carries a return date.
func (a *Adapter) SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if err := params.Flights.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.flightsPath)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}

	var resp flightsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if resp.Status != "success" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("unexpected response status %q", resp.Status))
	}

	return normalize(resp.Flights, params.Flights), nil
}

// SearchHotels implements domain.TravelProvider. Aviasales does not serve
// hotels; the coordinator never routes hotel legs here.
func (a *Adapter) SearchHotels(_ context.Context, _ domain.SearchParams) ([]domain.Hotel, error) {
	return nil, domain.NewCapabilityError(ProviderName, domain.CapabilityHotels)
}
