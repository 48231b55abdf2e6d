// Package ostrovok adapts the Ostrovok data source to the TravelProvider
// contract. Ostrovok serves hotel legs only, replayed from a canned response
// file.
package ostrovok

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

// ProviderName is the unique identifier for the Ostrovok provider.
const ProviderName = "ostrovok"

// baseURL prefixes the booking links in normalized results.
const baseURL = "https://www.ostrovok.ru"

// Adapter serves Ostrovok hotel results from a canned response file.
type Adapter struct {
	hotelsPath string
}

// NewAdapter creates an Ostrovok adapter reading from the given response file.
func NewAdapter(hotelsPath string) *Adapter {
	return &Adapter{hotelsPath: hotelsPath}
}

// Name implements domain.TravelProvider.
func (a *Adapter) Name() string { return ProviderName }

// Capabilities implements domain.TravelProvider. Ostrovok serves hotels only.
func (a *Adapter) Capabilities() domain.Capability { return domain.CapabilityHotels }

// SearchFlights implements domain.TravelProvider. Ostrovok does not serve
// flights; the coordinator never routes flight legs here.
func (a *Adapter) SearchFlights(_ context.Context, _ domain.SearchParams) ([]domain.Flight, error) {
	return nil, domain.NewCapabilityError(ProviderName, domain.CapabilityFlights)
}

// SearchHotels loads and normalizes the canned hotel response.
func (a *Adapter) SearchHotels(ctx context.Context, params domain.SearchParams) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if err := params.Hotels.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.hotelsPath)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}

	var resp hotelsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if resp.Status != "success" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("unexpected response status %q", resp.Status))
	}

	return normalize(resp.Hotels, params.Hotels), nil
}
