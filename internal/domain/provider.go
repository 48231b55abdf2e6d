package domain

import (
	"context"
	"fmt"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// TravelProvider is the contract every data source implements.
// A provider declares its capabilities once; callers must check them before
// invoking an operation. Invoking an unsupported operation returns a
// *CapabilityError. Each operation either returns a full result sequence or
// an error, never a partial result.
type TravelProvider interface {
	// Name returns the provider's unique identifier, used as the Source tag
	// on every record it produces.
	Name() string

	// Capabilities returns the set of operations the provider supports.
	Capabilities() Capability

	// SearchFlights returns flight offerings for the given parameters.
	// Implementations validate the flight leg and may block on I/O; they
	// must honor ctx cancellation.
	SearchFlights(ctx context.Context, params SearchParams) ([]Flight, error)

	// SearchHotels returns hotel offerings for the given parameters.
	SearchHotels(ctx context.Context, params SearchParams) ([]Hotel, error)
}

// ProviderRegistry holds the registered providers indexed by name.
// Capability checks happen here, at registration and selection time,
// not per call.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers []TravelProvider
	byName    map[string]TravelProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		byName: make(map[string]TravelProvider),
	}
}

// Register adds a provider to the registry. It rejects providers with an
// empty name, an invalid capability set, or a name already registered.
func (r *ProviderRegistry) Register(p TravelProvider) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("provider name must not be empty")
	}
	if !p.Capabilities().IsValid() {
		return fmt.Errorf("provider %s declares no valid capability", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.providers = append(r.providers, p)
	r.byName[name] = p
	return nil
}

// Get returns the provider with the given name.
func (r *ProviderRegistry) Get(name string) (TravelProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// Count returns the number of registered providers.
func (r *ProviderRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// All returns every registered provider in registration order.
func (r *ProviderRegistry) All() []TravelProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]TravelProvider, len(r.providers))
	copy(result, r.providers)
	return result
}

// ByCapability returns the providers advertising every capability in c,
// in registration order.
func (r *ProviderRegistry) ByCapability(c Capability) []TravelProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]TravelProvider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Capabilities().Has(c) {
			result = append(result, p)
		}
	}
	return result
}
