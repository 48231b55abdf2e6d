package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/logger"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/retry"
)

// Default timeout values.
const (
	DefaultGlobalTimeout   = 5 * time.Second
	DefaultProviderTimeout = 2 * time.Second
)

// SearchUseCase defines the interface for travel search operations.
type SearchUseCase interface {
	// Search fans the request out to every provider supporting the requested
	// capability, waits for all legs to settle, and merges the results into
	// one Aggregate. Provider failures are isolated: a failed leg contributes
	// an empty result set. Search fails only when zero providers support the
	// capability (ErrNoProvider) or every dispatched leg failed
	// (ErrAllProvidersFailed).
	Search(ctx context.Context, capability domain.Capability, params domain.SearchParams, opts SearchOptions) (*domain.Aggregate, error)
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout   time.Duration
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// searchUseCase implements SearchUseCase with the scatter-gather pattern.
type searchUseCase struct {
	registry        *domain.ProviderRegistry
	globalTimeout   time.Duration
	providerTimeout time.Duration
	retryCfg        retry.Config
	log             *logger.Logger

	// generation numbers searches in start order so a stale result can
	// never displace a newer one downstream.
	generation atomic.Uint64
}

// NewSearchUseCase creates a SearchUseCase over the given registry.
// If config is nil, default timeout values are used.
func NewSearchUseCase(registry *domain.ProviderRegistry, config *Config, log *logger.Logger) SearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	retryCfg := retry.ProviderConfig
	retryCfg.RetryIf = domain.IsRetryable

	return &searchUseCase{
		registry:        registry,
		globalTimeout:   cfg.GlobalTimeout,
		providerTimeout: cfg.ProviderTimeout,
		retryCfg:        retryCfg,
		log:             log,
	}
}

// legResult holds the outcome of one (provider, capability) leg.
type legResult struct {
	provider   string
	capability domain.Capability
	flights    []domain.Flight
	hotels     []domain.Hotel
	err        error
	duration   time.Duration
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, capability domain.Capability, params domain.SearchParams, opts SearchOptions) (*domain.Aggregate, error) {
	if !capability.IsValid() {
		return nil, fmt.Errorf("%w: invalid capability", domain.ErrInvalidRequest)
	}

	generation := uc.generation.Add(1)
	startTime := time.Now()
	params.SetDefaults()

	// Select providers per leg. A combined request asks every flight-capable
	// provider for flights and every hotel-capable provider for hotels; the
	// two legs of one provider are independent calls.
	var flightProviders, hotelProviders []domain.TravelProvider
	if capability.Has(domain.CapabilityFlights) {
		flightProviders = uc.registry.ByCapability(domain.CapabilityFlights)
	}
	if capability.Has(domain.CapabilityHotels) {
		hotelProviders = uc.registry.ByCapability(domain.CapabilityHotels)
	}

	legs := len(flightProviders) + len(hotelProviders)
	if legs == 0 {
		return nil, domain.ErrNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	// Buffered so late legs never block after the gather loop exits.
	resultsChan := make(chan legResult, legs)

	var wg sync.WaitGroup
	for _, provider := range flightProviders {
		wg.Add(1)
		go func(p domain.TravelProvider) {
			defer wg.Done()
			uc.queryLeg(ctx, p, domain.CapabilityFlights, params, resultsChan)
		}(provider)
	}
	for _, provider := range hotelProviders {
		wg.Add(1)
		go func(p domain.TravelProvider) {
			defer wg.Done()
			uc.queryLeg(ctx, p, domain.CapabilityHotels, params, resultsChan)
		}(provider)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Gather. This is a barrier: the loop ends only when every leg has
	// settled, successfully or not. Merge order is completion order.
	var allFlights []domain.Flight
	var allHotels []domain.Hotel
	succeeded, failed := 0, 0

	for result := range resultsChan {
		if result.err != nil {
			failed++
			uc.log.WithProvider(result.provider).Warn().
				Err(result.err).
				Str("capability", result.capability.String()).
				Int64("duration_ms", result.duration.Milliseconds()).
				Msg("Provider leg failed, contributing empty results")
			continue
		}
		succeeded++
		allFlights = append(allFlights, result.flights...)
		allHotels = append(allHotels, result.hotels...)
	}

	if failed == legs {
		return nil, domain.ErrAllProvidersFailed
	}

	flights := sortFlights(applyFilters(allFlights, opts.Filters), opts.SortBy)
	hotels := sortHotels(allHotels, opts.SortBy)
	if flights == nil {
		flights = []domain.Flight{}
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}

	aggregate := &domain.Aggregate{
		Flights: flights,
		Hotels:  hotels,
		Params:  params,
		Metadata: domain.SearchMetadata{
			ProvidersQueried:   legs,
			ProvidersSucceeded: succeeded,
			ProvidersFailed:    failed,
			SearchTimeMs:       time.Since(startTime).Milliseconds(),
		},
		Generation: generation,
	}

	uc.log.Info().
		Uint64("generation", generation).
		Str("capability", capability.String()).
		Int("flights", len(aggregate.Flights)).
		Int("hotels", len(aggregate.Hotels)).
		Int("legs_failed", failed).
		Int64("duration_ms", aggregate.Metadata.SearchTimeMs).
		Msg("Search completed")

	return aggregate, nil
}

// queryLeg runs one (provider, capability) call with a per-provider timeout,
// retry for retryable failures, and panic recovery so a misbehaving provider
// cannot take down the whole search.
func (uc *searchUseCase) queryLeg(ctx context.Context, provider domain.TravelProvider, capability domain.Capability, params domain.SearchParams, results chan<- legResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	start := time.Now()
	providerName := provider.Name()

	defer func() {
		if r := recover(); r != nil {
			results <- legResult{
				provider:   providerName,
				capability: capability,
				err:        domain.NewProviderError(providerName, fmt.Errorf("provider panic: %v", r)),
				duration:   time.Since(start),
			}
		}
	}()

	var flights []domain.Flight
	var hotels []domain.Hotel

	err := retry.Do(ctx, func() error {
		var callErr error
		switch capability {
		case domain.CapabilityFlights:
			flights, callErr = provider.SearchFlights(ctx, params)
		case domain.CapabilityHotels:
			hotels, callErr = provider.SearchHotels(ctx, params)
		default:
			callErr = domain.NewCapabilityError(providerName, capability)
		}
		return callErr
	}, uc.retryCfg)

	if err == nil {
		// Source attribution comes from the registry, not from whatever the
		// provider happened to put in the record.
		for i := range flights {
			flights[i].Source = providerName
		}
		for i := range hotels {
			hotels[i].Source = providerName
		}
	}

	results <- legResult{
		provider:   providerName,
		capability: capability,
		flights:    flights,
		hotels:     hotels,
		err:        err,
		duration:   time.Since(start),
	}
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
