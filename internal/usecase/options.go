// Package usecase contains the business logic for travel search operations.
// It orchestrates provider calls using the scatter-gather concurrency pattern.
package usecase

// SearchOptions contains optional parameters for a search.
type SearchOptions struct {
	// Filters contains optional filtering criteria applied to flight results
	Filters *FilterOptions

	// SortBy reorders results for display. The zero value keeps provider
	// completion order.
	SortBy SortOption
}

// DefaultSearchOptions returns SearchOptions that keep every result in
// completion order.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}
