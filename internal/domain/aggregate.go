package domain

// Aggregate is the merged result of one search across all providers,
// attached to the parameters that produced it. It is built once by the
// coordinator and read-only afterwards. Record order is provider completion
// order then provider-internal order; it carries no semantic meaning beyond
// default display order.
type Aggregate struct {
	// Flights holds outbound and return legs from every provider, unsplit.
	Flights []Flight `json:"flights"`

	// Hotels holds hotel results from every provider.
	Hotels []Hotel `json:"hotels"`

	// Params are the originating search parameters, kept for later
	// derivations such as the stay length used in combination pricing.
	Params SearchParams `json:"params"`

	// Metadata describes how the search executed.
	Metadata SearchMetadata `json:"metadata"`

	// Generation is a monotonically increasing token assigned per search.
	// The session layer uses it to refuse committing results of a search
	// that was started before the one currently displayed.
	Generation uint64 `json:"generation"`
}

// SearchMetadata describes the execution of one fan-out.
type SearchMetadata struct {
	// ProvidersQueried is the number of provider legs dispatched
	ProvidersQueried int `json:"providers_queried"`

	// ProvidersSucceeded is the number of legs that returned results
	ProvidersSucceeded int `json:"providers_succeeded"`

	// ProvidersFailed is the number of legs that errored or timed out
	ProvidersFailed int `json:"providers_failed"`

	// SearchTimeMs is the wall-clock duration of the whole fan-out
	SearchTimeMs int64 `json:"search_time_ms"`
}

// OutboundFlights returns the flights without a return-date marker.
// The partition is computed fresh on every call; the aggregate itself is
// never pre-split.
func (a *Aggregate) OutboundFlights() []Flight {
	result := make([]Flight, 0, len(a.Flights))
	for _, f := range a.Flights {
		if !f.IsReturn() {
			result = append(result, f)
		}
	}
	return result
}

// ReturnFlights returns the flights carrying a return-date marker.
func (a *Aggregate) ReturnFlights() []Flight {
	result := make([]Flight, 0, len(a.Flights))
	for _, f := range a.Flights {
		if f.IsReturn() {
			result = append(result, f)
		}
	}
	return result
}

// FlightByID looks up a flight by id.
func (a *Aggregate) FlightByID(id string) (Flight, bool) {
	for _, f := range a.Flights {
		if f.ID == id {
			return f, true
		}
	}
	return Flight{}, false
}

// HotelByID looks up a hotel by id.
func (a *Aggregate) HotelByID(id string) (Hotel, bool) {
	for _, h := range a.Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}
