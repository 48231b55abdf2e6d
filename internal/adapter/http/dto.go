package http

import (
	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/session"
	"github.com/SmokedKoala/TravelHelper/internal/wizard"
)

// SessionResponse is the wire representation of one wizard session: the
// current step, the selections made so far, and the records visible at that
// step. Flight and hotel pools are recomputed per step, so step 1 shows the
// outbound pool, step 2 the return pool, step 3 the hotels, step 4 nothing.
type SessionResponse struct {
	// SessionID identifies the session for follow-up requests
	SessionID string `json:"sessionId"`

	// Step is the current wizard step name
	Step string `json:"step"`

	// CanAdvance reports whether the current step's selection allows moving on
	CanAdvance bool `json:"canAdvance"`

	// Selections holds the record ids selected so far
	Selections SelectionsDTO `json:"selections"`

	// Flights are the flights visible at the current step
	Flights []domain.Flight `json:"flights"`

	// Hotels are the hotels visible at the current step
	Hotels []domain.Hotel `json:"hotels"`

	// Params are the originating search parameters
	Params domain.SearchParams `json:"params"`

	// Metadata describes how the search executed
	Metadata domain.SearchMetadata `json:"metadata"`
}

// SelectionsDTO carries the wizard's three selection sets.
type SelectionsDTO struct {
	Outbound []string `json:"outbound"`
	Return   []string `json:"return"`
	Hotels   []string `json:"hotels"`
}

// CombinationsResponse is the wire representation of the generated
// combinations at the review step.
type CombinationsResponse struct {
	// SessionID identifies the originating session
	SessionID string `json:"sessionId"`

	// Count is the number of combinations
	Count int `json:"count"`

	// Combinations are the priced triples in deterministic enumeration order
	Combinations []wizard.Combination `json:"combinations"`
}

// toSessionResponse converts a session snapshot to its wire form.
// Slices are always non-nil so JSON clients see arrays, never null.
func toSessionResponse(snap session.Snapshot) *SessionResponse {
	flights := wizard.VisibleFlights(snap.Aggregate, snap.State.Step)
	if flights == nil {
		flights = []domain.Flight{}
	}
	hotels := wizard.VisibleHotels(snap.Aggregate, snap.State.Step)
	if hotels == nil {
		hotels = []domain.Hotel{}
	}

	return &SessionResponse{
		SessionID:  snap.ID,
		Step:       snap.State.Step.String(),
		CanAdvance: snap.State.CanAdvance(),
		Selections: SelectionsDTO{
			Outbound: selectionIDs(snap.State.Outbound),
			Return:   selectionIDs(snap.State.Return),
			Hotels:   selectionIDs(snap.State.Hotels),
		},
		Flights:  flights,
		Hotels:   hotels,
		Params:   snap.Aggregate.Params,
		Metadata: snap.Aggregate.Metadata,
	}
}

// toCombinationsResponse converts generated combinations to their wire form.
func toCombinationsResponse(sessionID string, combos []wizard.Combination) *CombinationsResponse {
	return &CombinationsResponse{
		SessionID:    sessionID,
		Count:        len(combos),
		Combinations: combos,
	}
}

func selectionIDs(s wizard.Selection) []string {
	if s == nil {
		return []string{}
	}
	return s
}
