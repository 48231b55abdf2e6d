// Package wizard implements the step-based selection flow over one search's
// results: pick outbound flights, pick return flights, pick hotels, review
// the priced combinations.
//
// The wizard is a pure state machine. Apply never mutates its inputs; it
// returns the next state, so the owner of the state (a session, a test)
// decides where it lives. There is no ambient current-wizard instance.
package wizard

import "github.com/SmokedKoala/TravelHelper/internal/domain"

// Step identifies one of the four wizard steps.
type Step int

// Wizard steps in order. Transitions move one step at a time and only on
// explicit Next/Previous events.
const (
	StepOutbound Step = iota + 1
	StepReturn
	StepHotels
	StepReview
)

// String returns the wire name of the step.
func (s Step) String() string {
	switch s {
	case StepOutbound:
		return "outbound_selection"
	case StepReturn:
		return "return_selection"
	case StepHotels:
		return "hotel_selection"
	case StepReview:
		return "combination_review"
	default:
		return "unknown"
	}
}

// Leg identifies which flight selection set a toggle targets.
type Leg string

// Flight legs.
const (
	LegOutbound Leg = "outbound"
	LegReturn   Leg = "return"
)

// IsValid reports whether l is a known leg.
func (l Leg) IsValid() bool {
	return l == LegOutbound || l == LegReturn
}

// Selection is an insertion-ordered set of record ids. Order matters:
// combination enumeration follows it.
type Selection []string

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// toggle returns a new Selection with id added if absent or removed if
// present. The receiver is never modified.
func (s Selection) toggle(id string) Selection {
	if !s.Contains(id) {
		result := make(Selection, 0, len(s)+1)
		result = append(result, s...)
		return append(result, id)
	}
	result := make(Selection, 0, len(s)-1)
	for _, v := range s {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}

// State is the complete wizard state. The zero value is not usable;
// start from New.
type State struct {
	// Step is the current wizard step
	Step Step `json:"step"`

	// Outbound holds the selected outbound flight ids
	Outbound Selection `json:"outbound"`

	// Return holds the selected return flight ids
	Return Selection `json:"return"`

	// Hotels holds the selected hotel ids
	Hotels Selection `json:"hotels"`
}

// New returns the initial wizard state: first step, nothing selected.
func New() State {
	return State{Step: StepOutbound}
}

// CanAdvance reports whether the current step's required selection set is
// non-empty. The UI may disable its forward affordance on the same
// condition, but this guard is the authoritative one.
func (s State) CanAdvance() bool {
	switch s.Step {
	case StepOutbound:
		return len(s.Outbound) > 0
	case StepReturn:
		return len(s.Return) > 0
	case StepHotels:
		return len(s.Hotels) > 0
	default:
		return false
	}
}

// Event is a user action applied to the wizard.
type Event interface {
	isEvent()
}

// ToggleFlight selects or deselects a flight on the given leg.
type ToggleFlight struct {
	ID  string
	Leg Leg
}

// ToggleHotel selects or deselects a hotel.
type ToggleHotel struct {
	ID string
}

// Next advances to the following step if the current step's guard allows it.
type Next struct{}

// Previous moves back one step. Selections are kept.
type Previous struct{}

// Restart returns to the first step and clears every selection.
// The underlying aggregate is untouched; a restart reuses the same results.
type Restart struct{}

func (ToggleFlight) isEvent() {}
func (ToggleHotel) isEvent()  {}
func (Next) isEvent()         {}
func (Previous) isEvent()     {}
func (Restart) isEvent()      {}

// Apply computes the next wizard state for the given event. Unknown record
// ids, toggles against the wrong leg, and guarded forward transitions all
// leave the state unchanged rather than erroring: the wizard mirrors what a
// UI can express, and a UI cannot express invalid events meaningfully.
func Apply(agg *domain.Aggregate, s State, e Event) State {
	switch ev := e.(type) {
	case ToggleFlight:
		return applyToggleFlight(agg, s, ev)

	case ToggleHotel:
		if _, ok := agg.HotelByID(ev.ID); !ok {
			return s
		}
		s.Hotels = s.Hotels.toggle(ev.ID)
		return s

	case Next:
		if s.Step < StepReview && s.CanAdvance() {
			s.Step++
		}
		return s

	case Previous:
		if s.Step > StepOutbound {
			s.Step--
		}
		return s

	case Restart:
		return New()

	default:
		return s
	}
}

// applyToggleFlight toggles a flight id in the selection set of its leg.
// The flight must exist in the aggregate and belong to the addressed leg:
// a record is outbound iff it carries no return-date marker.
func applyToggleFlight(agg *domain.Aggregate, s State, ev ToggleFlight) State {
	flight, ok := agg.FlightByID(ev.ID)
	if !ok {
		return s
	}

	switch ev.Leg {
	case LegOutbound:
		if flight.IsReturn() {
			return s
		}
		s.Outbound = s.Outbound.toggle(ev.ID)
	case LegReturn:
		if !flight.IsReturn() {
			return s
		}
		s.Return = s.Return.toggle(ev.ID)
	}
	return s
}

// VisibleFlights returns the flights shown at the given step, computed
// fresh from the aggregate: the outbound pool at step 1, the return pool at
// step 2, nothing elsewhere.
func VisibleFlights(agg *domain.Aggregate, step Step) []domain.Flight {
	switch step {
	case StepOutbound:
		return agg.OutboundFlights()
	case StepReturn:
		return agg.ReturnFlights()
	default:
		return nil
	}
}

// VisibleHotels returns the hotels shown at the given step: the full hotel
// pool at step 3, nothing elsewhere.
func VisibleHotels(agg *domain.Aggregate, step Step) []domain.Hotel {
	if step == StepHotels {
		return agg.Hotels
	}
	return nil
}
