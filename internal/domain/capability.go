package domain

import "fmt"

// Capability is a bit set of the search operations a provider supports.
// A provider declares its capabilities once at registration time; the
// coordinator only dispatches operations the provider advertises.
type Capability uint8

// Capability values. A search request uses the same type: a request for
// CapabilityCombined fans out both flight and hotel legs.
const (
	// CapabilityFlights marks support for flight search.
	CapabilityFlights Capability = 1 << iota

	// CapabilityHotels marks support for hotel search.
	CapabilityHotels
)

// CapabilityCombined requests both flight and hotel results in one search.
const CapabilityCombined = CapabilityFlights | CapabilityHotels

// Has reports whether c includes every capability in other.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// IsValid reports whether c is a known capability or combination thereof.
func (c Capability) IsValid() bool {
	return c != 0 && c&^CapabilityCombined == 0
}

// String returns the wire name of the capability.
func (c Capability) String() string {
	switch c {
	case CapabilityFlights:
		return "flights"
	case CapabilityHotels:
		return "hotels"
	case CapabilityCombined:
		return "combined"
	default:
		return fmt.Sprintf("capability(%d)", uint8(c))
	}
}

// ParseCapability converts a wire name to a Capability.
// Accepted values are "flights", "hotels" and "combined".
func ParseCapability(s string) (Capability, error) {
	switch s {
	case "flights":
		return CapabilityFlights, nil
	case "hotels":
		return CapabilityHotels, nil
	case "combined":
		return CapabilityCombined, nil
	default:
		return 0, fmt.Errorf("%w: unknown capability %q", ErrInvalidRequest, s)
	}
}
