package wizard

import "github.com/SmokedKoala/TravelHelper/internal/domain"

// Combination is one concrete (outbound flight, return flight, hotel) triple
// with its derived total price. Combinations are recomputed on demand from
// the wizard state; they are never stored or edited.
type Combination struct {
	// Outbound is the selected outbound flight
	Outbound domain.Flight `json:"outboundFlight"`

	// Return is the selected return flight
	Return domain.Flight `json:"returnFlight"`

	// Hotel is the selected hotel
	Hotel domain.Hotel `json:"hotel"`

	// Nights is the stay length used to price the hotel
	Nights int `json:"nights"`

	// TotalPrice is outbound + return + hotel price × nights. Prices are
	// combined without currency conversion.
	TotalPrice domain.PriceInfo `json:"totalPrice"`
}

// Generate enumerates every combination of the selected outbound flights,
// return flights and hotels, priced over the stay length derived from the
// aggregate's originating parameters.
//
// Enumeration is outbound-major, then return, then hotel, following the
// selection sets' insertion order, so the output is deterministic:
// len(result) == |outbound| × |return| × |hotels|. Empty selection sets
// yield an empty slice, never an error.
func Generate(agg *domain.Aggregate, s State) []Combination {
	nights := agg.Params.Hotels.Nights()

	combos := make([]Combination, 0, len(s.Outbound)*len(s.Return)*len(s.Hotels))
	for _, outboundID := range s.Outbound {
		outbound, ok := agg.FlightByID(outboundID)
		if !ok {
			continue
		}
		for _, returnID := range s.Return {
			returnFlight, ok := agg.FlightByID(returnID)
			if !ok {
				continue
			}
			for _, hotelID := range s.Hotels {
				hotel, ok := agg.HotelByID(hotelID)
				if !ok {
					continue
				}
				combos = append(combos, Combination{
					Outbound:   outbound,
					Return:     returnFlight,
					Hotel:      hotel,
					Nights:     nights,
					TotalPrice: outbound.Price.Add(returnFlight.Price).Add(hotel.Price.Times(nights)),
				})
			}
		}
	}
	return combos
}
