package ostrovok

import "github.com/SmokedKoala/TravelHelper/internal/domain"

type hotelsResponse struct {
	Status string          `json:"status"`
	Hotels []ostrovokHotel `json:"hotels"`
}

type ostrovokHotel struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       ostrovokPrice `json:"price"`
	Rating      float64       `json:"rating"`
	Amenities   []string      `json:"amenities"`
	BookingPath string        `json:"booking_path"`
}

type ostrovokPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// normalize converts canned Ostrovok hotels to domain entities, attaching the
// searched location and stay dates.
func normalize(hotels []ostrovokHotel, params domain.HotelParams) []domain.Hotel {
	result := make([]domain.Hotel, 0, len(hotels))

	for _, h := range hotels {
		result = append(result, domain.Hotel{
			ID:         h.ID,
			Name:       h.Name,
			Location:   params.Destination,
			Price:      domain.PriceInfo{Amount: h.Price.Amount, Currency: h.Price.Currency},
			Rating:     h.Rating,
			Amenities:  h.Amenities,
			CheckIn:    params.CheckIn,
			CheckOut:   params.CheckOut,
			Source:     ProviderName,
			BookingURL: baseURL + h.BookingPath,
		})
	}

	return result
}
