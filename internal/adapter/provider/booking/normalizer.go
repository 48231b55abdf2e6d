package booking

import (
	"time"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
)

type flightsResponse struct {
	Status  string          `json:"status"`
	Flights []bookingFlight `json:"flights"`
}

type hotelsResponse struct {
	Status string         `json:"status"`
	Hotels []bookingHotel `json:"hotels"`
}

type bookingFlight struct {
	ID              string       `json:"id"`
	Airline         string       `json:"airline"`
	DepartureTime   string       `json:"departure_time"`
	ArrivalTime     string       `json:"arrival_time"`
	DurationMinutes int          `json:"duration_minutes"`
	Stops           int          `json:"stops"`
	Leg             string       `json:"leg"`
	Price           bookingPrice `json:"price"`
	BookingPath     string       `json:"booking_path"`
}

type bookingHotel struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       bookingPrice `json:"price"`
	Rating      float64      `json:"rating"`
	Amenities   []string     `json:"amenities"`
	BookingPath string       `json:"booking_path"`
}

type bookingPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// normalizeFlights converts canned Booking flights to domain entities.
// Return legs fly the reverse route on the return date and are dropped for
// one-way searches. Flights whose times cannot be anchored are skipped.
func normalizeFlights(flights []bookingFlight, params domain.FlightParams) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))

	for _, f := range flights {
		isReturn := f.Leg == "return"
		if isReturn && params.ReturnDate == "" {
			continue
		}

		date := params.DepartureDate
		origin, destination := params.Origin, params.Destination
		if isReturn {
			date = params.ReturnDate
			origin, destination = destination, origin
		}

		departure, err := anchorTime(date, f.DepartureTime)
		if err != nil {
			continue
		}
		arrival, err := anchorTime(date, f.ArrivalTime)
		if err != nil {
			continue
		}
		if arrival.Before(departure) {
			arrival = arrival.AddDate(0, 0, 1)
		}

		flight := domain.Flight{
			ID:            f.ID,
			Airline:       f.Airline,
			Origin:        origin,
			Destination:   destination,
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Duration:      domain.NewDurationInfo(f.DurationMinutes),
			Price:         domain.PriceInfo{Amount: f.Price.Amount, Currency: f.Price.Currency},
			Stops:         f.Stops,
			Source:        ProviderName,
			BookingURL:    baseURL + f.BookingPath,
		}
		if isReturn {
			flight.ReturnDate = params.ReturnDate
		}
		result = append(result, flight)
	}

	return result
}

// normalizeHotels converts canned Booking hotels to domain entities, attaching
// the searched location and stay dates.
func normalizeHotels(hotels []bookingHotel, params domain.HotelParams) []domain.Hotel {
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

// anchorTime combines a YYYY-MM-DD date with a clock-only HH:MM time.
func anchorTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
