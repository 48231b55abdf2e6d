package domain

// Hotel represents a single hotel offering from one provider.
// Like Flight, it is created per search and never mutated.
type Hotel struct {
	// ID is unique within one search, provider-prefixed.
	ID string `json:"id"`

	// Name is the hotel's display name
	Name string `json:"name"`

	// Location is the city or district the hotel is in
	Location string `json:"location"`

	// Price is the nightly rate
	Price PriceInfo `json:"price"`

	// Rating is the guest rating on a 0-5 scale
	Rating float64 `json:"rating"`

	// Amenities is the unordered set of offered amenities
	Amenities []string `json:"amenities,omitempty"`

	// CheckIn is the stay's check-in date in YYYY-MM-DD format
	CheckIn string `json:"checkIn"`

	// CheckOut is the stay's check-out date in YYYY-MM-DD format
	CheckOut string `json:"checkOut"`

	// Source identifies the provider this result came from
	Source string `json:"source"`

	// BookingURL is an opaque external booking link
	BookingURL string `json:"bookingUrl,omitempty"`
}
