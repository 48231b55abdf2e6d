package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAggregate() *Aggregate {
	return &Aggregate{
		Flights: []Flight{
			{ID: "booking_flight_1", Source: "booking"},
			{ID: "aviasales_flight_1", Source: "aviasales"},
			{ID: "booking_return_1", Source: "booking", ReturnDate: "2025-06-08"},
			{ID: "aviasales_return_1", Source: "aviasales", ReturnDate: "2025-06-08"},
		},
		Hotels: []Hotel{
			{ID: "ostrovok_hotel_1", Source: "ostrovok"},
		},
	}
}

func TestAggregate_FlightPartition(t *testing.T) {
	agg := testAggregate()

	outbound := agg.OutboundFlights()
	assert.Len(t, outbound, 2)
	for _, f := range outbound {
		assert.False(t, f.IsReturn())
	}

	returns := agg.ReturnFlights()
	assert.Len(t, returns, 2)
	for _, f := range returns {
		assert.True(t, f.IsReturn())
	}

	// Partition is exhaustive and disjoint.
	assert.Equal(t, len(agg.Flights), len(outbound)+len(returns))
}

func TestAggregate_Lookup(t *testing.T) {
	agg := testAggregate()

	f, ok := agg.FlightByID("booking_return_1")
	assert.True(t, ok)
	assert.Equal(t, "booking", f.Source)

	_, ok = agg.FlightByID("missing")
	assert.False(t, ok)

	h, ok := agg.HotelByID("ostrovok_hotel_1")
	assert.True(t, ok)
	assert.Equal(t, "ostrovok", h.Source)

	_, ok = agg.HotelByID("missing")
	assert.False(t, ok)
}

func TestPriceInfo_Arithmetic(t *testing.T) {
	out := PriceInfo{Amount: 299, Currency: "USD"}
	ret := PriceInfo{Amount: 289, Currency: "USD"}
	nightly := PriceInfo{Amount: 95, Currency: "USD"}

	total := out.Add(ret).Add(nightly.Times(7))
	assert.Equal(t, 299.0+289.0+95.0*7, total.Amount)
	assert.Equal(t, "USD", total.Currency)
}

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 150, want: "2h 30m"},
		{minutes: 120, want: "2h"},
		{minutes: 45, want: "45m"},
		{minutes: 0, want: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d := NewDurationInfo(tt.minutes)
			assert.Equal(t, tt.minutes, d.TotalMinutes)
			assert.Equal(t, tt.want, d.Formatted)
		})
	}
}
