package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/test/mock"
)

// TestHandler_Search_RealAdapters runs a combined search against the real
// provider adapters replaying the canned responses.
func TestHandler_Search_RealAdapters(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	sess, err := resp.ParseSession()
	require.NoError(t, err)

	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, "outbound_selection", sess.Step)
	assert.False(t, sess.CanAdvance)

	// Two flight legs (aviasales, booking) plus two hotel legs (booking,
	// ostrovok) are dispatched for a combined search.
	assert.Equal(t, 4, sess.Metadata.ProvidersQueried)
	assert.Equal(t, 4, sess.Metadata.ProvidersSucceeded)
	assert.Equal(t, 0, sess.Metadata.ProvidersFailed)

	// Step 1 shows the outbound pool only: 3 aviasales + 2 booking flights.
	assert.Len(t, sess.Flights, 5)
	assert.Empty(t, sess.Hotels)

	sources := map[string]int{}
	for _, f := range sess.Flights {
		assert.False(t, f.IsReturn(), "outbound pool must not contain return legs")
		sources[f.Source]++
	}
	assert.Equal(t, 3, sources["aviasales"])
	assert.Equal(t, 2, sources["booking"])
}

// TestHandler_Search_AnchorsFlightDates verifies that fixture clock times are
// anchored to the searched dates.
func TestHandler_Search_AnchorsFlightDates(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	sess, err := resp.ParseSession()
	require.NoError(t, err)
	require.NotEmpty(t, sess.Flights)

	for _, f := range sess.Flights {
		assert.Equal(t, 2025, f.DepartureTime.Year(), "flight %s", f.ID)
		assert.Equal(t, "2025-06-01", f.DepartureTime.Format("2006-01-02"), "flight %s", f.ID)
	}
}

// TestHandler_WizardWalk_RealAdapters walks the full wizard over real
// adapters: outbound, return, hotel, review, combinations.
func TestHandler_WizardWalk_RealAdapters(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err := resp.ParseSession()
	require.NoError(t, err)
	id := sess.SessionID

	// Step 1: pick two outbound flights from different providers.
	ts.EventRequest(id, ToggleFlight("aviasales_flight_2", "outbound"))
	resp = ts.EventRequest(id, ToggleFlight("booking_flight_1", "outbound"))
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err = resp.ParseSession()
	require.NoError(t, err)
	assert.True(t, sess.CanAdvance)

	resp = ts.EventRequest(id, Next())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err = resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, "return_selection", sess.Step)

	// Step 2 shows the return pool: 2 aviasales + 2 booking legs.
	assert.Len(t, sess.Flights, 4)
	for _, f := range sess.Flights {
		assert.True(t, f.IsReturn(), "return pool must contain return legs only")
	}

	ts.EventRequest(id, ToggleFlight("aviasales_return_2", "return"))
	resp = ts.EventRequest(id, Next())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err = resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, "hotel_selection", sess.Step)

	// Step 3 shows the hotel pool: 2 booking + 3 ostrovok hotels.
	assert.Empty(t, sess.Flights)
	assert.Len(t, sess.Hotels, 5)

	ts.EventRequest(id, ToggleHotel("booking_hotel_2"))
	ts.EventRequest(id, ToggleHotel("ostrovok_hotel_2"))
	resp = ts.EventRequest(id, Next())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err = resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, "combination_review", sess.Step)

	// Review: 2 outbound x 1 return x 2 hotels.
	resp = ts.CombinationsRequest(id)
	require.Equal(t, http.StatusOK, resp.Code)

	combos, err := resp.ParseCombinations()
	require.NoError(t, err)
	assert.Equal(t, id, combos.SessionID)
	assert.Equal(t, 4, combos.Count)
	require.Len(t, combos.Combinations, 4)

	for _, c := range combos.Combinations {
		assert.Equal(t, 7, c.Nights)
		assert.Equal(t, "USD", c.TotalPrice.Currency)
		want := c.Outbound.Price.Amount + c.Return.Price.Amount + c.Hotel.Price.Amount*7
		assert.Equal(t, want, c.TotalPrice.Amount)
	}
}

// TestHandler_Combinations_BeforeReview verifies the conflict response when
// combinations are requested too early.
func TestHandler_Combinations_BeforeReview(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err := resp.ParseSession()
	require.NoError(t, err)

	resp = ts.CombinationsRequest(sess.SessionID)
	assert.Equal(t, http.StatusConflict, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, false, errResp["success"])
}

// TestHandler_HotelsOnlySearch runs a hotels-only search, which needs no
// origin and queries only hotel-capable providers.
func TestHandler_HotelsOnlySearch(t *testing.T) {
	ts := NewRealServer(t)

	req := DefaultSearchRequest()
	req.Type = "hotels"
	req.Origin = ""

	resp := ts.SearchRequest(req)
	require.Equal(t, http.StatusOK, resp.Code)

	sess, err := resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, 2, sess.Metadata.ProvidersQueried)
	assert.Empty(t, sess.Flights)
}

// TestHandler_SearchReplacesSession verifies that passing a session id on a
// new search reuses the session and resets the wizard.
func TestHandler_SearchReplacesSession(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	first, err := resp.ParseSession()
	require.NoError(t, err)

	ts.EventRequest(first.SessionID, ToggleFlight("booking_flight_1", "outbound"))

	req := DefaultSearchRequest()
	req.SessionID = first.SessionID
	resp = ts.SearchRequest(req)
	require.Equal(t, http.StatusOK, resp.Code)

	second, err := resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "outbound_selection", second.Step)
	assert.Empty(t, second.Selections.Outbound)
}

// TestHandler_PartialProviderFailure verifies that one failing provider does
// not fail the whole search.
func TestHandler_PartialProviderFailure(t *testing.T) {
	healthy := mock.NewProvider("healthy", domain.CapabilityCombined).
		WithFlights(mock.SampleFlights("healthy", 2)).
		WithHotels(mock.SampleHotels("healthy", 1))
	broken := mock.NewProvider("broken", domain.CapabilityCombined).
		WithError(assert.AnError)

	ts := NewTestServer(t, healthy, broken)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	sess, err := resp.ParseSession()
	require.NoError(t, err)
	assert.Len(t, sess.Flights, 2)
	assert.Equal(t, 4, sess.Metadata.ProvidersQueried)
	assert.Equal(t, 2, sess.Metadata.ProvidersSucceeded)
	assert.Equal(t, 2, sess.Metadata.ProvidersFailed)
}

// TestHandler_AllProvidersFailed verifies the 503 response when every
// dispatched leg fails.
func TestHandler_AllProvidersFailed(t *testing.T) {
	broken := mock.NewProvider("broken", domain.CapabilityCombined).
		WithError(assert.AnError)

	ts := NewTestServer(t, broken)

	resp := ts.SearchRequest(DefaultSearchRequest())
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// TestHandler_Health checks the root-level health endpoint.
func TestHandler_Health(t *testing.T) {
	ts := NewRealServer(t)

	resp := ts.HealthRequest()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}
