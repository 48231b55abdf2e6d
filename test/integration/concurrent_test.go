package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that concurrent search
// requests are handled correctly and each opens its own session.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	provider := mock.NewProvider("booking", domain.CapabilityCombined).
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithFlights(mock.SampleFlights("booking", 3)).
		WithHotels(mock.SampleHotels("booking", 2))

	ts := NewTestServer(t, provider)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(DefaultSearchRequest())
		}(i)
	}

	wg.Wait()

	seen := make(map[string]bool)
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		sess, err := results[i].ParseSession()
		require.NoError(t, err)
		assert.Len(t, sess.Flights, 3, "request %d should see 3 outbound flights", i)
		assert.False(t, seen[sess.SessionID], "request %d reused session %s", i, sess.SessionID)
		seen[sess.SessionID] = true
	}

	assert.Equal(t, numRequests, ts.Sessions.Count())
	assert.GreaterOrEqual(t, provider.FlightCalls(), numRequests)
}

// TestConcurrent_EventsOnOneSession fires concurrent toggle events at a
// single session and verifies the session stays consistent.
func TestConcurrent_EventsOnOneSession(t *testing.T) {
	provider := mock.NewProvider("booking", domain.CapabilityCombined).
		WithFlights(mock.SampleFlights("booking", 4)).
		WithHotels(mock.SampleHotels("booking", 2))

	ts := NewTestServer(t, provider)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err := resp.ParseSession()
	require.NoError(t, err)
	id := sess.SessionID

	// Toggle each flight twice concurrently. Every pair of toggles cancels
	// out, so the final selection must be empty.
	var wg sync.WaitGroup
	for _, flightID := range []string{"booking_flight_1", "booking_flight_2", "booking_flight_3", "booking_flight_4"} {
		for n := 0; n < 2; n++ {
			wg.Add(1)
			go func(fid string) {
				defer wg.Done()
				r := ts.EventRequest(id, ToggleFlight(fid, "outbound"))
				assert.Equal(t, http.StatusOK, r.Code)
			}(flightID)
		}
	}
	wg.Wait()

	resp = ts.SessionRequest(id)
	require.Equal(t, http.StatusOK, resp.Code)
	sess, err = resp.ParseSession()
	require.NoError(t, err)
	assert.Equal(t, "outbound_selection", sess.Step)
	assert.Empty(t, sess.Selections.Outbound)
}

// TestConcurrent_IndependentSessions verifies that wizard progress in one
// session never leaks into another.
func TestConcurrent_IndependentSessions(t *testing.T) {
	provider := mock.NewProvider("booking", domain.CapabilityCombined).
		WithFlights(mock.SampleFlights("booking", 2)).
		WithHotels(mock.SampleHotels("booking", 1))

	ts := NewTestServer(t, provider)

	respA := ts.SearchRequest(DefaultSearchRequest())
	respB := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, respA.Code)
	require.Equal(t, http.StatusOK, respB.Code)

	sessA, err := respA.ParseSession()
	require.NoError(t, err)
	sessB, err := respB.ParseSession()
	require.NoError(t, err)
	require.NotEqual(t, sessA.SessionID, sessB.SessionID)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ts.EventRequest(sessA.SessionID, ToggleFlight("booking_flight_1", "outbound"))
		ts.EventRequest(sessA.SessionID, Next())
	}()
	go func() {
		defer wg.Done()
		ts.EventRequest(sessB.SessionID, ToggleFlight("booking_flight_2", "outbound"))
	}()
	wg.Wait()

	a, err := ts.SessionRequest(sessA.SessionID).ParseSession()
	require.NoError(t, err)
	b, err := ts.SessionRequest(sessB.SessionID).ParseSession()
	require.NoError(t, err)

	assert.Equal(t, "return_selection", a.Step)
	assert.Equal(t, []string{"booking_flight_1"}, a.Selections.Outbound)

	assert.Equal(t, "outbound_selection", b.Step)
	assert.Equal(t, []string{"booking_flight_2"}, b.Selections.Outbound)
}

// TestConcurrent_SlowProviderTimeout verifies that a provider slower than
// the per-provider timeout is dropped while fast providers still answer.
func TestConcurrent_SlowProviderTimeout(t *testing.T) {
	fast := mock.NewProvider("fast", domain.CapabilityCombined).
		WithFlights(mock.SampleFlights("fast", 2)).
		WithHotels(mock.SampleHotels("fast", 1))
	slow := mock.NewProvider("slow", domain.CapabilityCombined).
		WithDelay(5 * time.Second).
		WithFlights(mock.SampleFlights("slow", 3))

	ts := NewTestServer(t, fast, slow)

	resp := ts.SearchRequest(DefaultSearchRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	sess, err := resp.ParseSession()
	require.NoError(t, err)
	assert.Len(t, sess.Flights, 2, "only the fast provider's flights survive")
	assert.Equal(t, 4, sess.Metadata.ProvidersQueried)
	assert.Equal(t, 2, sess.Metadata.ProvidersFailed)
}
