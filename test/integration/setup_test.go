// Package integration provides helpers and integration tests for the travel
// aggregation service. Integration tests verify that components work together
// correctly: HTTP handlers, the search use case, the session manager and the
// provider adapters replaying canned responses.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/SmokedKoala/TravelHelper/internal/adapter/http"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/aviasales"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/booking"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/ostrovok"
	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/logger"
	"github.com/SmokedKoala/TravelHelper/internal/session"
	"github.com/SmokedKoala/TravelHelper/internal/usecase"
	"github.com/SmokedKoala/TravelHelper/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Sessions *session.Manager
}

// NewTestServer creates a test server over the given providers.
func NewTestServer(t *testing.T, providers ...domain.TravelProvider) *TestServer {
	t.Helper()

	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			t.Fatalf("Failed to register provider %s: %v", p.Name(), err)
		}
	}

	uc := usecase.NewSearchUseCase(registry, &usecase.Config{
		GlobalTimeout:   2 * time.Second,
		ProviderTimeout: time.Second,
	}, logger.Nop())

	sessions := session.NewManager(time.Minute, logger.Nop())
	t.Cleanup(sessions.Close)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewTravelHandler(uc, sessions)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Sessions: sessions,
	}
}

// NewRealServer creates a test server over the real provider adapters,
// replaying the canned responses shipped in docs/response-mock.
func NewRealServer(t *testing.T) *TestServer {
	t.Helper()

	return NewTestServer(t,
		aviasales.NewAdapter(testutil.MockPath(t, "aviasales_flights_response.json")),
		booking.NewAdapter(
			testutil.MockPath(t, "booking_flights_response.json"),
			testutil.MockPath(t, "booking_hotels_response.json"),
		),
		ostrovok.NewAdapter(testutil.MockPath(t, "ostrovok_hotels_response.json")),
	)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   body,
	})
}

// SessionRequest fetches the current state of a session.
func (ts *TestServer) SessionRequest(sessionID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID,
	})
}

// EventRequest applies a wizard event to a session.
func (ts *TestServer) EventRequest(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/events",
		Body:   body,
	})
}

// CombinationsRequest fetches the combinations of a session.
func (ts *TestServer) CombinationsRequest(sessionID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID + "/combinations",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSession parses the response body as a SessionResponse.
func (r Response) ParseSession() (*httpAdapter.SessionResponse, error) {
	var resp httpAdapter.SessionResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseCombinations parses the response body as a CombinationsResponse.
func (r Response) ParseCombinations() (*httpAdapter.CombinationsResponse, error) {
	var resp httpAdapter.CombinationsResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Type          string `json:"type,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Guests        int    `json:"guests,omitempty"`
	Rooms         int    `json:"rooms,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	SortBy        string `json:"sortBy,omitempty"`
}

// DefaultSearchRequest returns a valid round-trip search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "Moscow",
		Destination:   "Paris",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-08",
		Guests:        2,
	}
}

// ToggleFlight builds a toggle_flight event body.
func ToggleFlight(id, leg string) map[string]string {
	return map[string]string{"action": "toggle_flight", "id": id, "leg": leg}
}

// ToggleHotel builds a toggle_hotel event body.
func ToggleHotel(id string) map[string]string {
	return map[string]string{"action": "toggle_hotel", "id": id}
}

// Next builds a next event body.
func Next() map[string]string {
	return map[string]string{"action": "next"}
}
