package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/SmokedKoala/TravelHelper/internal/adapter/http/response"
	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/session"
	"github.com/SmokedKoala/TravelHelper/internal/usecase"
)

// TravelHandler handles HTTP requests for search and wizard endpoints.
type TravelHandler struct {
	useCase  usecase.SearchUseCase
	sessions *session.Manager
}

// NewTravelHandler creates a new TravelHandler.
func NewTravelHandler(uc usecase.SearchUseCase, sessions *session.Manager) *TravelHandler {
	return &TravelHandler{
		useCase:  uc,
		sessions: sessions,
	}
}

// Search handles POST /api/v1/search
//
// @Summary Search for travel options
// @Description Search flights, hotels, or both across all capable providers and open a wizard session over the results
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search parameters"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Stale search result"
// @Failure 503 {object} response.ErrorDetail "No provider available"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/search [post]
func (h *TravelHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return h.search(c, &req)
}

// SearchByQuery handles GET /api/v1/search, the shareable-link form of the
// search endpoint.
//
// @Summary Search for travel options via query parameters
// @Description Same as the POST form, driven by from/to/departure/return/guests/rooms query parameters
// @Tags search
// @Produce json
// @Param from query string true "Origin city"
// @Param to query string true "Destination city"
// @Param departure query string true "Departure date (YYYY-MM-DD)"
// @Param return query string false "Return date (YYYY-MM-DD)"
// @Param guests query int false "Hotel guests (default 2)"
// @Param rooms query int false "Hotel rooms (default 1)"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/search [get]
func (h *TravelHandler) SearchByQuery(c echo.Context) error {
	return h.search(c, SearchRequestFromQuery(c))
}

func (h *TravelHandler) search(c echo.Context, req *SearchRequest) error {
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	agg, err := h.useCase.Search(c.Request().Context(), req.Capability(), req.ToSearchParams(), req.ToSearchOptions())
	if err != nil {
		return h.handleError(c, err)
	}

	var snap session.Snapshot
	if req.SessionID != "" {
		snap, err = h.sessions.Replace(req.SessionID, agg)
		if err != nil {
			return h.handleError(c, err)
		}
	} else {
		snap = h.sessions.Create(agg)
	}

	return response.SearchResults(c, toSessionResponse(snap))
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get a wizard session
// @Description Return the current wizard step, selections, and the records visible at that step
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *TravelHandler) GetSession(c echo.Context) error {
	snap, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(snap))
}

// PostEvent handles POST /api/v1/sessions/:id/events
//
// @Summary Apply a wizard event
// @Description Apply one wizard action (toggle_flight, toggle_hotel, next, previous, restart) and return the resulting session state
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body SessionEventRequest true "Wizard event"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/events [post]
func (h *TravelHandler) PostEvent(c echo.Context) error {
	var req SessionEventRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	snap, err := h.sessions.Apply(c.Param("id"), req.ToEvent())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toSessionResponse(snap))
}

// GetCombinations handles GET /api/v1/sessions/:id/combinations
//
// @Summary Get priced combinations
// @Description Enumerate every selected (outbound, return, hotel) triple with its total price. Only available at the review step.
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} CombinationsResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Wizard not at review step"
// @Router /api/v1/sessions/{id}/combinations [get]
func (h *TravelHandler) GetCombinations(c echo.Context) error {
	id := c.Param("id")
	combos, err := h.sessions.Combinations(id)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, toCombinationsResponse(id, combos))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TravelHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TravelHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain and session errors to HTTP responses.
func (h *TravelHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return response.SessionNotFound(c)

	case errors.Is(err, session.ErrNotReviewStep):
		return response.Conflict(c, response.MsgNotReviewStep)

	case errors.Is(err, session.ErrStaleSearch):
		return response.Conflict(c, response.MsgStaleSearch)

	case errors.Is(err, domain.ErrNoProvider):
		return response.ServiceUnavailableWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrAllProvidersFailed):
		return response.ServiceUnavailable(c)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())

	default:
		return response.InternalServerError(c)
	}
}
