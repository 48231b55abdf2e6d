package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all travel search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TravelHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/search", h.Search)
	api.GET("/search", h.SearchByQuery)

	sessions := api.Group("/sessions")
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/events", h.PostEvent)
	sessions.GET("/:id/combinations", h.GetCombinations)
}
