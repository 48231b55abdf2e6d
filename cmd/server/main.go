// Package main is the entry point for the travel search aggregation service.
//
//	@title						TravelHelper Aggregation API
//	@version					1.0.0
//	@description				A travel search aggregation service that queries flight and hotel providers, guides the user through a selection wizard and builds trip combinations.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/SmokedKoala/TravelHelper/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/SmokedKoala/TravelHelper/docs"

	travelhttp "github.com/SmokedKoala/TravelHelper/internal/adapter/http"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/http/middleware"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/aviasales"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/booking"
	"github.com/SmokedKoala/TravelHelper/internal/adapter/provider/ostrovok"
	"github.com/SmokedKoala/TravelHelper/internal/config"
	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/logger"
	"github.com/SmokedKoala/TravelHelper/internal/session"
	"github.com/SmokedKoala/TravelHelper/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-helper",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	sessions, err := setupRoutes(e, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}
	defer sessions.Close()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires providers, the search use case and the session manager
// into the HTTP handler and registers all routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) (*session.Manager, error) {
	// Provider adapters replay canned responses from the mock data directory.
	dir := cfg.Providers.MockDataDir
	providers := []domain.TravelProvider{
		aviasales.NewAdapter(dir + "/aviasales_flights_response.json"),
		booking.NewAdapter(dir+"/booking_flights_response.json", dir+"/booking_hotels_response.json"),
		ostrovok.NewAdapter(dir + "/ostrovok_hotels_response.json"),
	}

	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("register provider %s: %w", p.Name(), err)
		}
	}
	log.Info().Int("providers", registry.Count()).Msg("Providers registered")

	ucConfig := &usecase.Config{
		GlobalTimeout:   cfg.Timeouts.GlobalSearch,
		ProviderTimeout: cfg.Timeouts.PerProvider,
	}
	searchUseCase := usecase.NewSearchUseCase(registry, ucConfig, log)

	sessions := session.NewManager(cfg.Session.TTL, log)

	handler := travelhttp.NewTravelHandler(searchUseCase, sessions)
	travelhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return sessions, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
