package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airdemo/bookings/internal/api"
	"airdemo/bookings/internal/config"
	"airdemo/bookings/internal/logging"
	"airdemo/bookings/internal/middleware"
)

// RegisterRoutes builds the router over already initialised dependencies.
func RegisterRoutes(deps *api.Dependencies, cfg config.ServerConfig, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, "127.0.0.1", "::1").Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.Conn, upSince))
	r.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Gatherer, promhttp.HandlerOpts{}))

	RegisterAPIRoutes(r, api.NewHandlers(deps))

	logging.Info("Router initialized with metrics and logging middleware")
	return r
}

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, h *api.Handlers) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/aircraft", func(ac chi.Router) {
			ac.Get("/", h.ListAircraftHandler())
			ac.Post("/", h.CreateAircraftHandler())
			ac.Get("/{code}", h.GetAircraftHandler())
			ac.Patch("/{code}", h.UpdateAircraftHandler())
			ac.Delete("/{code}", h.DeleteAircraftHandler())
		})

		v1.Route("/airports", func(ap chi.Router) {
			ap.Get("/", h.ListAirportsHandler())
			ap.Post("/", h.CreateAirportHandler())
			ap.Get("/nearby", h.NearbyAirportsHandler())
			ap.Post("/import", h.ImportAirportsHandler())
			ap.Get("/{code}", h.GetAirportHandler())
			ap.Delete("/{code}", h.DeleteAirportHandler())
		})

		v1.Get("/seats/{aircraft}", h.ListSeatsHandler())

		v1.Route("/bookings", func(b chi.Router) {
			b.Get("/", h.ListBookingsHandler())
			b.Post("/", h.CreateBookingHandler())
			b.Get("/{ref}", h.GetBookingHandler())
			b.Get("/{ref}/statistics", h.BookingStatisticsHandler())
			b.Get("/{ref}/tickets", h.BookingTicketsHandler())
		})

		v1.Route("/flights", func(f chi.Router) {
			f.Get("/", h.ListFlightsHandler())
			f.Post("/", h.CreateFlightHandler())
			f.Get("/statuses", h.FlightStatusesHandler())
			f.Get("/{id}", h.GetFlightHandler())
			f.Delete("/{id}", h.DeleteFlightHandler())
			f.Patch("/{id}/status", h.UpdateFlightStatusHandler())
			f.Patch("/{id}/actual-times", h.UpdateActualTimesHandler())
			f.Get("/{id}/statistics", h.FlightStatisticsHandler())
			f.Get("/{id}/boarding-passes", h.FlightBoardingPassesHandler())
			f.Get("/{id}/next-boarding-number", h.NextBoardingNumberHandler())
			f.Get("/{id}/occupied-seats", h.OccupiedSeatsHandler())
		})

		v1.Post("/boarding-passes", h.CreateBoardingPassHandler())
	})
}
