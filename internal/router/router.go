package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-tracker/internal/config"
	"job-tracker/internal/handler"
	"job-tracker/internal/middleware"
	"job-tracker/internal/model"
)

// HealthChecker reports whether the backing store is reachable.
// Satisfied by *database.DB.
type HealthChecker interface {
	Health(ctx context.Context) error
}

func New(
	cfg *config.Config,
	health HealthChecker,
	auth *middleware.Auth,
	authHandler *handler.AuthHandler,
	applicationHandler *handler.ApplicationHandler,
) http.Handler {
	r := chi.NewRouter()
	apiLimiter := middleware.NewRateLimit(cfg.RateLimitRPM)
	authLimiter := middleware.NewRateLimit(cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if err := health.Health(req.Context()); err != nil {
			writeBody(w, http.StatusServiceUnavailable, model.HealthResponse{
				Status:  "unavailable",
				Message: "Database unreachable",
			})
			return
		}

		writeBody(w, http.StatusOK, model.HealthResponse{
			Status:  "OK",
			Message: "Job Tracker API is running",
		})
	})

	r.Route("/api/auth", func(api chi.Router) {
		api.Use(authLimiter.Handler)
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
		api.Post("/logout", authHandler.Logout)
		api.With(auth.Require).Get("/me", authHandler.Me)
	})

	r.Route("/api/applications", func(api chi.Router) {
		api.Use(apiLimiter.Handler)
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(auth.Require)

		api.Get("/", applicationHandler.List)
		api.Post("/", applicationHandler.Create)
		api.Route("/{id}", func(item chi.Router) {
			item.Get("/", applicationHandler.Get)
			item.Put("/", applicationHandler.Update)
			item.Delete("/", applicationHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusNotFound, model.MessageResponse{
			Success: false,
			Message: "Not Found - " + r.URL.Path,
		})
	})

	return r
}
