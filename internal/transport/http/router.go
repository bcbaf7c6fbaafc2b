// Package httptransport is the thin HTTP layer. Handlers delegate to domain
// services and never embed business logic.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"disha/internal/platform/metrics"
	"disha/internal/platform/middleware"
	"disha/internal/transport/http/shared"
)

// RouterConfig carries the handlers and platform pieces the router wires up.
type RouterConfig struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator middleware.JWTValidator

	Auth       *AuthHandler
	Profile    *ProfileHandler
	Assessment *AssessmentHandler
	College    *CollegeHandler

	// Health checks by component name, reported on /healthz.
	Health map[string]func(context.Context) error
}

// NewRouter assembles the public surface under /api/v1 plus the operational
// endpoints.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(cfg.Metrics))

	r.Get("/healthz", handleHealth(cfg.Health))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			cfg.Auth.Register(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			r.Use(middleware.RequireAuth(cfg.JWTValidator, cfg.Logger))
			cfg.Profile.Register(r)
			cfg.Assessment.Register(r)
			cfg.College.Register(r)
		})
	})

	return r
}

func handleHealth(checks map[string]func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				components[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			components[name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(components) > 0 {
			body["components"] = components
		}
		shared.WriteJSON(w, status, body)
	}
}
