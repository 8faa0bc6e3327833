// Package api exposes the assessment engine over HTTP for programmatic
// intake: submit answer batches, retrieve stored assessments, and
// inspect the question catalog.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fundlens/readiness-cli/internal/assess"
	"github.com/fundlens/readiness-cli/internal/config"
)

func NewRouter(svc *assess.Service, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(RateLimit(cfg.RatePerSecond, cfg.RateBurst))

	h := NewHandler(svc)

	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", h.CreateAssessment)
		r.Get("/assessments", h.ListAssessments)
		r.Get("/assessments/{id}", h.GetAssessment)
		r.Get("/catalog", h.GetCatalog)
	})

	return r
}
