package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zuglang-api/internal/config"
	"zuglang-api/internal/handlers"
	"zuglang-api/internal/numerals"
	"zuglang-api/internal/observability"
	"zuglang-api/internal/tools"
	"zuglang-api/internal/translate"
)

func NewRouter(cfg config.Config) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Get("/tools", tools.Handler(cfg.BaseURL))

	r.Route("/zuglang", func(r chi.Router) {
		numerals.RegisterRoutes(r)
		translate.RegisterRoutes(r)
	})

	return r
}
