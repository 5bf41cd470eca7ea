package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"calc-api/internal/calculator"
	"calc-api/internal/handlers"
	"calc-api/internal/observability"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "resource not found")
	})

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.NewAPI().RegisterRoutes(r)

	return r
}
