package rest

import (
	"net/http"

	"github.com/walled99/Learn-Deutsch/internal/transport/middleware"
)

// Routes collects what NewRouter mounts.
type Routes struct {
	Health     *HealthHandler
	Extraction *ExtractionHandler
	Metrics    http.Handler
	// ExtractLimit guards POST /extractions; nil disables it.
	ExtractLimit middleware.Middleware
}

// NewRouter builds the HTTP mux and wraps it in the common middleware,
// first entry outermost.
func NewRouter(routes Routes, common ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", routes.Health.Live)
	mux.HandleFunc("GET /ready", routes.Health.Ready)
	mux.HandleFunc("GET /health", routes.Health.Health)
	if routes.Metrics != nil {
		mux.Handle("GET /metrics", routes.Metrics)
	}
	mux.Handle("POST /extractions", middleware.Chain(routes.ExtractLimit)(http.HandlerFunc(routes.Extraction.Create)))

	return middleware.Chain(common...)(mux)
}
