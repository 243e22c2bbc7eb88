package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)
	r.Use(s.rateLimitMiddleware)

	// Unmatched routes and methods get the uniform error envelope.
	// Registered before the subrouters so they inherit both handlers.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeNotFound(w, fmt.Sprintf("endpoint %s not found", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllow,
			fmt.Sprintf("method %s not allowed for %s", req.Method, req.URL.Path))
	})

	// Service banner and liveness (outside /api)
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/support-status", s.handleSupportStatus)
		r.Get("/docs", s.handleDocs)

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", s.handleListDevices)

			// Static group routes must be declared alongside the
			// wildcard; chi matches them before {modelID}.
			r.Get("/macbook-air", s.handleListAir)
			r.Get("/macbook-pro", s.handleListPro)
			r.Get("/{modelID}", s.handleGetDevice)
		})
	})

	return r
}

// handleHealth returns the server health status.
// Always 200; the one endpoint without the success envelope, for probes.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.version,
	})
}
