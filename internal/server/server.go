// Package server exposes a topology.Topology over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/gridspace/topology"
)

// Server serves read-only queries against one grid.
type Server struct {
	top *topology.Topology
	log *slog.Logger
}

// New creates a Server over top.
func New(top *topology.Topology, log *slog.Logger) *Server {
	return &Server{top: top, log: log}
}

// Routes configures all routes and returns the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/grid", s.gridInfo)
		r.Get("/cells/at", s.cellAt)
		r.Get("/cells/nearest", s.nearest)
		r.Get("/cells/{id}/neighbors", s.neighbors)
		r.Post("/path", s.path)
		r.Get("/distance", s.distance)
		r.Get("/schema/path", s.pathSchema)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})
	return r
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON", "err", err)
	}
}

// respondError writes an error JSON response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
