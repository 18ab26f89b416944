// Package core provides the HTTP chassis for the paystate service: a chi
// router with the cross-cutting middleware chain (panic recovery, request-id
// correlation, structured request logging) applied before requests reach the
// billing handlers.
package core

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paystate/internal/config"
)

// Server bundles the router with its shared dependencies so handlers and
// tests can be wired explicitly.
type Server struct {
	Config *config.Config
	Logger *slog.Logger

	router *chi.Mux
}

// RouteRegistrar mounts a group of routes onto the v1 router.
type RouteRegistrar func(r chi.Router)

// NewServer builds the chassis and installs the base middleware chain.
// Recoverer is outermost so every panic in the chain is caught.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	s := &Server{
		Config: cfg,
		Logger: logger,
		router: chi.NewRouter(),
	}

	s.router.Use(s.Recoverer)
	s.router.Use(RequestID)
	s.router.Use(RequestLogger(logger))

	s.router.Get("/health", s.HandleHealth)

	return s, nil
}

// MountV1 registers the given route groups under /v1.
func (s *Server) MountV1(registrars ...RouteRegistrar) {
	s.router.Route("/v1", func(r chi.Router) {
		for _, register := range registrars {
			register(r)
		}
	})
}

// Handler returns the http.Handler for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HandleHealth is the liveness endpoint. The service has no hard runtime
// dependencies (the resolver is pure and catalog fetches degrade), so
// liveness is unconditional.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}
