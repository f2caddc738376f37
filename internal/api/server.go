// Copyright (c) 2026 Fittessness. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fittessness/fittessness/internal/auth"
	"github.com/fittessness/fittessness/internal/platform/apperr"
	"github.com/fittessness/fittessness/internal/platform/config"
	"github.com/fittessness/fittessness/internal/platform/constants"
	"github.com/fittessness/fittessness/internal/platform/middleware"
	"github.com/fittessness/fittessness/internal/platform/respond"
	"github.com/fittessness/fittessness/internal/platform/sec"
	"github.com/fittessness/fittessness/internal/workout"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles account routes (register, login, logout, profile).
	Auth *auth.Handler

	// Workout handles the training-log routes behind the session guard.
	Workout *workout.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The LoadSession middleware runs globally, so every handler downstream can
// read the session from the context; the Deny decision itself lives in
// [middleware.RequireLogin] on the protected groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, validator middleware.SessionValidator, signer *sec.CookieSigner, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	rateLimiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst, ctx.Done())

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(rateLimiter.Handler)
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.LoadSession(validator, signer))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Public Pages
	// Entry points that never require a session.
	r.Get("/", pageHome)
	r.Get("/about", pageAbout)
	r.Get("/register", pageRegister)
	r.Get("/login", pageLogin)

	// # Application Routes
	// Domain handlers register directly on the root router: the historical
	// page paths (/registered, /dashboard, ...) are part of the public
	// contract and carry no API prefix.
	h.Auth.RegisterRoutes(r)
	h.Workout.RegisterRoutes(r)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Page"))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the assembled router, used by end-to-end tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
