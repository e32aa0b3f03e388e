// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

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

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/events"
	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/newsletter"
	"github.com/barcodepapel/api/internal/platform/config"
	"github.com/barcodepapel/api/internal/platform/constants"
	"github.com/barcodepapel/api/internal/platform/middleware"
	"github.com/barcodepapel/api/internal/platform/sec"
	"github.com/barcodepapel/api/internal/support"
	"github.com/barcodepapel/api/internal/users/auth"
	"github.com/barcodepapel/api/internal/users/recovery"
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

	// Auth handles login, refresh, logout and the admin user table.
	Auth *auth.Handler

	// Recovery handles self-service password recovery and admin resets.
	Recovery *recovery.Handler

	// Events handles the public calendar and its administration CRUD.
	Events *events.Handler

	// Newsletter handles public newsletter signups.
	Newsletter *newsletter.Handler

	// Support receives problem reports and exposes the triage table.
	Support *support.Handler

	// Audit exposes the admin audit trail screen.
	Audit *audit.Handler

	// Mail exposes the admin SMTP configuration probe.
	Mail *mail.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// Public surface: the website talks to these without a session.
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/recovery", h.Recovery.Routes())
		api.Mount("/events", h.Events.Routes())
		api.Mount("/newsletter", h.Newsletter.Routes())
		api.Mount("/tickets", h.Support.Routes())

		// Admin panel surface: every route requires an authenticated admin.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.RequireRole(sec.RoleAdmin))

			admin.Mount("/users", h.Auth.AdminRoutes())
			admin.Mount("/recovery", h.Recovery.AdminRoutes())
			admin.Mount("/events", h.Events.AdminRoutes())
			admin.Mount("/tickets", h.Support.AdminRoutes())
			admin.Mount("/audit", h.Audit.Routes())
			admin.Mount("/mail", h.Mail.Routes())
		})
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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
