// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The write-interception pipeline sits after session resolution and before
every route, so any mutating request can be vetoed with a structured reason
before a single business handler runs.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hirevine/hirevine/internal/auth"
	"github.com/hirevine/hirevine/internal/core/application"
	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/core/job"
	"github.com/hirevine/hirevine/internal/document"
	"github.com/hirevine/hirevine/internal/guard"
	"github.com/hirevine/hirevine/internal/org"
	"github.com/hirevine/hirevine/internal/platform/config"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/middleware"
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

	// Auth handles identity and session routes (register, login, switch).
	Auth *auth.Handler

	// Org manages organizations, memberships, and invitations.
	Org *org.Handler

	// Candidate manages the people in the recruiting pipeline.
	Candidate *candidate.Handler

	// Job manages positions and their screening questions.
	Job *job.Handler

	// Application moves candidates through job pipelines.
	Application *application.Handler

	// Document proxies binary uploads, downloads, and previews.
	Document *document.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, resolver middleware.SessionResolver, guards *guard.Pipeline, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Session resolution
	// must precede the guard pipeline, which needs the acting organization.
	// Path normalization runs first so every downstream consumer, the guard
	// pipeline included, sees the canonical path rather than the wire form.
	r.Use(chimw.CleanPath)
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.SessionLoader(resolver))
	// CORS before the guard pipeline so a vetoed mutation still carries the
	// headers a browser needs to read the structured refusal.
	r.Use(middleware.CORS(cfg))
	r.Use(guards.Middleware)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/organizations", h.Org.Routes())
		api.Mount("/candidates", h.Candidate.Routes())
		api.Mount("/candidates/{candidateID}/documents", h.Document.CandidateRoutes())
		api.Mount("/jobs", h.Job.Routes())
		api.Mount("/applications", h.Application.Routes())
		api.Mount("/documents", h.Document.Routes())
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
