// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/vvdex/internal/core/access"
	"github.com/taibuivan/vvdex/internal/core/catalog"
	"github.com/taibuivan/vvdex/internal/core/document"
	"github.com/taibuivan/vvdex/internal/core/updatelog"
	"github.com/taibuivan/vvdex/internal/platform/constants"
	"github.com/taibuivan/vvdex/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler and always returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Access issues admin tokens.
	Access *access.Handler

	// Documents serves guides and reference articles.
	Documents *document.Handler

	// UpdateLogs serves the release notes feed.
	UpdateLogs *updatelog.Handler

	// Catalog serves characters, swimsuits and skills.
	Catalog *catalog.Handler
}

// ServerConfig is the subset of the configuration the router needs.
type ServerConfig interface {
	middleware.CORSConfig
	Port() string
}

// # Router

// NewRouter builds the chi router with the full middleware chain and all route groups.
//
// The rate limiter's cleanup goroutine lives until ctx is cancelled.
func NewRouter(ctx context.Context, cfg middleware.CORSConfig, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) http.Handler {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimit(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(chimw.CleanPath)
	r.Use(middleware.Authenticate(verifier))

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Access.RegisterRoutes)
		api.Route(document.Path, h.Documents.RegisterRoutes)
		api.Route(updatelog.Path, h.UpdateLogs.RegisterRoutes)
		api.Group(h.Catalog.RegisterRoutes)
	})

	return r
}

// # Server Initialization

// NewServer wraps [NewRouter] in an [http.Server] listening on cfg's port.
func NewServer(ctx context.Context, cfg ServerConfig, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port(),
			Handler:           NewRouter(ctx, cfg, log, verifier, h),
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
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
