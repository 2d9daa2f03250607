// Copyright (c) 2026 Wavecrate. All rights reserved.

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

	"github.com/wavecrate/wavecrate/internal/catalog/album"
	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/catalog/label"
	"github.com/wavecrate/wavecrate/internal/catalog/lookup"
	"github.com/wavecrate/wavecrate/internal/dj"
	"github.com/wavecrate/wavecrate/internal/platform/config"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
	"github.com/wavecrate/wavecrate/internal/platform/middleware"
	"github.com/wavecrate/wavecrate/internal/program"
	"github.com/wavecrate/wavecrate/internal/softwarelog"
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

	// DJ handles staff accounts and the auth lifecycle.
	DJ *dj.Handler

	// Genre, Artist, Album form the nested catalog hierarchy.
	Genre  *genre.Handler
	Artist *artist.Handler
	Album  *album.Handler

	// Label serves the label and promoter directories.
	Label *label.Handler

	// Lookup resolves raw catalog tags.
	Lookup *lookup.Handler

	// Program serves the broadcast schedule.
	Program *program.Handler

	// SoftwareLog is the read-only diagnostics surface.
	SoftwareLog *softwarelog.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The catalog is mounted as its identifier hierarchy reads: albums nest
// under artists, artists under genres, so every route carries the
// composite key of the entity it addresses.
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
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.DJ.AuthRoutes())
		api.Mount("/djs", h.DJ.Routes())

		api.Route("/genres", func(genres chi.Router) {
			genres.Mount("/", h.Genre.Routes())
			genres.Route("/{abbreviation}/artists", func(artists chi.Router) {
				artists.Mount("/", h.Artist.Routes())
				artists.Mount("/{number}/albums", h.Album.Routes())
			})
		})

		api.Get("/albums/new", h.Album.NewBin)
		api.Mount("/catalog", h.Lookup.Routes())
		api.Mount("/labels", h.Label.LabelRoutes())
		api.Mount("/promoters", h.Label.PromoterRoutes())
		api.Mount("/schedule", h.Program.Routes())
		api.Mount("/logs", h.SoftwareLog.Routes())
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
