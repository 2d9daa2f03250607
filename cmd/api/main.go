// Copyright (c) 2026 Wavecrate. All rights reserved.

// Command api is the entry point for the Wavecrate HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stdout JSON plus the software log buffer).
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent), then attach the software log.
//  5. Connect to Redis (DJ sessions and reset tokens).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wavecrate/wavecrate/internal/api"
	"github.com/wavecrate/wavecrate/internal/catalog/album"
	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/catalog/label"
	"github.com/wavecrate/wavecrate/internal/catalog/lookup"
	"github.com/wavecrate/wavecrate/internal/dj"
	"github.com/wavecrate/wavecrate/internal/platform/config"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
	"github.com/wavecrate/wavecrate/internal/platform/dblog"
	"github.com/wavecrate/wavecrate/internal/platform/migration"
	pgstore "github.com/wavecrate/wavecrate/internal/platform/postgres"
	redisstore "github.com/wavecrate/wavecrate/internal/platform/redis"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
	"github.com/wavecrate/wavecrate/internal/program"
	"github.com/wavecrate/wavecrate/internal/softwarelog"
)

func main() {
	// ── 1. Bootstrap Logger ───────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	bootLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(bootLog)

	bootLog.Info("[Wavecrate] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(bootLog, err, "load configuration")

	stdoutLevel := slog.LevelInfo
	if cfg.Debug {
		stdoutLevel = slog.LevelDebug
	}

	var dbLogLevel slog.Level
	if err := dbLogLevel.UnmarshalText([]byte(cfg.DBLogLevel)); err != nil {
		bootLog.Warn("invalid DB_LOG_LEVEL, falling back to warn", slog.String("value", cfg.DBLogLevel))
		dbLogLevel = slog.LevelWarn
	}

	// The software log handler starts detached: records logged before the
	// database is reachable are buffered and replayed after Attach below.
	dbLogHandler := dblog.NewHandler(constants.AppName, dbLogLevel, cfg.DBLogBacklog)

	stdoutHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: stdoutLevel})
	log := slog.New(dblog.NewFanout(stdoutHandler, dbLogHandler)).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations, then software log attach ───────────────────────────
	// Attach only after migrations so the software_log table exists.
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	softwareLogRepository := softwarelog.NewPostgresRepository(pool)
	dbLogHandler.Attach(softwareLogRepository)

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckSessions: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	// Repositories. The album store doubles as the artist service's letter
	// lister, and the DJ store doubles as the DJ directory for reviews and
	// program log entries.
	genreRepository := genre.NewPostgresRepository(pool)
	artistRepository := artist.NewPostgresRepository(pool)
	albumRepository := album.NewPostgresRepository(pool)
	labelRepository := label.NewPostgresRepository(pool)
	djRepository := dj.NewPostgresRepository(pool)
	programRepository := program.NewPostgresRepository(pool)

	genreService := genre.NewService(genreRepository, log)
	artistService := artist.NewService(artistRepository, genreRepository, albumRepository, log)
	albumService := album.NewService(
		albumRepository,
		albumRepository,
		albumRepository,
		artistRepository,
		labelRepository,
		djRepository,
		log,
	)
	labelService := label.NewService(labelRepository, log)
	lookupService := lookup.NewService(genreService, artistService, albumService)
	programService := program.NewService(programRepository, djRepository, log)

	djService := dj.NewService(
		djRepository,
		dj.NewRedisSessionStore(rdb),
		dj.NewRedisResetTokenStore(rdb),
		jwtService,
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	// Long-lived context for the rate limiter's cleanup goroutine; cancelled
	// when main returns.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		DJ:          dj.NewHandler(djService),
		Genre:       genre.NewHandler(genreService),
		Artist:      artist.NewHandler(artistService),
		Album:       album.NewHandler(albumService),
		Label:       label.NewHandler(labelService),
		Lookup:      lookup.NewHandler(lookupService),
		Program:     program.NewHandler(programService),
		SoftwareLog: softwarelog.NewHandler(softwareLogRepository),
	}

	server := api.NewServer(serverCtx, cfg, log, jwtService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
