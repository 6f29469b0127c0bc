// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

// Command api is the entry point for the Hirevine HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Connect to object storage (S3-compatible).
//  6. Run database migrations (idempotent).
//  7. Wire domain services, write guards, and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/hirevine/hirevine/internal/api"
	"github.com/hirevine/hirevine/internal/auth"
	"github.com/hirevine/hirevine/internal/core/application"
	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/core/job"
	"github.com/hirevine/hirevine/internal/document"
	"github.com/hirevine/hirevine/internal/guard"
	"github.com/hirevine/hirevine/internal/org"
	"github.com/hirevine/hirevine/internal/platform/config"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/migration"
	pgstore "github.com/hirevine/hirevine/internal/platform/postgres"
	redisstore "github.com/hirevine/hirevine/internal/platform/redis"
	"github.com/hirevine/hirevine/internal/platform/sec"
	"github.com/hirevine/hirevine/internal/platform/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Hirevine] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("preview_mode", cfg.IsPreview()),
		slog.Bool("demo_guard", cfg.DemoOrgSlug != ""),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Long-lived context for background workers (rate-limiter janitor).
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Object Storage ─────────────────────────────────────────────────
	objects, err := storage.NewS3Store(startupCtx, storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	}, log)
	must(log, err, "connect to object storage")

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckStorage: func() error {
			return objects.Check(context.Background())
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	inviteSigner := sec.NewInviteSigner(cfg.SessionSecret, constants.InviteTokenIssuer)

	orgService := org.NewService(org.NewPostgresRepository(pool), inviteSigner, log)
	orgHandler := org.NewHandler(orgService)

	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewSessionRepository(rdb),
		orgService,
		log,
	)
	authHandler := auth.NewHandler(authService)

	candidateService := candidate.NewService(
		candidate.NewPostgresRepository(pool),
		candidate.NewRedisDetailCache(rdb),
		log,
	)
	candidateHandler := candidate.NewHandler(candidateService)

	jobService := job.NewService(job.NewPostgresRepository(pool), log)
	jobHandler := job.NewHandler(jobService)

	applicationService := application.NewService(
		application.NewPostgresRepository(pool),
		candidateService,
		jobService,
		log,
	)
	applicationHandler := application.NewHandler(applicationService)

	documentService := document.NewService(
		document.NewPostgresRepository(pool),
		objects,
		candidateService,
		candidateService,
		log,
	)
	documentHandler := document.NewHandler(documentService)

	// ── 9. Write Guards ───────────────────────────────────────────────────
	// Ordered pipeline: the demo organization first, then preview lockdown.
	// Either veto alone blocks the write; only the first reason is surfaced.
	demoCache := guard.NewDemoOrgCache(cfg.DemoOrgSlug, orgService.LookupIDBySlug)
	guards := guard.NewPipeline(
		guard.NewDemoGuard(demoCache),
		guard.NewPreviewGuard(cfg.IsPreview()),
	)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        authHandler,
		Org:         orgHandler,
		Candidate:   candidateHandler,
		Job:         jobHandler,
		Application: applicationHandler,
		Document:    documentHandler,
	}

	server := api.NewServer(appCtx, cfg, log, authService, guards, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
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
