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

	"github.com/wynnforge/wynnforge/internal/bootstrap"
	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/config"
	"github.com/wynnforge/wynnforge/internal/database"
	"github.com/wynnforge/wynnforge/internal/database/postgres"
	"github.com/wynnforge/wynnforge/internal/engine"
	"github.com/wynnforge/wynnforge/internal/export"
	"github.com/wynnforge/wynnforge/internal/handler"
	"github.com/wynnforge/wynnforge/internal/profile"
	"github.com/wynnforge/wynnforge/internal/scheduler"
	"github.com/wynnforge/wynnforge/internal/server"
	"github.com/wynnforge/wynnforge/internal/validation"
	"github.com/wynnforge/wynnforge/internal/worker"
)

// ShutdownTimeout bounds how long graceful shutdown may take
const ShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := config.CheckEnvSchema(); err != nil {
		slog.Error("Environment rejected", "error", err)
		os.Exit(1)
	}
	for _, warning := range config.EnvWarnings() {
		slog.Warn(warning)
	}

	handler.InitValidator()

	ctx := context.Background()

	// Catalog stack: loader, fetcher chain, service
	loader := catalog.NewLoader(validation.NewSchemaValidator(), "")
	fetcher := catalog.NewHTTPFetcher(cfg.CatalogURL, cfg.CatalogFallbackURL, cfg.CatalogCacheFile, cfg.CatalogFetchTimeout)
	catalogSvc := catalog.NewService(loader, fetcher, catalog.DefaultOptions())

	// The database is optional: without one the catalog lives in memory
	// and the cache file alone
	var dbPool database.Pool
	var store catalog.Store
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Warn("Database unavailable, running without snapshot store", "error", err)
	} else {
		dbPool = pool
		store = postgres.NewItemRepository(pool)
	}

	if err := bootstrap.PrimeCatalog(ctx, catalogSvc, store, cfg.CatalogCacheFile); err != nil {
		// Not fatal: the scheduler keeps retrying and readiness reports
		// the catalog as unavailable until a refresh lands
		slog.Error("Catalog priming failed", "error", err)
	}

	engineSvc := engine.NewService(engine.Options{
		MaxCombinations: int64(cfg.MaxCombinations),
		CandidateLimit:  cfg.CandidateLimit,
		MaxSkillPoints:  cfg.MaxSkillPoints,
		Workers:         cfg.WorkerCount,
	})

	profiles := profile.NewStore()
	if err := profiles.LoadFile(ctx, cfg.ProfilesPath); err != nil {
		slog.Warn("Profile file not loaded, using built-in profiles",
			"path", cfg.ProfilesPath, "error", err)
	}

	exporter := export.NewService()

	// Periodic catalog refresh
	workerPool := worker.NewPool(worker.RefreshWorkerCount, worker.RefreshQueueSize)
	workerPool.Start(ctx)

	sched := scheduler.New(workerPool)
	sched.Schedule(ctx, cfg.CatalogRefreshInterval,
		worker.NewCatalogRefreshJob(catalogSvc, store, cfg.CatalogCacheFile))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies,
		dbPool, catalogSvc, engineSvc, profiles, exporter, cfg.DefaultTopN)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
		DBPool:     dbPool,
	})
}
