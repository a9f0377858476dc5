// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Flagdex HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the flag dataset, the country directory and the taxonomy.
//  4. Connect to PostgreSQL and run migrations (optional).
//  5. Connect to Redis (optional).
//  6. Wire HTTP handlers.
//  7. Start the HTTP server and the background country figures fetch.
//  8. Shut down gracefully on SIGINT or SIGTERM.
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/api"
	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/preference"
	"github.com/taibuivan/flagdex/internal/core/session"
	"github.com/taibuivan/flagdex/internal/platform/config"
	"github.com/taibuivan/flagdex/internal/platform/constants"
	"github.com/taibuivan/flagdex/internal/platform/migration"
	pgstore "github.com/taibuivan/flagdex/internal/platform/postgres"
	redisstore "github.com/taibuivan/flagdex/internal/platform/redis"
)

// sweepInterval is how often expired in-memory sessions are dropped.
const sweepInterval = 10 * time.Minute

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("postgres", cfg.HasDatabase()),
		slog.Bool("redis", cfg.HasRedis()),
	)

	// Root context, cancelled by the first shutdown signal.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Bundled Data ───────────────────────────────────────────────────
	fsys := data.Open(cfg.DataDir)
	stats := country.NewStats()

	catalogService, err := catalog.Open(fsys, stats, log)
	must(log, err, "load flag data")

	// ── 4. PostgreSQL (optional) ──────────────────────────────────────────
	var pool *pgxpool.Pool
	preferenceRepository := preference.Repository(preference.NewMemoryRepository())

	if cfg.HasDatabase() {
		if cfg.MigrationPath != "" {
			must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		} else {
			must(log, migration.RunUpFS(cfg.DatabaseURL, fsys, data.MigrationsDir, log), "run migrations")
		}

		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		preferenceRepository = preference.NewPostgresRepository(pool)
	} else {
		log.Warn("postgres_not_configured", slog.String("preferences", "memory"))
	}

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var (
		rdb          *redis.Client
		sessionStore session.Store
		memoryStore  *session.MemoryStore
		statsCache   country.StatsCache
	)

	if cfg.HasRedis() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		sessionStore = session.NewRedisStore(rdb, cfg.SessionTTL)
		statsCache = country.NewRedisStatsCache(rdb, country.DefaultCacheKey)
	} else {
		log.Warn("redis_not_configured", slog.String("sessions", "memory"))
		memoryStore = session.NewMemoryStore(cfg.SessionTTL)
		sessionStore = memoryStore
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	sessionService := session.NewService(sessionStore, catalogService, log)
	preferenceService := preference.NewService(preferenceRepository, log)

	refresher := country.NewRefresher(
		country.NewClient(cfg.CountryAPIURL, cfg.CountryAPITimeout),
		statsCache, stats, catalogService.Keys(), cfg.StatsCacheTTL, log,
	)

	health := api.HealthDependencies{CountStats: stats.Len}
	if pool != nil {
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}
	if rdb != nil {
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Catalog:    catalog.NewHandler(catalogService),
		Session:    session.NewHandler(sessionService),
		Preference: preference.NewHandler(preferenceService),
	})

	group, groupCtx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Country figures are fetched once. Failure only leaves them at zero.
	group.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(groupCtx, constants.StartupFetchTimeout)
		defer cancel()

		if err := refresher.Refresh(fetchCtx); err != nil {
			log.Warn("country_stats_unavailable", slog.Any("error", err))
		}
		return nil
	})

	if memoryStore != nil {
		group.Go(func() error {
			ticker := time.NewTicker(sweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if removed := memoryStore.Sweep(); removed > 0 {
						log.Debug("sessions_expired", slog.Int("removed", removed))
					}
				case <-groupCtx.Done():
					return nil
				}
			}
		})
	}

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	if err := group.Wait(); err != nil {
		log.Error("server_stopped_with_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger carrying the application name on every entry.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
