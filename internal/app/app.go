package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/config"
	"github.com/somi-im/somi/internal/domain"
	"github.com/somi-im/somi/internal/httpserver"
	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/importer"
	"github.com/somi-im/somi/internal/logger"
	"github.com/somi-im/somi/internal/redis"
	"github.com/somi-im/somi/internal/scheduler"
	"github.com/somi-im/somi/internal/sources/seedfile"
	redisstore "github.com/somi-im/somi/internal/store/redis"
	"github.com/somi-im/somi/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	cell        *catalog.Cell
	service     *catalog.Service
	watcher     *scheduler.StoreWatcher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	cell := catalog.NewCell()
	store := redisstore.NewStore(redisClient)
	service := catalog.NewService(cell, store, loggerClient)

	// Load the persisted collection; an empty store falls back to the
	// seed catalog (YAML file when configured, built-in list otherwise).
	// Any other load failure is fatal: seeding on top of a transient
	// error would overwrite the still-present collection and propagate
	// the seed to sibling instances.
	syncer := scheduler.NewStoreSyncer(store, cell, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		if !errors.Is(err, redisstore.ErrNoSnapshot) {
			loggerClient.Errorf("Failed to load collection from Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("no persisted collection, seeding catalog")
		seedCatalog(cfg, service, loggerClient)
	}

	watcher := scheduler.NewStoreWatcher(store, cell, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Catalog:       service,
		Cell:          cell,
		Sessions:      importer.NewSessions(cfg.PreviewTTL),
		AdminPassword: cfg.AdminPassword,
		AdminCIDRS:    cfg.AdminCIDRS,
		TrustProxy:    cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		cell:        cell,
		service:     service,
		watcher:     watcher,
	}
}

// seedCatalog fills an empty store from the configured seed source.
func seedCatalog(cfg *config.Config, service *catalog.Service, log logger.Logger) {
	records := catalog.SeedRecords

	if cfg.SeedFile != "" {
		entries, err := seedfile.NewLoader(cfg.SeedFile).Load()
		if err != nil {
			log.Errorf("failed to load seed file %s: %v", cfg.SeedFile, err)
			os.Exit(1)
		}
		mapped, err := seedfile.NewMapper().MapRecords(entries)
		if err != nil {
			log.Errorf("seed file %s has no usable entries: %v", cfg.SeedFile, err)
			os.Exit(1)
		}
		records = mapped
	}

	seeded := make([]domain.Record, len(records))
	copy(seeded, records)
	service.Restore(context.Background(), seeded)
	log.Info("seeded catalog", logger.Int("records", len(seeded)))
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Somi v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Somi %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the store watcher (applies replaces from sibling instances)
	if err := a.watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start store watcher: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.watcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Somi stopped cleanly")
	return nil
}
