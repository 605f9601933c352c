package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"

	"pdfsettings/internal/cache"
	"pdfsettings/internal/config"
	"pdfsettings/internal/database"
	"pdfsettings/internal/database/migration"
	"pdfsettings/internal/http/server"
	"pdfsettings/internal/logging"
	"pdfsettings/internal/otel"
	"pdfsettings/internal/repository/postgres"
	"pdfsettings/internal/service"
	"pdfsettings/internal/storage"
)

// @title PDF Settings API
// @version 1.0
// @description Per-app component settings read by the PDF generator.
// @BasePath /
func main() {
	if err := run(); err != nil {
		logging.Error("startup_failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lc := cfg.Logger
	logging.Init(lc.File, lc.MaxSizeMB, lc.MaxBackups, lc.MaxAgeDays, lc.Compress, lc.Level)

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logging.Warn("tracing_shutdown_failed", "error", err)
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return err
	}

	settingsCache := openCache(ctx, cfg.Redis)

	repo := postgres.NewSettingsPostgres(db)
	svc := service.NewSettingsService(objStore, repo, settingsCache)

	app, err := server.New(server.Deps{Config: cfg.Server, DB: db, Service: svc})
	if err != nil {
		return err
	}

	idleConnsClosed := make(chan struct{})
	go startServer(app, ":"+cfg.Server.Port, cfg.Server.ShutdownTimeout, idleConnsClosed)
	<-idleConnsClosed
	return nil
}

// openCache connects to Redis when an address is configured. Any failure
// falls back to the no-op cache so the service still runs off Postgres.
func openCache(ctx context.Context, rc config.RedisConfig) cache.SettingsCache {
	if rc.Addr == "" {
		logging.Info("cache_disabled")
		return cache.NewNoop()
	}
	rdb, err := cache.Open(ctx, rc)
	if err != nil {
		logging.Warn("cache_unavailable", "addr", rc.Addr, "error", err)
		return cache.NewNoop()
	}
	logging.Info("cache_enabled", "addr", rc.Addr, "ttl", rc.TTL.String())
	return cache.NewRedis(rdb, rc.TTL)
}

// startServer listens on addr and shuts the app down on SIGINT or SIGTERM,
// closing idleConnsClosed once in-flight requests are drained.
func startServer(app *fiber.App, addr string, timeout time.Duration, idleConnsClosed chan struct{}) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(idleConnsClosed)
		<-sig
		signal.Stop(sig)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logging.Error("server_shutdown_failed", "error", err)
		}
		logging.Info("server_stopped")
	}()

	logging.Info("server_starting", "addr", addr)
	if err := app.Listen(addr); err != nil {
		logging.Error("server_listen_failed", "addr", addr, "error", err)
	}
}
