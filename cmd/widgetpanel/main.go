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

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sqliteadapter "github.com/ericfisherdev/widgetpanel/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web"
	"github.com/ericfisherdev/widgetpanel/internal/config"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
	"github.com/ericfisherdev/widgetpanel/internal/logging"
	"github.com/ericfisherdev/widgetpanel/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid values).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.SlogLevel(), cfg.LogFormat)
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"persistence", cfg.Persistence,
		"tracing", cfg.TracingEnabled(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Tracing is opt-in.
	if cfg.TracingEnabled() {
		shutdownTracing, err := telemetry.Setup(ctx, "widgetpanel", cfg.OTelEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.Error("error flushing traces", "error", err)
			}
		}()
		logger.Info("tracing enabled", "endpoint", cfg.OTelEndpoint)
	}

	// 4. Open database and run migrations. prefStore stays a nil interface
	// when persistence is off.
	var prefStore driven.PreferenceStore
	if cfg.Persistence {
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		logger.Info("database opened", "path", cfg.DBPath)

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		version, _, err := sqliteadapter.SchemaVersion(db.Writer)
		if err != nil {
			return err
		}
		logger.Info("migrations complete", "schema_version", version)

		prefStore = sqliteadapter.NewPreferenceRepo(db)
	} else {
		logger.Info("persistence disabled, colors are not saved")
	}

	// 5. Register API and GUI routes.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(prefStore, logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(prefStore, cfg.SecureCookies, logger))

	handler := httphandler.ApplyMiddleware(mux, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("widgetpanel started", "listen_addr", cfg.ListenAddr)

	// 6. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	logger.Info("shutting down")

	// 7. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
