package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/config"
	"github.com/rogerio-castellano/medicine-inventory/internal/datasource"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/medicine-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/router"
	"github.com/rogerio-castellano/medicine-inventory/internal/logger"
	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

const shutdownTimeout = 10 * time.Second

// @title Medicine Inventory & Expiry Tracking API
// @version 1.0.0
// @description Read-only queries over medicines, stock batches and the transaction log.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	lg := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Format))
	defer func() { _ = lg.Sync() }()
	zap.ReplaceGlobals(lg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshot, err := datasource.Load(ctx, cfg.Data, logger.Named(lg, "datasource"))
	if err != nil {
		lg.Fatal("could not load inventory snapshot", zap.Error(err))
	}

	server := handlers.NewServer(repo.NewInMemoryRepositories(snapshot), logger.Named(lg, "handlers"))

	opts := router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		JWTSecret:      cfg.Auth.JWTSecret,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
	}
	if cfg.RateLimit.RPS > 0 {
		opts.Visitors = rl.NewVisitors(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go opts.Visitors.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      router.NewRouter(server, logger.Named(lg, "http"), opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server running",
			zap.String("addr", srv.Addr),
			zap.String("data_source", cfg.Data.Source),
			zap.Bool("auth", cfg.Auth.JWTSecret != ""),
			zap.Bool("rate_limit", opts.Visitors != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			lg.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}
