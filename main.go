package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ecolog/carbon-tracker/internal/cache"
	"github.com/ecolog/carbon-tracker/internal/config"
	"github.com/ecolog/carbon-tracker/internal/handler"
	"github.com/ecolog/carbon-tracker/internal/repository/mysql"
	"github.com/ecolog/carbon-tracker/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env file", "error", err)
	}

	cfg := config.Load()
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		slog.Error("BCRYPT_COST must be between 4 and 14", "value", cfg.BcryptCost)
		os.Exit(1)
	}

	db, err := mysql.New(mysql.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		PoolSize: cfg.DBPoolSize,
	})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected", "host", cfg.DBHost, "database", cfg.DBName, "pool", cfg.DBPoolSize)

	store := cache.New(cfg.CacheTTL)

	catalogService := service.NewCatalogService(db.Users(), db.Activities(), db.Locations(), store, cfg.BcryptCost)
	logService := service.NewLogService(db.Logs(), store)
	reportService := service.NewReportService(db.Reports(), store)
	importer := service.NewImporter(logService)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		handler.NewCatalogHandler(catalogService),
		handler.NewLogHandler(logService),
		handler.NewReportHandler(reportService),
		handler.NewDashboardHandler(logService),
		handler.NewTransferHandler(logService, importer),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
