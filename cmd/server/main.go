package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/recipelens/backend/config"
	"github.com/recipelens/backend/internal/app"
	httpDelivery "github.com/recipelens/backend/internal/delivery/http"
	"github.com/recipelens/backend/internal/infrastructure/monitoring"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recipelens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := monitoring.NewLogger(monitoring.LogConfig{
		Level:          cfg.Log.Level,
		Format:         cfg.Log.Format,
		Development:    cfg.Server.Environment == "development",
		FilePath:       cfg.Log.File,
		FileMaxSizeMB:  cfg.Log.MaxSizeMB,
		FileMaxBackups: cfg.Log.MaxBackups,
		FileMaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting RecipeLens backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	metrics := monitoring.NewMetrics()

	// A nil usecase keeps the server up with recipe endpoints answering 501
	var recipes httpDelivery.RecipeUsecase
	if cfg.RecipeDB.Configured() {
		recipes = app.NewRecipeService(cfg, metrics, logger)
		logger.Info("recipe database configured",
			zap.String("recipedb", cfg.RecipeDB.BaseURL),
			zap.String("flavordb", cfg.FlavorDB.BaseURL))
	} else {
		logger.Warn("recipe database API key not configured; recipe endpoints disabled")
	}

	handler := httpDelivery.NewHandler(recipes, metrics, logger)
	router := httpDelivery.SetupRouter(cfg, handler, metrics, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
