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

	config2 "github.com/Kunalsharma76/github-copilot-exercise/pkg/config"
	"github.com/Kunalsharma76/github-copilot-exercise/web"

	_ "github.com/Kunalsharma76/github-copilot-exercise/docs"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/handler"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/repository"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/router"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Mergington High School Activities API
// @version 1.0
// @description Sign students up for extracurricular activities
func main() {
	// Configure logger
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.LogLevel)

	// Load the activity directory
	seed, err := repository.LoadSeed(cfg.SeedFile)
	if err != nil {
		slog.Error("failed to load activity seed", "error", err)
		os.Exit(1)
	}

	activityRepo := repository.NewActivityRepository(seed)
	activityService := service.NewActivityService(activityRepo)

	validate := validator.New()

	activityHandler := handler.NewActivityHandler(activityService, validate)
	var static fs.FS = web.Static()
	if cfg.StaticDir != "" {
		static = os.DirFS(cfg.StaticDir)
	}

	rootHandler := handler.NewRootHandler(static)
	healthHandler := handler.NewHealthHandler(activityRepo)

	slog.Info("successfully configured services and handlers")

	r := router.SetupRouter(
		activityHandler,
		rootHandler,
		healthHandler,
		static,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
