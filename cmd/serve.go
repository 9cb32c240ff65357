package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/handlers"
	"spelling_trainer/internal/repository"
	"spelling_trainer/internal/service"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := &config.Cfg
	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	// 1. DB
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// 2. Mailer
	mailer, err := service.NewMailer(ctx, cfg)
	if err != nil {
		return err
	}

	// 3. DI
	userRepo := repository.NewGormUserRepository()
	wordRepo := repository.NewGormWordRepository()
	streakRepo := repository.NewGormStreakRepository()

	authService := service.NewAuthService(db, userRepo, mailer, cfg)
	wordService := service.NewWordService(db, wordRepo)
	streakService := service.NewStreakService(db, streakRepo)

	router := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Word:   handlers.NewWordHandler(wordService),
		Streak: handlers.NewStreakHandler(streakService),
		Health: handlers.NewHealthHandler(db),
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-sigCtx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}

	logger.Info("Server exiting")
	return nil
}
