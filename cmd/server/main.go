package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/config"
	"github.com/yukikurage/empleo-joven-api/internal/database"
	"github.com/yukikurage/empleo-joven-api/internal/logging"
	"github.com/yukikurage/empleo-joven-api/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	router := server.NewRouter(db, server.Options{
		Logger:         logger,
		Tokens:         tokens,
		BcryptCost:     cfg.BcryptCost,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
