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

	"github.com/classifieds-board/backend/internal/config"
	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/handler"
	"github.com/classifieds-board/backend/internal/logging"
	"github.com/classifieds-board/backend/internal/service"
)

// @title Classifieds Board API
// @version 1.0
// @description Users, authentication and ads for the classifieds board.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(os.Stdout, cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := db.NewPostgres(pool)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	hasher, err := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	tokens, err := service.NewTokenManager(service.TokenConfig{
		AccessSecret:  cfg.Auth.AccessSecret,
		RefreshSecret: cfg.Auth.RefreshSecret,
		AccessTTL:     cfg.Auth.AccessTTL,
		RefreshTTL:    cfg.Auth.RefreshTTL,
	})
	if err != nil {
		return err
	}
	authSvc, err := service.NewAuthService(repo, hasher, tokens, log)
	if err != nil {
		return err
	}

	router := handler.NewRouter(log, handler.Services{
		Auth:  authSvc,
		Users: service.NewUserService(repo, hasher, log),
		Ads:   service.NewAdService(repo, repo, log),
	}, handler.RouterConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimit:      cfg.HTTP.RateLimit,
		RateWindow:     cfg.HTTP.RateWindow,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
