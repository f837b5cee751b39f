package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-tracker/internal/config"
	"job-tracker/internal/database"
	"job-tracker/internal/handler"
	"job-tracker/internal/middleware"
	"job-tracker/internal/repository"
	"job-tracker/internal/router"
	"job-tracker/internal/service"
	"job-tracker/internal/session"
	"job-tracker/internal/token"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	applicationRepo := repository.NewApplicationRepository(db.Pool)
	slog.Info("database ready")

	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTTTL)
	sessionCookie := session.NewCookie(cfg.CookieName, tokenService.TTL(), cfg.IsProduction())
	authService := service.NewAuthService(userRepo)
	applicationService := service.NewApplicationService(applicationRepo)

	authGate := middleware.NewAuth(tokenService, userRepo, sessionCookie)
	authHandler := handler.NewAuthHandler(authService, tokenService, sessionCookie)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	appRouter := router.New(cfg, db, authGate, authHandler, applicationHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.db.Close()
	slog.Info("server stopped")
	return nil
}
