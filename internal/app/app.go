package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"habit-tracker-go/internal/auth"
	"habit-tracker-go/internal/config"
	"habit-tracker-go/internal/db"
	habitsdomain "habit-tracker-go/internal/domain/habits"
	reportsdomain "habit-tracker-go/internal/domain/reports"
	templatesdomain "habit-tracker-go/internal/domain/templates"
	trackingdomain "habit-tracker-go/internal/domain/tracking"
	userdomain "habit-tracker-go/internal/domain/user"
	habitsrepo "habit-tracker-go/internal/repository/postgres/habits"
	reportsrepo "habit-tracker-go/internal/repository/postgres/reports"
	templatesrepo "habit-tracker-go/internal/repository/postgres/templates"
	trackingrepo "habit-tracker-go/internal/repository/postgres/tracking"
	userrepo "habit-tracker-go/internal/repository/postgres/user"
	"habit-tracker-go/internal/transport/httpserver"
	"habit-tracker-go/internal/transport/httpserver/handler"
	"habit-tracker-go/pkg/logger"

	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, log); err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing services")
	users := userdomain.NewService(userrepo.NewPostgres(dbConn), cfg.Auth.BcryptCost)
	habits := habitsdomain.NewService(habitsrepo.NewPostgres(dbConn))
	templates := templatesdomain.NewService(templatesrepo.NewPostgres(dbConn))
	tracking := trackingdomain.NewService(trackingrepo.NewPostgres(dbConn))
	reports := reportsdomain.NewService(reportsrepo.NewPostgres(dbConn))

	handlers := handler.New(users, habits, templates, tracking, reports, tokens, log.With("component", "http"))

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, tokens, log.With("component", "auth"))

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router, log.With("component", "http"))

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then drains
// in-flight requests for up to shutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("http: listening", "addr", a.httpServer.Addr, "env", a.cfg.Env)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		runErr = errors.Join(runErr, fmt.Errorf("graceful shutdown: %w", err))
	}
	if err := a.Close(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("close database: %w", err))
	}

	return runErr
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
