package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/PatrickPenner/shopping-list-api/internal/config"
	"github.com/PatrickPenner/shopping-list-api/internal/platform/postgres"
	"github.com/PatrickPenner/shopping-list-api/internal/service"
	"github.com/PatrickPenner/shopping-list-api/internal/service/auth"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	listStore store.ListStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	listService      *service.ListService
}

// newApplication creates an application instance with all dependencies
// initialized from the given core resources.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.AccessTokenExpireMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, bcrypt.DefaultCost, logger)
	app.listStore = postgres.NewListStore(db, logger)

	app.listService, err = service.NewListService(db, app.listStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create list service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
