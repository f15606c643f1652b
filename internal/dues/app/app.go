package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ovalview/hoadues/internal/dues/blob"
	httpapi "github.com/ovalview/hoadues/internal/dues/http"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/internal/dues/store/drivers/sqlite"
	"github.com/ovalview/hoadues/pkg/cryptox"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/ovalview/hoadues/pkg/jwtx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dues service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	blobs   *blob.Store
	keypair *jwtx.Keypair

	// Services
	userService      *service.UserService
	sessionService   *service.SessionService
	ledgerService    *service.LedgerService
	uploadService    *service.UploadService
	bootstrapService *service.BootstrapService
	sweeperService   *service.SweeperService
	guard            *service.Guard

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hoadues",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	blobs, err := blob.NewStore(app.cfg.ReceiptDir)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize receipt store: %w", err)
	}
	app.blobs = blobs

	// Signing keys are ephemeral: tokens are short-lived and a restart
	// simply forces re-login.
	keypair, err := jwtx.NewEphemeralKeypair(idx.New().String())
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}
	app.keypair = keypair

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Provision the admin account before accepting traffic
	if err := app.bootstrapService.EnsureAdmin(context.Background()); err != nil {
		return fmt.Errorf("failed to provision admin account: %w", err)
	}

	// Start the orphaned receipt sweeper
	app.sweeperService.Start()

	app.logger.Info("dues service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down dues service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the sweeper
	app.sweeperService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("dues service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.sessionService = &service.SessionService{
		Signer:    app.keypair,
		Issuer:    app.cfg.Issuer,
		AccessTTL: jwtx.DefaultAccessTokenTTL,
	}
	app.ledgerService = &service.LedgerService{Store: app.db}
	app.uploadService = &service.UploadService{
		Ledger: app.ledgerService,
		Blobs:  app.blobs,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:         app.db,
		AdminPassword: app.cfg.AdminPassword,
		Logger:        app.logger,
	}
	app.guard = &service.Guard{Store: app.db}

	app.sweeperService = service.NewSweeperService(
		app.db,
		app.blobs,
		app.logger,
		app.cfg.SweepInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keypair,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.blobs,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.LedgerService = app.ledgerService
	router.UploadService = app.uploadService
	router.Guard = app.guard
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
