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

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	httpapi "github.com/clinicwave/usermgmt/internal/usermgmt/http"
	"github.com/clinicwave/usermgmt/internal/usermgmt/notify"
	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/postgres"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the user management service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	dispatcher *notify.AsyncDispatcher

	userService         *service.UserService
	verificationService *service.VerificationService
	provisioningService *service.ProvisioningService
	catalogService      *service.CatalogService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with migrated storage and a seeded role catalog.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := slogx.New(slogx.Config{
		Service: "usermgmt-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg, logger: logger}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.catalogService.Seed(ctx, domain.DefaultCatalog()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed role catalog: %w", err)
	}

	httpx.LoadRateLimitsFromEnv()
	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.dispatcher.Start()

	app.logger.Info("usermgmt service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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

// Shutdown drains in-flight requests and queued notifications, then closes
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down usermgmt service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.dispatcher.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("usermgmt service stopped")
	return nil
}

// Handler exposes the routed HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() {
	var sender notify.Sender = &notify.LogSender{Logger: app.logger}
	if app.cfg.NotificationServiceURL != "" {
		sender = notify.NewHTTPSender(app.cfg.NotificationServiceURL, app.cfg.NotificationTimeout)
	}
	app.dispatcher = notify.NewAsyncDispatcher(
		sender,
		app.logger,
		app.cfg.NotificationQueueSize,
		app.cfg.NotificationTimeout,
	)

	app.verificationService = &service.VerificationService{
		Store:   app.db,
		CodeTTL: app.cfg.VerificationCodeTTL,
	}
	app.userService = &service.UserService{
		Store:                app.db,
		Verification:         app.verificationService,
		Notifier:             app.dispatcher,
		VerificationLinkBase: app.cfg.FrontendBaseURL,
	}
	app.provisioningService = &service.ProvisioningService{Store: app.db}
	app.catalogService = &service.CatalogService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.UserService = app.userService
	router.VerificationService = app.verificationService
	router.ProvisioningService = app.provisioningService
	router.CatalogService = app.catalogService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
