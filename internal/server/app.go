// Package server initializes and runs the moodframe backend: it opens the
// database, applies migrations, wires the services, and serves the HTTP API
// until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/moodframe/moodframe/internal/logging"
	"github.com/moodframe/moodframe/internal/server/auth"
	"github.com/moodframe/moodframe/internal/server/config"
	"github.com/moodframe/moodframe/internal/server/httpapi"
	"github.com/moodframe/moodframe/internal/server/mail"
	"github.com/moodframe/moodframe/internal/server/repositories/repomanager"
	"github.com/moodframe/moodframe/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewArgon2Hasher()
	mailer := mail.NewHTTPMailer(cfg.MailAPIEndpoint, cfg.MailAPIKey, cfg.MailSenderName, cfg.MailSenderEmail)

	authService := services.NewAuthService(db, rm, hasher, mailer, logger, cfg)
	userService := services.NewUserService(db, rm, logger)

	server := httpapi.NewServer(
		authService,
		userService,
		logger,
		[]byte(cfg.SecretKey),
		cfg.AccessTokenValidityDuration,
		cfg.RefreshTokenValidityDuration,
		cfg.SecureCookies,
	)

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	fiberApp := fiber.New()
	app.server.Register(fiberApp)

	go func() {
		if err := fiberApp.Listen(app.config.EndpointAddrHTTP); err != nil {
			app.logger.Error(ctx, "http server stopped", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}
}
