// Package server wires the LockSafe server: storage, the vault engine and
// the gRPC and HTTP transports, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/locksafe/internal/auth"
	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/otp"
	"github.com/dmitrijs2005/locksafe/internal/server/config"
	"github.com/dmitrijs2005/locksafe/internal/server/httpapi"
	"github.com/dmitrijs2005/locksafe/internal/storage"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/locksafe/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *storage.DB
	engine *backend.Engine
}

// NewApp opens and migrates the database and builds the engine.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Info(ctx, "database ready", "kind", string(db.Kind))

	return &App{
		config: c,
		logger: logger,
		db:     db,
		engine: newEngine(c, db.Store, logger),
	}, nil
}

func newEngine(c *config.Config, store vault.Store, logger logging.Logger) *backend.Engine {
	v := vault.New(store, vault.WithPolicy(c.Policy), vault.WithLogger(logger))

	authority := otp.NewAuthority(
		otp.WithValidity(c.OTPValidity),
		otp.WithDigits(c.OTPDigits),
		otp.WithIssueLimit(c.OTPRateLimit, c.OTPRateBurst),
	)

	var sender otp.Sender
	if c.SMTP.Enabled() {
		sender = otp.NewSMTPSender(c.SMTP)
	} else {
		logger.Warn(context.Background(), "SMTP is not configured, OTP codes will be logged")
		sender = otp.NewLogSender(logger)
	}

	var grants *auth.Grants
	if c.GrantSecret != "" {
		grants = auth.NewGrants([]byte(c.GrantSecret), c.GrantTTL)
	} else {
		logger.Warn(context.Background(), "no grant secret configured, using a per-process secret")
		grants = auth.NewEphemeralGrants(c.GrantTTL)
	}

	return backend.NewEngine(v, authority,
		backend.WithSender(sender),
		backend.WithGrants(grants, true),
		backend.WithLogger(logger),
	)
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves until a signal arrives or a transport fails, then closes the
// database.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "close database", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...")
	return app.serve(ctx)
}

func (app *App) serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.engine).Run(ctx)
	})

	if app.config.EndpointAddrHTTP != "" {
		g.Go(func() error {
			return httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.engine).Run(ctx)
		})
	}

	return g.Wait()
}

// Migrate applies pending migrations to the configured database and exits.
func Migrate(ctx context.Context, c *config.Config, logger logging.Logger) error {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return err
	}
	logger.Info(ctx, "migrations applied", "kind", string(db.Kind))
	return db.Close()
}
