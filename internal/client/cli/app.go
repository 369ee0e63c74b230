package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/client/client"
	"github.com/dmitrijs2005/locksafe/internal/client/config"
	"github.com/dmitrijs2005/locksafe/internal/client/services"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/otp"
	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/dmitrijs2005/locksafe/internal/storage"
	"github.com/dmitrijs2005/locksafe/internal/vault"
)

const probeTimeout = 3 * time.Second

type App struct {
	config    *config.Config
	logger    logging.Logger
	ctrl      *services.TrustController
	workflow  *services.Workflow
	local     *storage.DB
	evaluator *policy.Evaluator
	reader    *bufio.Reader
	out       io.Writer
}

// syncWriter serializes writes from the watcher notifier and the REPL.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// NewApp opens the local fallback vault and builds the remote client named
// by the config. The remote is never contacted here.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := storage.Open(ctx, c.LocalDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing local vault: %w", err)
	}

	v := vault.New(db.Store, vault.WithPolicy(c.Policy), vault.WithLogger(logger))
	local := backend.NewEngine(v,
		otp.NewAuthority(otp.WithValidity(c.OTPValidity), otp.WithSingleSlot()),
		backend.WithLogger(logger),
	)

	addr := c.ServerEndpointAddr
	if c.Transport == config.TransportHTTP {
		addr = c.HTTPBaseURL
	}
	remote, err := newRemote(addr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:    c,
		logger:    logger,
		local:     db,
		evaluator: v.Policy(),
		reader:    bufio.NewReader(in),
		out:       &syncWriter{w: out},
	}
	a.ctrl = services.NewTrustController(remote, local,
		services.WithNotifier(a.notifyMode),
		services.WithTrustLogger(logger),
	)
	a.workflow = services.NewWorkflow(a.ctrl)
	return a, nil
}

// newRemote picks the transport from the address: http(s) URLs use the JSON
// API, anything else is a gRPC target.
func newRemote(addr string) (services.Remote, error) {
	lower := strings.ToLower(addr)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return client.NewHTTPClient(addr, nil), nil
	}
	c, err := client.NewGRPCClient(addr)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (a *App) notifyMode(_ context.Context, mode services.Mode, cause error) {
	switch mode {
	case services.ModeLocalFallback:
		if cause != nil {
			a.printf("! Server unreachable (%v). Switched to local mode.\n", cause)
		} else {
			a.printf("! Server unreachable. Switched to local mode.\n")
		}
	case services.ModeConnected:
		a.printf("! Connected to %s.\n", a.ctrl.Endpoint())
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) status() string {
	s := string(a.ctrl.Mode())
	if a.workflow.State() == services.StateAwaitingOTP {
		s += ", awaiting otp"
	}
	return s
}

// Run probes the server, starts the connectivity watcher and blocks in the
// REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.printf("LockSafe. Type 'help' for commands.\n")
	mode := a.ctrl.TestConnection(ctx)
	a.printf("Mode: %s\n", mode)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.ctrl.StartWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.status, a.reader, a.out)

	cancel()
	wg.Wait()
	return nil
}

// Close releases the remote connection and the local database.
func (a *App) Close() error {
	err := a.ctrl.Close()
	if cerr := a.local.Close(); err == nil {
		err = cerr
	}
	return err
}

// CheckServer pings the configured remote once and reports whether it is
// reachable. It does not touch the local vault.
func CheckServer(ctx context.Context, c *config.Config, w io.Writer) error {
	addr := c.ServerEndpointAddr
	if c.Transport == config.TransportHTTP {
		addr = c.HTTPBaseURL
	}
	remote, err := newRemote(addr)
	if err != nil {
		return err
	}
	defer remote.Close()

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := remote.Ping(ctx); err != nil {
		fmt.Fprintf(w, "%s: unreachable (%v)\n", remote.Endpoint(), err)
		return err
	}
	fmt.Fprintf(w, "%s: ok\n", remote.Endpoint())
	return nil
}
