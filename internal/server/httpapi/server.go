// Package httpapi serves the backend.Service as a JSON API under /api, with
// an index page at / that clients use as a reachability probe.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/gorilla/mux"
)

// Routes.
const (
	RouteIndex              = "/"
	RouteCheckMasterExists  = "/api/check-master-password-exists"
	RouteSetupMaster        = "/api/setup-master-password"
	RouteVerifyMaster       = "/api/verify-master-password"
	RouteChangeMaster       = "/api/change-master-password"
	RouteSendOTP            = "/api/send-otp"
	RouteVerifyOTP          = "/api/verify-otp"
	RouteCreateAccount      = "/api/create-account"
	RouteListAccounts       = "/api/accounts"
	RouteResetAccountSecret = "/api/reset-user-password"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	address string
	svc     backend.Service
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, svc backend.Service) *HTTPServer {
	return &HTTPServer{
		address: a,
		svc:     svc,
		logger:  l.With("module", "http_server"),
	}
}

// Handler builds the router with request id and logging middleware.
func (s *HTTPServer) Handler() http.Handler {
	h := &handler{svc: s.svc, logger: s.logger}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, s.loggingMiddleware)

	r.HandleFunc(RouteIndex, h.index).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/check-master-password-exists", h.checkMasterExists).Methods(http.MethodGet)
	api.HandleFunc("/setup-master-password", h.setupMaster).Methods(http.MethodPost)
	api.HandleFunc("/verify-master-password", h.verifyMaster).Methods(http.MethodPost)
	api.HandleFunc("/change-master-password", h.changeMaster).Methods(http.MethodPost)
	api.HandleFunc("/send-otp", h.sendOTP).Methods(http.MethodPost)
	api.HandleFunc("/verify-otp", h.verifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/create-account", h.createAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts", h.listAccounts).Methods(http.MethodPost)
	api.HandleFunc("/reset-user-password", h.resetAccountSecret).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(h.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.logger.Error(sctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
