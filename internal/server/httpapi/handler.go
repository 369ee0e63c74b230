package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/logging"
)

const maxBodyBytes = 1 << 20

type handler struct {
	svc    backend.Service
	logger logging.Logger
}

// statusFor maps a failed Result to an HTTP status. The body always carries
// the Result, so clients read the outcome from JSON rather than the status.
func statusFor(res backend.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Code {
	case backend.CodeWrongCredential, backend.CodeOTPInvalid, backend.CodeOTPExpired:
		return http.StatusUnauthorized
	case backend.CodeInvalidGrant:
		return http.StatusForbidden
	case backend.CodeAccountNotFound:
		return http.StatusNotFound
	case backend.CodeDuplicateAccount, backend.CodeAlreadyInitialized:
		return http.StatusConflict
	case backend.CodeRateLimited:
		return http.StatusTooManyRequests
	case backend.CodeDeliveryFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *handler) writeInternal(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	h.logger.Error(ctx, "request failed", "error", err)
	writeJSON(w, status, backend.Result{Error: "internal error"})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

// serve decodes a Req, calls the service and writes its response.
func serve[Req any, Resp any](h *handler, w http.ResponseWriter, r *http.Request, call func(context.Context, *Req) (*Resp, error), result func(*Resp) backend.Result) {
	req := new(Req)
	if err := decode(r, req); err != nil {
		writeJSON(w, http.StatusBadRequest, backend.Result{Error: err.Error(), Code: backend.CodeInvalidRequest})
		return
	}

	resp, err := call(r.Context(), req)
	if err != nil {
		h.writeInternal(r.Context(), w, err)
		return
	}
	writeJSON(w, statusFor(result(resp)), resp)
}

func resultOf(r *backend.Result) backend.Result { return *r }

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.Error(r.Context(), "ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, backend.Result{Error: "service unavailable"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, indexPage)
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, backend.Result{Error: "not found"})
}

func (h *handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, backend.Result{Error: "method not allowed"})
}

func (h *handler) checkMasterExists(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.CheckMasterExists(r.Context())
	if err != nil {
		h.writeInternal(r.Context(), w, err)
		return
	}
	writeJSON(w, statusFor(resp.Result), resp)
}

func (h *handler) setupMaster(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.SetupMaster, resultOf)
}

func (h *handler) verifyMaster(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.VerifyMaster, resultOf)
}

func (h *handler) changeMaster(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.ChangeMaster, resultOf)
}

func (h *handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.SendOTP, func(resp *backend.SendOTPResponse) backend.Result { return resp.Result })
}

func (h *handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.VerifyOTP, func(resp *backend.VerifyOTPResponse) backend.Result { return resp.Result })
}

func (h *handler) createAccount(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.CreateAccount, resultOf)
}

func (h *handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.ListAccounts, func(resp *backend.ListAccountsResponse) backend.Result { return resp.Result })
}

func (h *handler) resetAccountSecret(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.ResetAccountSecret, func(resp *backend.ResetAccountSecretResponse) backend.Result { return resp.Result })
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>LockSafe</title></head>
<body>
<h1>LockSafe API</h1>
<ul>
<li>GET /api/check-master-password-exists</li>
<li>POST /api/setup-master-password</li>
<li>POST /api/verify-master-password</li>
<li>POST /api/change-master-password</li>
<li>POST /api/send-otp</li>
<li>POST /api/verify-otp</li>
<li>POST /api/create-account</li>
<li>POST /api/accounts</li>
<li>POST /api/reset-user-password</li>
</ul>
</body>
</html>
`
