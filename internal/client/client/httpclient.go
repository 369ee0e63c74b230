package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/requestid"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient talks to the JSON API. Failed Results come back with a 4xx or
// 5xx status and a JSON body; they are returned as data, not errors.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ backend.Service = (*HTTPClient)(nil)

// NewHTTPClient returns a client for baseURL. A nil hc gets a client with a
// 10s timeout.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *HTTPClient) Endpoint() string {
	return c.baseURL
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// mapError classifies an http.Client error. Anything that prevented a
// response from arriving counts as the server being unavailable.
func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("http error: %w", err)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	id := requestid.FromContext(ctx)
	if id == "" {
		id = requestid.New()
	}
	req.Header.Set(common.RequestIDHeaderName, id)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapError(err)
	}

	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if out == nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("http error: status %d", resp.StatusCode)
		}
		return nil
	}

	var probe backend.Result
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("http error: status %d: decode response: %w", resp.StatusCode, err)
	}
	// a failure without a code is the server's opaque internal error
	if resp.StatusCode >= http.StatusInternalServerError && probe.Code == "" {
		return fmt.Errorf("http error: status %d: %s: %w", resp.StatusCode, probe.Error, common.ErrorInternal)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

func (c *HTTPClient) CheckMasterExists(ctx context.Context) (*backend.ExistsResponse, error) {
	out := &backend.ExistsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/check-master-password-exists", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SetupMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	out := &backend.Result{}
	if err := c.do(ctx, http.MethodPost, "/api/setup-master-password", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) VerifyMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	out := &backend.Result{}
	if err := c.do(ctx, http.MethodPost, "/api/verify-master-password", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ChangeMaster(ctx context.Context, req *backend.ChangeMasterRequest) (*backend.Result, error) {
	out := &backend.Result{}
	if err := c.do(ctx, http.MethodPost, "/api/change-master-password", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, req *backend.SendOTPRequest) (*backend.SendOTPResponse, error) {
	out := &backend.SendOTPResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/send-otp", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, req *backend.VerifyOTPRequest) (*backend.VerifyOTPResponse, error) {
	out := &backend.VerifyOTPResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/verify-otp", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateAccount(ctx context.Context, req *backend.CreateAccountRequest) (*backend.Result, error) {
	out := &backend.Result{}
	if err := c.do(ctx, http.MethodPost, "/api/create-account", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListAccounts(ctx context.Context, req *backend.ListAccountsRequest) (*backend.ListAccountsResponse, error) {
	out := &backend.ListAccountsResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/accounts", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ResetAccountSecret(ctx context.Context, req *backend.ResetAccountSecretRequest) (*backend.ResetAccountSecretResponse, error) {
	out := &backend.ResetAccountSecretResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/reset-user-password", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
