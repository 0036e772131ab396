// Package backend is the HTTP façade over the remote TadbeerX API. All
// durable state lives behind that API; this client attaches the bearer token
// to every request, maps non-2xx responses to typed errors, and exposes one
// method per remote resource.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tadbeerx/admin-console/internal/config"
	"github.com/tadbeerx/admin-console/internal/session"
)

// ErrUnavailable marks transport failures where no HTTP response was
// received, as opposed to a response with an error status.
var ErrUnavailable = errors.New("network error or server unavailable")

// authFailedMessage is surfaced on 401 responses; the token store is cleared
// before the error is returned.
const authFailedMessage = "authentication failed, please log in again"

// RequestError is a non-2xx response from the remote API. Message comes from
// the JSON error body when present, else "HTTP <status>".
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// IsAuthError reports whether err is a 401 from the remote API.
func IsAuthError(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusUnauthorized
}

// Client is the remote API façade. The token store is read fresh on every
// request so a login or logout takes effect immediately.
type Client struct {
	cfg    config.BackendConfig
	store  session.Store
	client *http.Client

	closed int32
}

// NewClient creates a backend client over the given token store.
func NewClient(cfg config.BackendConfig, store session.Store, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if store == nil {
		store = session.NewMemStore()
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		cfg:    cfg,
		store:  store,
		client: httpClient,
	}
	logger.Info("backend: NewClient created", slog.String("base_url", cfg.BaseURL), slog.Duration("timeout", cfg.Timeout))
	return c, nil
}

func NewDefaultClient(cfg config.BackendConfig, store session.Store) (*Client, error) {
	defaultClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return NewClient(cfg, store, defaultClient)
}

// Store exposes the session store the client writes on login/logout/401.
func (c *Client) Store() session.Store { return c.store }

// Close releases idle connections on the underlying transport. Close is
// idempotent and safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.client != nil && c.client.Transport != nil {
		if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	return nil
}

// package-level logger for pkg/backend; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/backend. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// do issues one JSON request against the remote API and decodes the response
// into out (ignored when nil). query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	// read the store fresh so a token refresh takes effect on the next call
	if tok := c.store.Get(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("backend: request failed", slog.String("method", req.Method), slog.String("url", req.URL.String()), slog.Any("err", err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	// non-JSON bodies are handed back as raw text when the caller wants them
	if s, ok := out.(*string); ok {
		*s = string(raw)
	}
	return nil
}

// errorFromResponse maps a non-2xx status to a *RequestError. A 401 is the
// sole point where client state reacts to authentication loss: the token
// store is cleared before the error is returned.
func (c *Client) errorFromResponse(status int, raw []byte) error {
	if status == http.StatusUnauthorized {
		c.store.Clear()
		logger.Warn("backend: authentication failure, token cleared")
		return &RequestError{Status: status, Message: authFailedMessage}
	}

	msg := fmt.Sprintf("HTTP %d", status)
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			msg = body.Error
		} else if body.Message != "" {
			msg = body.Message
		}
	}
	return &RequestError{Status: status, Message: msg}
}
