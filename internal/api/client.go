// Package api contains thin REST adapters for the daybook backend. Every
// response is wrapped in the uniform envelope {status, message, data};
// success is envelope status 200 and the adapters hand back data unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"daybook/internal/logging"
)

// envelope is the uniform backend response shape.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the HTTP implementation of Service. The cookie jar carries the
// backend session cookie across calls, which is the whole of the
// authentication mechanism on the wire.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Service = (*Client)(nil)

type Option func(*Client)

// WithLogger replaces the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout sets a per-request timeout. Zero (the default) disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		log:     logging.NewSlogLogger(slog.Default()).With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs one request/response cycle: serialize body, send with the
// session cookie, unwrap the envelope, decode data into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Status == 0 {
		// No parseable envelope: a generic transport-level failure.
		c.log.Warn(ctx, "response without envelope", "method", method, "path", path,
			"request_id", requestID, "http_status", resp.StatusCode)
		return fmt.Errorf("%w: unexpected response (http %d)", ErrUnavailable, resp.StatusCode)
	}

	c.log.Debug(ctx, "request finished", "method", method, "path", path,
		"request_id", requestID, "status", env.Status)

	if env.Status != http.StatusOK {
		return &Error{Status: env.Status, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}
	return nil
}
