package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Doer is the slice of *http.Client the pipeline needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseURLSource yields the backend base URL per request, so a runtime
// override takes effect without rebuilding the client.
type BaseURLSource interface {
	BaseURL() string
}

// Caller is the seam domain services depend on. The concrete Client
// implements it; tests substitute an endpoint+method keyed mock.
type Caller interface {
	Call(ctx context.Context, method, endpoint string, body any, headers map[string]string) ([]byte, error)
}

// Client is the HTTP request pipeline. Its only mutable state is the
// bearer token, written by the auth session manager and read by every
// authenticated call; last writer wins.
type Client struct {
	base   BaseURLSource
	http   Doer
	logger *slog.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(base BaseURLSource, opts ...Option) *Client {
	c := &Client{
		base:   base,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthToken installs the bearer token. An empty token clears it.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Call marshals body (when non-nil) and performs the request, returning
// the raw 2xx body. Failures map onto the closed taxonomy in errors.go.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any, headers map[string]string) ([]byte, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, &UnknownError{Err: err}
		}
	}
	return c.request(ctx, method, endpoint, raw, headers)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body []byte, headers map[string]string) ([]byte, error) {
	url := c.base.BaseURL() + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.logger.Error("invalid request url", "url", url, "error", err)
		return nil, ErrInvalidURL
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Caller headers merge last: caller wins on conflict.
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("request", "method", method, "url", url, "authenticated", c.AuthToken() != "")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("transport failure", "method", method, "url", url, "error", err)
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrNoData
	}

	c.logger.Debug("response", "method", method, "url", url, "status", resp.StatusCode, "bytes", len(data))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}
}

// errorMessage pulls a human message out of an error body, falling back
// to the raw text.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return string(data)
}
