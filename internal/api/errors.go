package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// The closed error taxonomy of the request pipeline. Everything a call
// can fail with is one of these; controllers translate them into
// user-facing strings, nothing below the controller layer does.
var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrNoData       = errors.New("no data received from server")
	ErrUnauthorized = errors.New("unauthorized")
)

// DecodingError reports a schema mismatch between the backend response
// and the expected shape. Path names the offending field when the
// decoder can tell.
type DecodingError struct {
	Path string
	Err  error
}

func (e *DecodingError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decoding error at %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// ServerError is any non-2xx, non-401 response. Message is the
// best-effort decoded error body, or the raw text.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// ConnectionError is a transport-level failure: DNS, refused connection,
// timeout. Hint renders a connectivity-specific suggestion.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Hint() string {
	var dnsErr *net.DNSError
	switch {
	case errors.As(e.Err, &dnsErr):
		return "Cannot connect to server. Check that the backend is running, the API URL is correct, and the network is up."
	case isTimeout(e.Err):
		return "Connection timed out. The server may be slow or unreachable."
	case errors.Is(e.Err, syscall.ECONNREFUSED), errors.Is(e.Err, syscall.ECONNRESET):
		return "Cannot connect to server. The server may be down or unreachable."
	}
	return "Connection error: " + e.Err.Error()
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// UnknownError wraps failures outside the taxonomy, such as a request
// body that cannot be marshalled.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnknownError) Unwrap() error { return e.Err }
