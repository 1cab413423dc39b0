package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Decode parses a 2xx body into T. Dates decode as RFC3339 per
// encoding/json's time.Time handling.
func Decode[T any](data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		return v, ErrNoData
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &DecodingError{Path: fieldPath(err), Err: err}
	}
	return v, nil
}

func fieldPath(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}

// Typed verbs over a Caller. Domain services are thin compositions of
// these with fixed endpoint templates.

func Get[T any](ctx context.Context, c Caller, endpoint string) (T, error) {
	return roundTrip[T](ctx, c, http.MethodGet, endpoint, nil)
}

func Post[T any](ctx context.Context, c Caller, endpoint string, body any) (T, error) {
	return roundTrip[T](ctx, c, http.MethodPost, endpoint, body)
}

func Put[T any](ctx context.Context, c Caller, endpoint string, body any) (T, error) {
	return roundTrip[T](ctx, c, http.MethodPut, endpoint, body)
}

func Patch[T any](ctx context.Context, c Caller, endpoint string, body any) (T, error) {
	return roundTrip[T](ctx, c, http.MethodPatch, endpoint, body)
}

func Delete[T any](ctx context.Context, c Caller, endpoint string) (T, error) {
	return roundTrip[T](ctx, c, http.MethodDelete, endpoint, nil)
}

func roundTrip[T any](ctx context.Context, c Caller, method, endpoint string, body any) (T, error) {
	data, err := c.Call(ctx, method, endpoint, body, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](data)
}
