// Package controller holds the per-screen presentation state: a loading
// flag, an error message and result collections, mutated only while the
// controller's lock is held (the UI-thread contract of the app). This is
// the sole layer that turns pipeline errors into user-facing strings.
package controller

import (
	"errors"
	"fmt"

	"github.com/tahaburak/would-watch/internal/api"
)

func userMessage(err error) string {
	var (
		connErr *api.ConnectionError
		srvErr  *api.ServerError
		decErr  *api.DecodingError
	)

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		// Deliberately generic: never reveal whether the email exists.
		return "Invalid email or password"
	case errors.As(err, &connErr):
		return connErr.Hint()
	case errors.As(err, &srvErr):
		return fmt.Sprintf("Server error (%d): %s", srvErr.StatusCode, srvErr.Message)
	case errors.As(err, &decErr):
		return "Failed to decode server response"
	case errors.Is(err, api.ErrNoData):
		return "No data received from server"
	case errors.Is(err, api.ErrInvalidURL):
		return "Invalid URL"
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
