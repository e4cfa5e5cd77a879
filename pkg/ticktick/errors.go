package ticktick

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the API status classes callers branch on.
var (
	ErrUnauthorized = errors.New("ticktick: unauthorized")
	ErrNotFound     = errors.New("ticktick: not found")
	ErrRateLimited  = errors.New("ticktick: rate limited")
	ErrServer       = errors.New("ticktick: server error")
)

// APIError is a non-2xx response from the TickTick API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ticktick API error %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps the status code onto the matching sentinel so callers can
// use errors.Is without inspecting codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServer
	}
	return nil
}
