package backend

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("backend: invalid config")
	ErrSignInFailed       = errors.New("backend: sign in failed")
	ErrInvalidCredentials = errors.New("backend: invalid credentials")
	ErrRequestFailed      = errors.New("backend: request failed")
	ErrNotFound           = errors.New("backend: not found")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRequestFailed
}

// permanent reports whether retrying cannot change the answer.
func (e *APIError) permanent() bool {
	if e.StatusCode < 400 || e.StatusCode >= 500 {
		return false
	}
	switch e.StatusCode {
	case 408, 425, 429:
		return false
	}
	return true
}
