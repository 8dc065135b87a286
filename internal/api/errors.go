package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate ids are a client mistake, not a conflict the client can
	// resolve by retrying, so they map to 400 rather than 409.
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Oversized bodies that slip past the Content-Length check are caught
	// mid-read by http.MaxBytesReader.
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrTaskExists):
		return "Task already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Already exists"

	case errors.As(err, &maxBytesErr):
		return "Request body too large"

	default:
		return "An unexpected error occurred"
	}
}
