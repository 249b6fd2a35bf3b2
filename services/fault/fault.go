// Package fault defines the error conditions shared by every service and the
// handler-side mapping to HTTP statuses.
package fault

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized signals a missing, malformed or rejected credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a valid credential with insufficient role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound signals a referenced id that is absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals malformed input.
	ErrValidation = errors.New("validation failure")
	// ErrStoreUnavailable signals a generic downstream store failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Status maps an error to the HTTP status code for its condition. Unknown
// errors map to 500 like any other store-side failure.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
