package requirements

import (
	"errors"
	"net/http"
)

// Domain errors for requirement operations.
var (
	ErrNotFound       = errors.New("requirement not found")
	ErrDuplicate      = errors.New("requirement already exists")
	ErrInvalidRequest = errors.New("invalid request")
)

// MapHTTPStatus maps requirement domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
