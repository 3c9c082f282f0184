package fabrication

import (
	"errors"
	"net/http"
)

var (
	// ErrNotGenerated indicates no data set has been generated yet.
	ErrNotGenerated = errors.New("fabricated data not generated")

	// ErrInvalidRequest indicates malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
)

// MapHTTPStatus translates fabrication errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotGenerated):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
