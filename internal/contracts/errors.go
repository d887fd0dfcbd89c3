package contracts

import (
	"errors"
	"net/http"
)

// Domain errors for contract generation.
var (
	ErrNotFound      = errors.New("contract not found")
	ErrUnknownType   = errors.New("unknown contract type")
	ErrInvalidConfig = errors.New("invalid generation config")
	ErrWriteFailed   = errors.New("document write failed")
)

// MapHTTPStatus maps contract domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnknownType) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
