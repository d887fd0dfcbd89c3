package inventory

import (
	"errors"
	"net/http"

	"github.com/draftforge/draftforge/pkg/vault"
)

// MapHTTPStatus maps inventory and vault errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, vault.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, vault.ErrInvalidPath) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
