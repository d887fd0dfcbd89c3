package blob

import "errors"

var (
	// ErrDisabled indicates blob export is not configured.
	ErrDisabled = errors.New("blob export disabled")
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey indicates an empty blob key was provided.
	ErrEmptyKey = errors.New("blob key must not be empty")
	// ErrInvalidKey indicates the blob key contains a path traversal segment.
	ErrInvalidKey = errors.New("blob key contains invalid path segment")
)
