package vault

import "errors"

// Store errors surfaced to callers.
var (
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidPath = errors.New("path escapes vault root")
	ErrWriteFailed = errors.New("artifact write failed")
)
