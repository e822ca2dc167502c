// Package common defines sentinel errors shared by the journal layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage errors.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Validation errors raised by the entry log model.
	ErrEmptyContent = errors.New("entry has neither text nor image")
	ErrNotFound     = errors.New("not found")

	// Lifecycle errors raised by the journal service.
	ErrNotReady = errors.New("journal is not ready")
	ErrClosed   = errors.New("journal is closed")
)
