// Package common defines shared constants and sentinel errors used across
// PlantKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Backend interaction errors.
	ErrUnavailable = errors.New("backend unavailable")
	ErrNotFound    = errors.New("not found")

	// Validation / input errors.
	ErrValidation = errors.New("validation error")

	// ErrBusy is returned when a mutating operation is already in flight and
	// a duplicate submission is refused.
	ErrBusy = errors.New("operation already in progress")
)
