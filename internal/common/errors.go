// Package common defines shared constants and sentinel errors used across
// the letter core and its storage backends. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("letter not found")

	// Validation errors.
	ErrUnknownMood = errors.New("unknown mood")

	// Storage-level errors.
	ErrSaveFailed = errors.New("save failed")
	ErrLoadFailed = errors.New("load failed")
)
