// Package common defines shared constants and sentinel errors used across
// the PI Learning client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")

	// Validation errors (empty or too-short fields). Wrapped with detail,
	// matched with errors.Is.
	ErrValidation = errors.New("validation error")

	// Auth errors surfaced to the user as messages.
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")

	// ErrNoIdentity guards namespaced storage: per-user collections cannot
	// be read or written before an identity is resolved.
	ErrNoIdentity = errors.New("no authenticated identity")
)
