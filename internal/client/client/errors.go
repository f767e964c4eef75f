package client

import "errors"

var (
	// ErrUnavailable marks transport failures and non-2xx webhook replies.
	ErrUnavailable = errors.New("webhook service unavailable")

	// ErrNotConfigured marks a webhook URL that is still the documentation
	// placeholder; callers serve demo content instead of dialing out.
	ErrNotConfigured = errors.New("webhook not configured")
)
