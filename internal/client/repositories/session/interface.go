// Package session persists the single optional identity of the currently
// authenticated user. The record is independent of the credential store
// and holds no secrets: losing it only forces a re-login, never data loss.
// It survives process restarts and is cleared on explicit logout.
package session

import (
	"context"

	"github.com/pilearning/pilearn/internal/client/models"
)

// Repository holds at most one Identity per client installation.
type Repository interface {
	// Get returns the stored identity, or nil when no session exists.
	Get(ctx context.Context) (*models.Identity, error)

	// Set replaces the stored identity.
	Set(ctx context.Context, ident models.Identity) error

	// Clear removes the stored identity. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error
}
