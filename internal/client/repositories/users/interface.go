// Package users implements the credential store: the durable mapping from
// username to stored credential record. The collection is global to the
// client installation (it is what makes multiple local accounts possible),
// unlike the per-user collections handled by the store package.
package users

import (
	"context"

	"github.com/pilearning/pilearn/internal/client/models"
)

// Repository persists credential records.
//
// Every mutation rewrites the entire persisted collection: callers must
// not assume atomicity finer than "whole collection write succeeded or
// not".
type Repository interface {
	// FindByUsername returns the record whose username matches
	// case-insensitively, or nil when no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.CredentialRecord, error)

	// Insert appends a record, failing with common.ErrDuplicateUser when a
	// case-insensitive username match already exists.
	Insert(ctx context.Context, rec *models.CredentialRecord) error
}
