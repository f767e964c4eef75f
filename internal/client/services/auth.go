// Package services contains application services for the PI Learning
// client. This file defines the authentication facade: register, login,
// logout, and session resume over the credential store, the digest
// registry, and the session store.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/session"
	"github.com/pilearning/pilearn/internal/client/repositories/users"
	"github.com/pilearning/pilearn/internal/common"
	"github.com/pilearning/pilearn/internal/digest"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate, create a credential record, open a session.
//   - Login: verify a password against the stored digest, open a session.
//   - Logout: close the session; the credential store is untouched.
//   - Resume: return the persisted session identity, nil when none.
//
// Failed logins never mutate any state. Only Identity values cross this
// boundary; credential records stay inside.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.Identity, error)
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (*models.Identity, error)
}

type authService struct {
	users    users.Repository
	sessions session.Repository
	digests  *digest.Registry
}

// NewAuthService constructs an AuthService over the given stores and
// digest registry.
func NewAuthService(users users.Repository, sessions session.Repository, digests *digest.Registry) AuthService {
	return &authService{users: users, sessions: sessions, digests: digests}
}

// normalizeUsername trims surrounding whitespace and lowercases, so
// lookups and uniqueness are case-insensitive.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: please fill in all fields", common.ErrValidation)
	}
	// lengths are counted in runes, not bytes
	if utf8.RuneCountInString(username) < minUsernameLen {
		return fmt.Errorf("%w: username must be at least %d characters", common.ErrValidation, minUsernameLen)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	return nil
}

func newUserID() (string, error) {
	suffix, err := common.MakeRandHexString(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), suffix), nil
}

// Register validates the credentials, digests the password with the
// deployment's default driver, inserts the record, and opens a session
// for the new identity. The plaintext password is never stored.
func (a *authService) Register(ctx context.Context, username, password string) (*models.Identity, error) {
	username = normalizeUsername(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	digester := a.digests.Default()
	hashed, err := digester.Digest(password)
	if err != nil {
		return nil, fmt.Errorf("digest error: %w", err)
	}

	id, err := newUserID()
	if err != nil {
		return nil, fmt.Errorf("id generation error: %w", err)
	}

	rec := &models.CredentialRecord{
		ID:             id,
		Username:       username,
		PasswordDigest: hashed,
		DigestDriver:   digester.Driver(),
		CreatedAt:      time.Now().UnixMilli(),
	}

	if err := a.users.Insert(ctx, rec); err != nil {
		return nil, err
	}

	ident := rec.Identity()
	if err := a.sessions.Set(ctx, ident); err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}
	return &ident, nil
}

// Login verifies the password under the driver the stored record is
// tagged with and opens a session on success. A failed login leaves the
// stores unchanged.
func (a *authService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: please fill in all fields", common.ErrValidation)
	}

	rec, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, common.ErrUserNotFound
	}

	ok, err := a.digests.Verify(password, rec.DigestDriver, rec.PasswordDigest)
	if err != nil {
		return nil, fmt.Errorf("digest error: %w", err)
	}
	if !ok {
		return nil, common.ErrWrongPassword
	}

	ident := rec.Identity()
	if err := a.sessions.Set(ctx, ident); err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}
	return &ident, nil
}

// Logout clears the session. The credential record and all per-user
// collections survive.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// Resume returns the persisted session identity, or nil when no session
// is open.
func (a *authService) Resume(ctx context.Context) (*models.Identity, error) {
	return a.sessions.Get(ctx)
}
