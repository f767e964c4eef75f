// Package models defines client-side data models used by the PI Learning CLI.
package models

import "github.com/pilearning/pilearn/internal/digest"

// Identity is the public, non-secret representation of an authenticated
// user. It is the only user shape exposed outside the auth subsystem and
// the only one the session store ever holds.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// CredentialRecord is Identity plus the stored password digest and the tag
// of the digest driver that produced it. Owned exclusively by the
// credential store; it never crosses the auth boundary.
type CredentialRecord struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"` // lowercase, unique
	PasswordDigest string            `json:"passwordDigest"`
	DigestDriver   digest.DriverName `json:"digestDriver"`
	CreatedAt      int64             `json:"createdAt"`
}

// Identity strips the secret fields from the record.
func (r *CredentialRecord) Identity() Identity {
	return Identity{ID: r.ID, Username: r.Username, CreatedAt: r.CreatedAt}
}
