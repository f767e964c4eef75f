// Package kv implements the client's durable key-value store, the local
// analog of a browser's persistent storage. Collections (chat history,
// document lists, flashcard decks, the credential collection) are
// serialized as JSON and written whole under a single key, so a mutation
// is always a whole-collection replace.
package kv

import "context"

// Repository is a durable string-keyed byte store.
type Repository interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
