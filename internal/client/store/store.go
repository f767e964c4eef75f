// Package store provides per-user namespaced persistence on top of the kv
// repository. A collection's storage key is a pure function of the
// collection name and the owning user id, so chat history, document lists,
// and flashcard decks never leak across identities. Absence of an identity
// means a collection is unavailable, never "shared": every operation
// guards against an empty user id with common.ErrNoIdentity.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/common"
)

// Collection names of the persisted per-user lists.
const (
	CollectionChat       = "pilearning_chat"
	CollectionDocuments  = "pilearning_documents"
	CollectionFlashcards = "pilearning_flashcards"
	CollectionChatID     = "pilearning_chat_session"
)

// KeyFor derives the storage key for a collection owned by userID.
func KeyFor(collection, userID string) string {
	return collection + "_" + userID
}

// Collection is a persisted, per-user JSON array of T. Loads return an
// empty slice for an absent key; saves replace the whole stored array.
type Collection[T any] struct {
	name string
	repo kv.Repository
}

func NewCollection[T any](name string, repo kv.Repository) *Collection[T] {
	return &Collection[T]{name: name, repo: repo}
}

func (c *Collection[T]) Load(ctx context.Context, userID string) ([]T, error) {
	if userID == "" {
		return nil, common.ErrNoIdentity
	}

	data, err := c.repo.Get(ctx, KeyFor(c.name, userID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", c.name, err)
	}
	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, userID string, items []T) error {
	if userID == "" {
		return common.ErrNoIdentity
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}
	return c.repo.Set(ctx, KeyFor(c.name, userID), data)
}

func (c *Collection[T]) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return common.ErrNoIdentity
	}
	return c.repo.Delete(ctx, KeyFor(c.name, userID))
}
