package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pilearning/pilearn/internal/client/client"
	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/client/store"
	"github.com/pilearning/pilearn/internal/logging"
)

// Generation count bounds accepted by the workflow.
const (
	MinCardCount = 5
	MaxCardCount = 15
)

// fallbackColors cycles through the card palette for locally generated
// cards.
var fallbackColors = []string{"red", "blue", "emerald", "amber", "purple"}

// FlashcardService manages a user's deck: generation via the workflow
// (with a local fallback), merging new cards in, and clearing the deck.
type FlashcardService interface {
	Deck(ctx context.Context, userID string) ([]models.Flashcard, error)
	// Generate requests count cards about topic (all indexed material when
	// topic is empty), merges them into the deck, and returns the merged
	// deck plus the number of cards actually added.
	Generate(ctx context.Context, ident models.Identity, topic string, count int) ([]models.Flashcard, int, error)
	Clear(ctx context.Context, userID string) error
}

type flashcardService struct {
	client client.Client
	deck   *store.Collection[models.Flashcard]
	log    logging.Logger
}

func NewFlashcardService(c client.Client, kvRepo kv.Repository, log logging.Logger) FlashcardService {
	return &flashcardService{
		client: c,
		deck:   store.NewCollection[models.Flashcard](store.CollectionFlashcards, kvRepo),
		log:    log,
	}
}

func (s *flashcardService) Deck(ctx context.Context, userID string) ([]models.Flashcard, error) {
	return s.deck.Load(ctx, userID)
}

func clampCount(count int) int {
	if count < MinCardCount {
		return MinCardCount
	}
	if count > MaxCardCount {
		return MaxCardCount
	}
	return count
}

func (s *flashcardService) Generate(ctx context.Context, ident models.Identity, topic string, count int) ([]models.Flashcard, int, error) {
	count = clampCount(count)

	req := client.FlashcardRequest{Action: client.ActionGenerateAll, Count: count}
	if topic != "" {
		req.Action = client.ActionGenerateSpecific
		req.Topic = topic
	}

	cards, err := s.client.GenerateFlashcards(ctx, req)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrNotConfigured), errors.Is(err, client.ErrUnavailable):
		s.log.Warn(ctx, "flashcard webhook unavailable, generating cards locally", "topic", topic, "error", err)
		cards = fallbackCards(topic, count)
	default:
		return nil, 0, err
	}

	deck, err := s.deck.Load(ctx, ident.ID)
	if err != nil {
		return nil, 0, err
	}

	merged, added := MergeFlashcards(deck, cards)
	if added > 0 {
		if err := s.deck.Save(ctx, ident.ID, merged); err != nil {
			return nil, 0, err
		}
	}
	return merged, added, nil
}

// Clear wipes the user's whole deck.
func (s *flashcardService) Clear(ctx context.Context, userID string) error {
	return s.deck.Clear(ctx, userID)
}

// fallbackCards builds cards locally when the workflow is unreachable or
// not yet configured. With a topic it produces count placeholder cards on
// that topic; without one it produces a small fixed study-skills set.
func fallbackCards(topic string, count int) []models.Flashcard {
	now := time.Now().UnixMilli()

	if topic != "" {
		cards := make([]models.Flashcard, 0, count)
		for i := 0; i < count; i++ {
			cards = append(cards, models.Flashcard{
				ID:        uuid.NewString(),
				Question:  fmt.Sprintf("Question %d about %s (offline fallback)", i+1, topic),
				Answer:    fmt.Sprintf("Review your notes on %s to answer this.", topic),
				Tag:       topic,
				Color:     fallbackColors[i%len(fallbackColors)],
				Topic:     topic,
				Category:  "General",
				CreatedAt: now,
			})
		}
		return cards
	}

	seed := []struct {
		q, a string
	}{
		{"What is spaced repetition? (offline fallback)", "Reviewing material at increasing intervals to move it into long-term memory."},
		{"What is active recall? (offline fallback)", "Testing yourself on material instead of rereading it."},
		{"Why interleave topics when studying? (offline fallback)", "Mixing topics strengthens the ability to pick the right approach per problem."},
	}

	cards := make([]models.Flashcard, 0, len(seed))
	for i, s := range seed {
		cards = append(cards, models.Flashcard{
			ID:        uuid.NewString(),
			Question:  s.q,
			Answer:    s.a,
			Tag:       "Study skills",
			Color:     fallbackColors[i%len(fallbackColors)],
			Topic:     "Study skills",
			Category:  "General",
			CreatedAt: now,
		})
	}
	return cards
}
