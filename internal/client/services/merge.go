package services

import "github.com/pilearning/pilearn/internal/client/models"

// MergeFlashcards appends incoming cards to deck, dropping any incoming
// card whose Question already exists in the deck (exact match). Duplicates
// within incoming are also collapsed to their first occurrence. Existing
// cards keep their order and are never modified; new cards follow in
// incoming order. Returns the merged deck and the number of cards added.
func MergeFlashcards(deck, incoming []models.Flashcard) ([]models.Flashcard, int) {
	seen := make(map[string]struct{}, len(deck))
	for _, c := range deck {
		seen[c.Question] = struct{}{}
	}

	merged := make([]models.Flashcard, 0, len(deck)+len(incoming))
	merged = append(merged, deck...)

	added := 0
	for _, c := range incoming {
		if _, ok := seen[c.Question]; ok {
			continue
		}
		seen[c.Question] = struct{}{}
		merged = append(merged, c)
		added++
	}
	return merged, added
}
