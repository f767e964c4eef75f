package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pilearning/pilearn/internal/client/services"
)

// Cards prints the user's flashcard deck.
func (a *App) Cards(ctx context.Context) error {
	deck, err := a.flashcardService.Deck(ctx, a.ident.ID)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}
	if len(deck) == 0 {
		printlnFn("No flashcards yet. Try: generate [count] [topic]")
		return nil
	}
	for i, c := range deck {
		printlnFn(fmt.Sprintf("%d. [%s] %s", i+1, c.Tag, c.Question))
		printlnFn(fmt.Sprintf("   %s", c.Answer))
	}
	return nil
}

// Generate asks the workflow for new cards and merges them into the
// deck. An optional leading numeric argument sets the card count; the
// rest is the topic. Without a topic cards cover all indexed material.
func (a *App) Generate(ctx context.Context, args []string) error {
	count := services.MinCardCount
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			count = n
			args = args[1:]
		}
	}
	topic := strings.Join(args, " ")

	deck, added, err := a.flashcardService.Generate(ctx, *a.ident, topic, count)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Added %d new cards (deck has %d)", added, len(deck)))
	return nil
}

// ClearCards wipes the whole deck.
func (a *App) ClearCards(ctx context.Context) error {
	if err := a.flashcardService.Clear(ctx, a.ident.ID); err != nil {
		printlnFn(errMessage(err))
		return err
	}
	printlnFn("Flashcards cleared")
	return nil
}
