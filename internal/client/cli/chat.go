package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pilearning/pilearn/internal/client/models"
)

// Ask sends a question to the study assistant. The question comes from
// the command arguments, or from an interactive prompt when none were
// given.
func (a *App) Ask(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		text, err = getSimpleText(a.reader, "Your question", os.Stdout)
		if err != nil {
			return err
		}
	}
	if text == "" {
		printlnFn("Usage: ask <question>")
		return nil
	}

	reply, err := a.chatService.Send(ctx, *a.ident, text)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("assistant: %s", reply.Content))
	return nil
}

// History prints the transcript, oldest first.
func (a *App) History(ctx context.Context) error {
	messages, err := a.chatService.History(ctx, a.ident.ID)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}
	if len(messages) == 0 {
		printlnFn("No messages yet. Try: ask <question>")
		return nil
	}
	for _, m := range messages {
		role := "you"
		if m.Role == models.MessageRoleAI {
			role = "assistant"
		}
		printlnFn(fmt.Sprintf("%s: %s", role, m.Content))
	}
	return nil
}

// ClearChat wipes the transcript and starts a fresh conversation.
func (a *App) ClearChat(ctx context.Context) error {
	if err := a.chatService.ClearHistory(ctx, a.ident.ID); err != nil {
		printlnFn(errMessage(err))
		return err
	}
	printlnFn("Chat history cleared")
	return nil
}
