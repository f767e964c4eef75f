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

// fallbackReply is shown when the chat webhook cannot be reached. The
// turn is still recorded so the transcript reflects what the user saw.
const fallbackReply = "I could not reach the study assistant right now. " +
	"Your message was saved; please check the webhook configuration and try again."

// demoReply is served while the chat webhook URL is still the
// documentation placeholder.
const demoReply = "This is a demo response. Point the chat webhook at a real " +
	"workflow to get actual answers about your study material."

// ChatService manages a user's conversation with the study assistant:
// the persisted transcript, the per-user conversation id sent to the
// workflow, and the online/offline reply paths.
type ChatService interface {
	History(ctx context.Context, userID string) ([]models.Message, error)
	Send(ctx context.Context, ident models.Identity, text string) (*models.Message, error)
	ClearHistory(ctx context.Context, userID string) error
}

type chatService struct {
	client   client.Client
	kv       kv.Repository
	messages *store.Collection[models.Message]
	log      logging.Logger
}

func NewChatService(c client.Client, kvRepo kv.Repository, log logging.Logger) ChatService {
	return &chatService{
		client:   c,
		kv:       kvRepo,
		messages: store.NewCollection[models.Message](store.CollectionChat, kvRepo),
		log:      log,
	}
}

// History returns the persisted transcript for userID, oldest first.
func (s *chatService) History(ctx context.Context, userID string) ([]models.Message, error) {
	return s.messages.Load(ctx, userID)
}

// sessionID returns the user's conversation id, minting and persisting a
// new one on first use. The workflow uses it to correlate turns.
func (s *chatService) sessionID(ctx context.Context, userID string) (string, error) {
	key := store.KeyFor(store.CollectionChatID, userID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if data != nil {
		return string(data), nil
	}

	id := fmt.Sprintf("session-%s-%d-%s", userID, time.Now().UnixMilli(), uuid.NewString()[:8])
	if err := s.kv.Set(ctx, key, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

// Send appends the user's turn to the transcript, asks the workflow for a
// reply, and appends that too. When the webhook is unreachable or not yet
// configured a local fallback reply is substituted with Verified left
// false; both turns are persisted either way.
func (s *chatService) Send(ctx context.Context, ident models.Identity, text string) (*models.Message, error) {
	history, err := s.messages.Load(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessionID(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	turns := make([]client.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, client.ChatTurn{Role: string(m.Role), Content: m.Content})
	}

	userMsg := models.Message{
		ID:      uuid.NewString(),
		Role:    models.MessageRoleUser,
		Content: text,
	}

	reply := models.Message{
		ID:   uuid.NewString(),
		Role: models.MessageRoleAI,
	}

	answer, err := s.client.SendMessage(ctx, client.ChatRequest{
		Message:   text,
		SessionID: sessionID,
		UserID:    ident.ID,
		History:   turns,
	})
	switch {
	case err == nil:
		reply.Content = answer
		reply.Verified = true
	case errors.Is(err, client.ErrNotConfigured):
		s.log.Debug(ctx, "chat webhook not configured, serving demo reply")
		reply.Content = demoReply
	case errors.Is(err, client.ErrUnavailable):
		s.log.Warn(ctx, "chat webhook unreachable, serving fallback reply", "error", err)
		reply.Content = fallbackReply
	default:
		return nil, err
	}

	history = append(history, userMsg, reply)
	if err := s.messages.Save(ctx, ident.ID, history); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ClearHistory wipes the transcript and the conversation id, so the next
// message starts a fresh workflow conversation.
func (s *chatService) ClearHistory(ctx context.Context, userID string) error {
	if err := s.messages.Clear(ctx, userID); err != nil {
		return err
	}
	return s.kv.Delete(ctx, store.KeyFor(store.CollectionChatID, userID))
}
