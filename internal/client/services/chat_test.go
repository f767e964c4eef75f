package services

import (
	"context"
	"testing"

	"github.com/pilearning/pilearn/internal/client/client"
	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var testIdent = models.Identity{ID: "user_1", Username: "alice"}

func setupChat(t *testing.T, fc *fakeClient) ChatService {
	t.Helper()
	db := setupDB(t)
	return NewChatService(fc, kv.NewSQLiteRepository(db), testLogger)
}

func TestChatService_SendPersistsBothTurns(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			return "Here is what I found.", nil
		},
	}
	svc := setupChat(t, fc)

	reply, err := svc.Send(ctx, testIdent, "what is osmosis?")
	require.NoError(t, err)
	assert.Equal(t, models.MessageRoleAI, reply.Role)
	assert.Equal(t, "Here is what I found.", reply.Content)
	assert.True(t, reply.Verified)

	history, err := svc.History(ctx, testIdent.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.MessageRoleUser, history[0].Role)
	assert.Equal(t, "what is osmosis?", history[0].Content)
	assert.Equal(t, reply.ID, history[1].ID)
}

func TestChatService_SendIncludesPriorHistory(t *testing.T) {
	ctx := context.Background()

	var got client.ChatRequest
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			got = req
			return "ok", nil
		},
	}
	svc := setupChat(t, fc)

	_, err := svc.Send(ctx, testIdent, "first")
	require.NoError(t, err)
	_, err = svc.Send(ctx, testIdent, "second")
	require.NoError(t, err)

	assert.Equal(t, "second", got.Message)
	assert.Equal(t, testIdent.ID, got.UserID)
	require.Len(t, got.History, 2)
	assert.Equal(t, "user", got.History[0].Role)
	assert.Equal(t, "first", got.History[0].Content)
	assert.Equal(t, "ai", got.History[1].Role)
}

func TestChatService_SessionIDStable(t *testing.T) {
	ctx := context.Background()

	var sessions []string
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			sessions = append(sessions, req.SessionID)
			return "ok", nil
		},
	}
	svc := setupChat(t, fc)

	_, err := svc.Send(ctx, testIdent, "one")
	require.NoError(t, err)
	_, err = svc.Send(ctx, testIdent, "two")
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.NotEmpty(t, sessions[0])
	assert.Equal(t, sessions[0], sessions[1])
}

func TestChatService_UnavailableFallsBack(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			return "", client.ErrUnavailable
		},
	}
	svc := setupChat(t, fc)

	reply, err := svc.Send(ctx, testIdent, "hello?")
	require.NoError(t, err)
	assert.False(t, reply.Verified)
	assert.Equal(t, fallbackReply, reply.Content)

	// the failed turn is still part of the transcript
	history, err := svc.History(ctx, testIdent.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestChatService_NotConfiguredServesDemo(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			return "", client.ErrNotConfigured
		},
	}
	svc := setupChat(t, fc)

	reply, err := svc.Send(ctx, testIdent, "hello?")
	require.NoError(t, err)
	assert.False(t, reply.Verified)
	assert.Equal(t, demoReply, reply.Content)
}

func TestChatService_HistoryIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			return "ok", nil
		},
	}
	svc := setupChat(t, fc)

	_, err := svc.Send(ctx, testIdent, "only alice sees this")
	require.NoError(t, err)

	other, err := svc.History(ctx, "user_2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestChatService_HistoryRequiresIdentity(t *testing.T) {
	ctx := context.Background()
	svc := setupChat(t, &fakeClient{})

	_, err := svc.History(ctx, "")
	assert.ErrorIs(t, err, common.ErrNoIdentity)
}

func TestChatService_ClearHistoryStartsFreshSession(t *testing.T) {
	ctx := context.Background()

	var sessions []string
	fc := &fakeClient{
		sendMessage: func(ctx context.Context, req client.ChatRequest) (string, error) {
			sessions = append(sessions, req.SessionID)
			return "ok", nil
		},
	}
	svc := setupChat(t, fc)

	_, err := svc.Send(ctx, testIdent, "one")
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx, testIdent.ID))

	history, err := svc.History(ctx, testIdent.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = svc.Send(ctx, testIdent, "two")
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.NotEqual(t, sessions[0], sessions[1])
}
