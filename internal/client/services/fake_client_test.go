package services

import (
	"context"
	"log/slog"

	"github.com/pilearning/pilearn/internal/client/client"
	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/logging"
)

// testLogger discards all output.
var testLogger = logging.NewSlogLogger(slog.New(slog.DiscardHandler))

// fakeClient is a scriptable client.Client for service tests.
type fakeClient struct {
	sendMessage        func(ctx context.Context, req client.ChatRequest) (string, error)
	uploadDocument     func(ctx context.Context, req client.UploadRequest) (*client.UploadResult, error)
	generateFlashcards func(ctx context.Context, req client.FlashcardRequest) ([]models.Flashcard, error)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SendMessage(ctx context.Context, req client.ChatRequest) (string, error) {
	return f.sendMessage(ctx, req)
}

func (f *fakeClient) UploadDocument(ctx context.Context, req client.UploadRequest) (*client.UploadResult, error) {
	return f.uploadDocument(ctx, req)
}

func (f *fakeClient) GenerateFlashcards(ctx context.Context, req client.FlashcardRequest) ([]models.Flashcard, error) {
	return f.generateFlashcards(ctx, req)
}
