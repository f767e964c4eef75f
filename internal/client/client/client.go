package client

import (
	"context"

	"github.com/pilearning/pilearn/internal/client/models"
)

// Client is the contract for the remote workflow service. All real work
// (answering questions, indexing documents, generating flashcards) happens
// behind these three webhook calls.
type Client interface {
	Close() error
	SendMessage(ctx context.Context, req ChatRequest) (string, error)
	UploadDocument(ctx context.Context, req UploadRequest) (*UploadResult, error)
	GenerateFlashcards(ctx context.Context, req FlashcardRequest) ([]models.Flashcard, error)
}

// ChatTurn is one prior conversation turn sent as context.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat webhook payload.
type ChatRequest struct {
	Message   string     `json:"message"`
	SessionID string     `json:"sessionId"`
	UserID    string     `json:"userId"`
	History   []ChatTurn `json:"history"`
}

// UploadRequest is the document-indexing webhook payload. File holds the
// base64-encoded document bytes.
type UploadRequest struct {
	File     string `json:"file"`
	Filename string `json:"filename"`
}

// UploadResult is what the indexing workflow reports back. Both fields are
// optional; callers fall back to local values when they are absent.
type UploadResult struct {
	Filename   string  `json:"filename"`
	FileSizeMB float64 `json:"file_size_mb"`
}

// FlashcardAction selects the generation mode.
type FlashcardAction string

const (
	ActionGenerateSpecific FlashcardAction = "generate_specific"
	ActionGenerateAll      FlashcardAction = "generate_all"
)

// FlashcardRequest is the flashcard webhook payload. Count must already be
// clamped to the [5,15] range the workflow accepts.
type FlashcardRequest struct {
	Action FlashcardAction `json:"action"`
	Topic  string          `json:"topic"`
	Count  int             `json:"count"`
}
