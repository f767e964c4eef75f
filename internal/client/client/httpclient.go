package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pilearning/pilearn/internal/client/models"
)

// placeholderMarker appears in the stock webhook URLs shipped in the
// default config; a URL containing it has never been pointed at a real
// workflow instance.
const placeholderMarker = "your-n8n-instance"

// HTTPClient talks JSON-over-POST to the three workflow webhooks.
type HTTPClient struct {
	chatURL       string
	uploadURL     string
	flashcardsURL string
	hc            *http.Client
}

func NewHTTPClient(chatURL, uploadURL, flashcardsURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		chatURL:       chatURL,
		uploadURL:     uploadURL,
		flashcardsURL: flashcardsURL,
		hc:            &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error { return nil }

// post marshals body, POSTs it to url, and returns the raw response body.
// Transport errors and non-2xx statuses map to ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, url string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return data, nil
}

func isPlaceholder(url string) bool {
	return strings.Contains(url, placeholderMarker)
}

// SendMessage posts a chat turn and returns the assistant's reply text.
// An empty string means the workflow answered without content; the caller
// decides what to show.
func (c *HTTPClient) SendMessage(ctx context.Context, req ChatRequest) (string, error) {
	if isPlaceholder(c.chatURL) {
		return "", ErrNotConfigured
	}

	data, err := c.post(ctx, c.chatURL, req)
	if err != nil {
		return "", err
	}

	var body struct {
		Output  string `json:"output"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", fmt.Errorf("%w: decoding chat response: %v", ErrUnavailable, err)
	}

	if body.Output != "" {
		return body.Output, nil
	}
	return body.Message, nil
}

// UploadDocument posts a base64-encoded document to the indexing workflow.
func (c *HTTPClient) UploadDocument(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if isPlaceholder(c.uploadURL) {
		return nil, ErrNotConfigured
	}

	data, err := c.post(ctx, c.uploadURL, req)
	if err != nil {
		return nil, err
	}

	var res UploadResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("%w: decoding upload response: %v", ErrUnavailable, err)
	}
	return &res, nil
}

// rawFlashcard tolerates both English and Spanish field names; the
// workflow emits either depending on the prompt language.
type rawFlashcard struct {
	ID           string `json:"id"`
	Question     string `json:"question"`
	Pregunta     string `json:"pregunta"`
	Answer       string `json:"answer"`
	Respuesta    string `json:"respuesta"`
	Tag          string `json:"tag"`
	Etiqueta     string `json:"etiqueta"`
	Color        string `json:"color"`
	Topic        string `json:"topic"`
	Category     string `json:"category"`
	Categoria    string `json:"categoria"`
	Subcategory  string `json:"subcategory"`
	Subcategoria string `json:"subcategoria"`
}

// GenerateFlashcards posts a generation request and normalizes whatever
// envelope shape the workflow replies with.
func (c *HTTPClient) GenerateFlashcards(ctx context.Context, req FlashcardRequest) ([]models.Flashcard, error) {
	if isPlaceholder(c.flashcardsURL) {
		return nil, ErrNotConfigured
	}

	data, err := c.post(ctx, c.flashcardsURL, req)
	if err != nil {
		return nil, err
	}

	raw, err := decodeFlashcardEnvelope(data)
	if err != nil {
		return nil, err
	}
	return normalizeFlashcards(raw, req.Topic), nil
}

// decodeFlashcardEnvelope handles the three response shapes the workflow
// is known to produce: [{"flashcards": [...]}], {"flashcards": [...]}, or
// a bare array of cards. Pointer fields distinguish a present-but-empty
// "flashcards" key (a successful zero-card reply) from an absent one, so
// an empty list never falls through to the bare-array branch.
func decodeFlashcardEnvelope(data []byte) ([]rawFlashcard, error) {
	var wrapped []struct {
		Flashcards *[]rawFlashcard `json:"flashcards"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped) > 0 && wrapped[0].Flashcards != nil {
		return *wrapped[0].Flashcards, nil
	}

	var obj struct {
		Flashcards *[]rawFlashcard `json:"flashcards"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Flashcards != nil {
		return *obj.Flashcards, nil
	}

	var arr []rawFlashcard
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}

	return nil, fmt.Errorf("%w: unrecognized flashcard response", ErrUnavailable)
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func normalizeFlashcards(raw []rawFlashcard, topic string) []models.Flashcard {
	now := time.Now().UnixMilli()
	cards := make([]models.Flashcard, 0, len(raw))
	for _, r := range raw {
		cards = append(cards, models.Flashcard{
			ID:          pick(r.ID, uuid.NewString()),
			Question:    pick(r.Question, r.Pregunta),
			Answer:      pick(r.Answer, r.Respuesta),
			Tag:         pick(r.Tag, r.Etiqueta, "General"),
			Color:       pick(r.Color, "blue"),
			Topic:       pick(r.Topic, topic, "General"),
			Category:    pick(r.Category, r.Categoria, "General"),
			Subcategory: pick(r.Subcategory, r.Subcategoria),
			CreatedAt:   now,
		})
	}
	return cards
}
