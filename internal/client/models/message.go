package models

// MessageRole distinguishes user turns from assistant turns.
type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	MessageRoleAI   MessageRole = "ai"
)

// Message is one chat turn. Verified is false for offline fallback replies
// that were substituted when the chat webhook was unreachable.
type Message struct {
	ID       string      `json:"id"`
	Role     MessageRole `json:"role"`
	Content  string      `json:"content"`
	Verified bool        `json:"verified,omitempty"`
}
