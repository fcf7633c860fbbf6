package domain

import "time"

// ChatRole distinguishes the two speakers in the chat history.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one append-only chat history record.
type ChatMessage struct {
	MessageID string
	UserID    string
	Role      ChatRole
	Message   string
	Timestamp time.Time
}
