// Package conversation defines the conversation records exchanged with the
// backend and parses exported conversation files back into them.
package conversation

import (
	"context"
	"time"
)

// Cache keys addressed by the backend data layer.
const ConversationsKey = "/conversations"

// CacheKey returns the cache key of a single conversation.
func CacheKey(id string) string {
	return "/conversation/" + id
}

// TimestampFormat is the layout of message timestamps (UTC, milliseconds).
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Message is one turn of a conversation.
type Message struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Conversation describes a stored conversation.
type Conversation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Agent     string    `json:"agent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SDK is the backend capability the client needs for conversations.
type SDK interface {
	CreateConversation(ctx context.Context, agent, name string, msgs []Message) (Conversation, error)
	InvalidateCache(ctx context.Context, key string) error
}

// Stamp formats t as a message timestamp.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// Payload is what the chat bar sends: typed text, or a recorded voice clip
// as a data URL.
type Payload struct {
	Text  string
	Audio string
}

// IsEmpty reports whether the payload carries nothing.
func (p Payload) IsEmpty() bool {
	return p.Text == "" && p.Audio == ""
}
