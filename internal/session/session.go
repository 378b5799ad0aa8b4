package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/store"
)

// Persisted key names.
const (
	AgentKey        = "agent"
	ConversationKey = "conversation"
	UUIDKey         = "uuid"
)

// NoConversation is the active conversation id before any message is sent.
const NoConversation = "-"

// Invalidator drops a cached backend entry by key.
type Invalidator interface {
	InvalidateCache(ctx context.Context, key string) error
}

// Identity reads and writes the persisted identifiers.
type Identity struct {
	state        store.Store
	scope        string
	defaultAgent string
}

// New creates an Identity over s. defaultAgent is used until an agent is
// explicitly chosen.
func New(s store.Store, scope, defaultAgent string) *Identity {
	return &Identity{state: s, scope: scope, defaultAgent: defaultAgent}
}

func (id *Identity) opts() store.Options {
	return store.Options{Scope: id.scope, MaxAge: store.Forever}
}

func (id *Identity) get(key, fallback string) string {
	v, ok, err := id.state.Get(key, id.opts())
	if err != nil {
		logger.Warn("session: failed to read %s: %v", key, err)
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}

// Agent returns the active agent name.
func (id *Identity) Agent() string {
	return id.get(AgentKey, id.defaultAgent)
}

// SetAgent makes name the active agent.
func (id *Identity) SetAgent(name string) error {
	return id.state.Set(AgentKey, name, id.opts())
}

// Conversation returns the active conversation id, or NoConversation.
func (id *Identity) Conversation() string {
	return id.get(ConversationKey, NoConversation)
}

// SetConversation makes convID the active conversation.
func (id *Identity) SetConversation(convID string) error {
	return id.state.Set(ConversationKey, convID, id.opts())
}

// UUID returns the client uuid, or "" if none was ever issued.
func (id *Identity) UUID() string {
	return id.get(UUIDKey, "")
}

// Reset starts a fresh conversation. It returns the new client uuid.
func (id *Identity) Reset(ctx context.Context, cache Invalidator) (string, error) {
	fresh := uuid.New().String()
	if err := id.state.Set(UUIDKey, fresh, id.opts()); err != nil {
		return "", err
	}
	if err := id.SetConversation(NoConversation); err != nil {
		return "", err
	}
	if cache != nil {
		if err := cache.InvalidateCache(ctx, conversation.CacheKey(NoConversation)); err != nil {
			return "", err
		}
	}
	logger.Info("session: conversation reset, uuid=%s", fresh)
	return fresh, nil
}
