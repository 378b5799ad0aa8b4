package backend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Elun4705/Interactive/internal/conversation"
	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

// VoiceFileName is the attachment name given to recorded voice clips.
const VoiceFileName = "voice-message.wav"

// Client is the conversation data layer used by the UI. It implements
// conversation.SDK.
type Client struct {
	local     *Local
	cache     *Cache
	responder Responder
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithResponder sets the reply producer. Echo is used by default.
func WithResponder(r Responder) Option {
	return func(c *Client) { c.responder = r }
}

// WithCacheTTL bounds how long reads are served from cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = NewCache(ttl) }
}

// NewClient creates a client over a local store.
func NewClient(local *Local, opts ...Option) *Client {
	c := &Client{
		local:     local,
		cache:     NewCache(0),
		responder: Echo,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateConversation stores a new conversation seeded with msgs.
func (c *Client) CreateConversation(_ context.Context, agent, name string, msgs []conversation.Message) (conversation.Conversation, error) {
	return c.local.NewConversation(agent, name, msgs)
}

// InvalidateCache drops a cached read so the next one refetches.
func (c *Client) InvalidateCache(_ context.Context, key string) error {
	c.cache.Invalidate(key)
	return nil
}

// Conversations lists conversations through the cache.
func (c *Client) Conversations(ctx context.Context) ([]conversation.Conversation, error) {
	v, err := c.cache.Get(ctx, conversation.ConversationsKey, func(context.Context) (any, error) {
		return c.local.Conversations()
	})
	if err != nil {
		return nil, err
	}
	return v.([]conversation.Conversation), nil
}

// Messages loads a conversation's messages through the cache. The
// placeholder id "-" has no messages.
func (c *Client) Messages(ctx context.Context, id string) ([]conversation.Message, error) {
	if id == "" || id == conversation.NoConversationID {
		return nil, nil
	}
	v, err := c.cache.Get(ctx, conversation.CacheKey(id), func(context.Context) (any, error) {
		return c.local.Messages(id)
	})
	if err != nil {
		return nil, err
	}
	return v.([]conversation.Message), nil
}

// Delete removes a conversation.
func (c *Client) Delete(_ context.Context, id string) error {
	if err := c.local.Delete(id); err != nil {
		return err
	}
	c.cache.Invalidate(conversation.ConversationsKey)
	c.cache.Invalidate(conversation.CacheKey(id))
	return nil
}

// Send appends a user message to conversation convID (starting a new
// conversation when convID is "-"), asks the responder for a reply, and
// returns the id of the conversation the exchange landed in.
func (c *Client) Send(ctx context.Context, agent, convID string, p conversation.Payload, files map[string]string) (string, error) {
	if p.IsEmpty() && len(files) == 0 {
		return "", ierrors.E(ierrors.Op("backend.Send"), ierrors.KindInvalid, "nothing to send")
	}

	names := make([]string, 0, len(files)+1)
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	if p.Audio != "" {
		names = append(names, VoiceFileName)
	}

	user := conversation.Message{
		Role:      "user",
		Message:   withAttachments(p.Text, names),
		Timestamp: conversation.Stamp(c.now()),
	}

	if convID == "" || convID == conversation.NoConversationID {
		conv, err := c.local.NewConversation(agent, conversationName(p.Text, c.now()), []conversation.Message{user})
		if err != nil {
			return "", err
		}
		convID = conv.ID
	} else if err := c.local.Append(convID, user); err != nil {
		return "", err
	}
	c.cache.Invalidate(conversation.ConversationsKey)
	c.cache.Invalidate(conversation.CacheKey(convID))

	if err := ctx.Err(); err != nil {
		return convID, ierrors.E(ierrors.Op("backend.Send"), ierrors.KindCanceled, err)
	}

	history, err := c.local.Messages(convID)
	if err != nil {
		return convID, err
	}
	reply, err := c.responder.Respond(ctx, agent, history, names)
	if err != nil {
		logger.WithConversation(convID).Error("responder failed", "agent", agent, "error", err)
		return convID, ierrors.BackendFailed("backend.Send", err)
	}

	assistant := conversation.Message{
		Role:      agent,
		Message:   reply,
		Timestamp: conversation.Stamp(c.now()),
	}
	if err := c.local.Append(convID, assistant); err != nil {
		return convID, err
	}
	c.cache.Invalidate(conversation.CacheKey(convID))
	return convID, nil
}

func withAttachments(text string, names []string) string {
	if len(names) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[attached: ")
		b.WriteString(n)
		b.WriteString("]")
	}
	return b.String()
}

// conversationName titles a new conversation from the first words of its
// opening message.
func conversationName(text string, now time.Time) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "Conversation " + now.UTC().Format("2006-01-02 15:04")
	}
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.Join(words, " ")
}
