package session

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/store"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

type recordingCache struct {
	keys []string
	err  error
}

func (c *recordingCache) InvalidateCache(_ context.Context, key string) error {
	c.keys = append(c.keys, key)
	return c.err
}

func TestIdentity_Defaults(t *testing.T) {
	id := New(store.NewMemory(), "", "Assistant")

	if got := id.Agent(); got != "Assistant" {
		t.Errorf("Agent() = %q, want default", got)
	}
	if got := id.Conversation(); got != NoConversation {
		t.Errorf("Conversation() = %q, want %q", got, NoConversation)
	}
	if got := id.UUID(); got != "" {
		t.Errorf("UUID() = %q, want empty", got)
	}
}

func TestIdentity_SetAndRead(t *testing.T) {
	s := store.NewMemory()
	id := New(s, "example.com", "Assistant")

	if err := id.SetAgent("Planner"); err != nil {
		t.Fatal(err)
	}
	if err := id.SetConversation("conv-1"); err != nil {
		t.Fatal(err)
	}

	again := New(s, "example.com", "Assistant")
	if again.Agent() != "Planner" || again.Conversation() != "conv-1" {
		t.Errorf("reloaded identity = %q / %q", again.Agent(), again.Conversation())
	}

	other := New(s, "other.com", "Assistant")
	if other.Agent() != "Assistant" {
		t.Error("identity leaked across scopes")
	}
}

func TestReset(t *testing.T) {
	s := store.NewMemory()
	id := New(s, "", "Assistant")
	id.SetConversation("conv-1")
	cache := &recordingCache{}

	fresh, err := id.Reset(context.Background(), cache)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if _, err := uuid.Parse(fresh); err != nil {
		t.Errorf("Reset() returned %q, not a uuid", fresh)
	}
	if id.UUID() != fresh {
		t.Errorf("UUID() = %q, want %q", id.UUID(), fresh)
	}
	if id.Conversation() != NoConversation {
		t.Errorf("Conversation() = %q, want %q", id.Conversation(), NoConversation)
	}
	if len(cache.keys) != 1 || cache.keys[0] != "/conversation/-" {
		t.Errorf("invalidated = %v, want [/conversation/-]", cache.keys)
	}
}

func TestReset_IssuesNewUUIDEachTime(t *testing.T) {
	id := New(store.NewMemory(), "", "Assistant")

	a, _ := id.Reset(context.Background(), nil)
	b, _ := id.Reset(context.Background(), nil)
	if a == b {
		t.Error("consecutive resets returned the same uuid")
	}
}

func TestReset_CacheError(t *testing.T) {
	id := New(store.NewMemory(), "", "Assistant")
	cache := &recordingCache{err: errors.New("offline")}

	if _, err := id.Reset(context.Background(), cache); err == nil {
		t.Error("expected invalidation error to be returned")
	}
}
