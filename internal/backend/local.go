// Package backend is the conversation data layer: a local pebble-backed
// conversation store fronted by a small request cache.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"

	"github.com/Elun4705/Interactive/internal/conversation"
	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

const (
	convPrefix = "conv:"
	msgPrefix  = "msg:"
)

func convKey(id string) []byte { return []byte(convPrefix + id) }

func msgKeyPrefix(id string) string { return msgPrefix + id + ":" }

func msgKey(id string, seq int) []byte {
	return []byte(fmt.Sprintf("%s%020d", msgKeyPrefix(id), seq))
}

// upperBound returns the smallest key greater than every key with prefix.
func upperBound(prefix string) []byte {
	b := []byte(prefix)
	b[len(b)-1]++
	return b
}

// Local stores conversations and their messages in pebble.
type Local struct {
	db  *pebble.DB
	now func() time.Time
}

// OpenLocal opens (or creates) the conversation store in dir.
func OpenLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, ierrors.StoreFailed("backend.Open", dir, err)
	}
	return openLocal(dir, &pebble.Options{})
}

// OpenLocalMem opens a conversation store on an in-memory filesystem.
func OpenLocalMem() (*Local, error) {
	return openLocal("", &pebble.Options{FS: vfs.NewMem()})
}

func openLocal(dir string, opts *pebble.Options) (*Local, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		logger.Error("conversation store open failed: path=%s err=%v", dir, err)
		return nil, ierrors.StoreFailed("backend.Open", dir, err)
	}
	return &Local{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (l *Local) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// NewConversation stores a new conversation seeded with msgs.
func (l *Local) NewConversation(agent, name string, msgs []conversation.Message) (conversation.Conversation, error) {
	now := l.now().UTC()
	conv := conversation.Conversation{
		ID:        uuid.New().String(),
		Name:      name,
		Agent:     agent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	batch := l.db.NewBatch()
	defer batch.Close()

	if err := setJSON(batch, convKey(conv.ID), conv); err != nil {
		return conversation.Conversation{}, ierrors.StoreFailed("backend.NewConversation", conv.ID, err)
	}
	for i, m := range msgs {
		if err := setJSON(batch, msgKey(conv.ID, i), m); err != nil {
			return conversation.Conversation{}, ierrors.StoreFailed("backend.NewConversation", conv.ID, err)
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return conversation.Conversation{}, ierrors.StoreFailed("backend.NewConversation", conv.ID, err)
	}

	logger.WithConversation(conv.ID).Info("conversation created", "name", name, "agent", agent, "messages", len(msgs))
	return conv, nil
}

func setJSON(b *pebble.Batch, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Set(key, data, nil)
}

// Conversation returns the conversation with the given id.
func (l *Local) Conversation(id string) (conversation.Conversation, error) {
	v, closer, err := l.db.Get(convKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return conversation.Conversation{}, ierrors.ConversationNotFound(id)
	}
	if err != nil {
		return conversation.Conversation{}, ierrors.StoreFailed("backend.Conversation", id, err)
	}
	defer closer.Close()

	var conv conversation.Conversation
	if err := json.Unmarshal(v, &conv); err != nil {
		return conversation.Conversation{}, ierrors.StoreFailed("backend.Conversation", id, err)
	}
	return conv, nil
}

// Conversations lists every conversation, most recently updated first.
func (l *Local) Conversations() ([]conversation.Conversation, error) {
	iter, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(convPrefix),
		UpperBound: upperBound(convPrefix),
	})
	if err != nil {
		return nil, ierrors.StoreFailed("backend.Conversations", convPrefix, err)
	}
	defer iter.Close()

	var out []conversation.Conversation
	for iter.First(); iter.Valid(); iter.Next() {
		var conv conversation.Conversation
		if err := json.Unmarshal(iter.Value(), &conv); err != nil {
			logger.Warn("skipping corrupt conversation record %s: %v", iter.Key(), err)
			continue
		}
		out = append(out, conv)
	}
	if err := iter.Error(); err != nil {
		return nil, ierrors.StoreFailed("backend.Conversations", convPrefix, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Messages returns the messages of a conversation in order.
func (l *Local) Messages(id string) ([]conversation.Message, error) {
	prefix := msgKeyPrefix(id)
	iter, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upperBound(prefix),
	})
	if err != nil {
		return nil, ierrors.StoreFailed("backend.Messages", id, err)
	}
	defer iter.Close()

	var out []conversation.Message
	for iter.First(); iter.Valid(); iter.Next() {
		var m conversation.Message
		if err := json.Unmarshal(iter.Value(), &m); err != nil {
			return nil, ierrors.StoreFailed("backend.Messages", id, err)
		}
		out = append(out, m)
	}
	if err := iter.Error(); err != nil {
		return nil, ierrors.StoreFailed("backend.Messages", id, err)
	}
	return out, nil
}

// Append adds messages to the end of a conversation and bumps its update time.
func (l *Local) Append(id string, msgs ...conversation.Message) error {
	conv, err := l.Conversation(id)
	if err != nil {
		return err
	}
	existing, err := l.Messages(id)
	if err != nil {
		return err
	}

	batch := l.db.NewBatch()
	defer batch.Close()

	for i, m := range msgs {
		if err := setJSON(batch, msgKey(id, len(existing)+i), m); err != nil {
			return ierrors.StoreFailed("backend.Append", id, err)
		}
	}
	conv.UpdatedAt = l.now().UTC()
	if err := setJSON(batch, convKey(id), conv); err != nil {
		return ierrors.StoreFailed("backend.Append", id, err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return ierrors.StoreFailed("backend.Append", id, err)
	}
	return nil
}

// Delete removes a conversation and all of its messages.
func (l *Local) Delete(id string) error {
	if _, err := l.Conversation(id); err != nil {
		return err
	}
	prefix := msgKeyPrefix(id)

	batch := l.db.NewBatch()
	defer batch.Close()

	if err := batch.DeleteRange([]byte(prefix), upperBound(prefix), nil); err != nil {
		return ierrors.StoreFailed("backend.Delete", id, err)
	}
	if err := batch.Delete(convKey(id), nil); err != nil {
		return ierrors.StoreFailed("backend.Delete", id, err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return ierrors.StoreFailed("backend.Delete", id, err)
	}
	logger.WithConversation(id).Info("conversation deleted")
	return nil
}
