// Package store persists small named client values (override flags, the
// active agent and conversation identifiers) with a scope and an expiry.
package store

import (
	"encoding/json"
	"time"
)

// Forever is the expiry used for values that should outlive any session.
const Forever = 2147483647 * time.Second

// Options control where a value lives and how long it is kept.
type Options struct {
	Scope  string        // Keys in different scopes never collide
	MaxAge time.Duration // Zero means the value never expires
}

// Store is a scoped key/value persistence capability.
type Store interface {
	// Get returns the value for key and whether it was present and unexpired.
	Get(key string, opts Options) (string, bool, error)
	Set(key, value string, opts Options) error
	Delete(key string, opts Options) error
	Close() error
}

// record is the persisted envelope for a value.
type record struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at,omitempty"` // Unix nanoseconds, 0 for no expiry
}

func newRecord(value string, opts Options, now time.Time) record {
	r := record{Value: value}
	if opts.MaxAge > 0 {
		r.ExpiresAt = now.Add(opts.MaxAge).UnixNano()
	}
	return r
}

func (r record) expired(now time.Time) bool {
	return r.ExpiresAt != 0 && now.UnixNano() >= r.ExpiresAt
}

func (r record) encode() ([]byte, error) {
	return json.Marshal(r)
}

func decodeRecord(b []byte) (record, error) {
	var r record
	err := json.Unmarshal(b, &r)
	return r, err
}

// scopedKey builds the physical key for key within scope.
func scopedKey(key string, opts Options) string {
	return "state:" + opts.Scope + ":" + key
}
