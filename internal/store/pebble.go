package store

import (
	"errors"
	"os"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

// Pebble is a Store backed by a pebble database on disk.
type Pebble struct {
	db  *pebble.DB
	now func() time.Time
}

// OpenPebble opens (or creates) a pebble-backed store in dir.
func OpenPebble(dir string) (*Pebble, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, ierrors.StoreFailed("store.Open", dir, err)
	}
	return openPebble(dir, &pebble.Options{})
}

// OpenMemPebble opens a pebble store on an in-memory filesystem.
func OpenMemPebble() (*Pebble, error) {
	return openPebble("", &pebble.Options{FS: vfs.NewMem()})
}

func openPebble(dir string, opts *pebble.Options) (*Pebble, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		logger.Error("pebble open failed: path=%s err=%v", dir, err)
		return nil, ierrors.StoreFailed("store.Open", dir, err)
	}
	logger.Debug("pebble state store opened: path=%s", dir)
	return &Pebble{db: db, now: time.Now}, nil
}

// SetClock replaces the time source used for expiry.
func (p *Pebble) SetClock(now func() time.Time) {
	p.now = now
}

func (p *Pebble) Get(key string, opts Options) (string, bool, error) {
	k := []byte(scopedKey(key, opts))
	v, closer, err := p.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ierrors.StoreFailed("store.Get", key, err)
	}
	r, err := decodeRecord(v)
	closer.Close()
	if err != nil {
		return "", false, ierrors.StoreFailed("store.Get", key, err)
	}

	if r.expired(p.now()) {
		if err := p.db.Delete(k, pebble.Sync); err != nil {
			logger.Warn("failed to drop expired key %s: %v", key, err)
		}
		return "", false, nil
	}
	return r.Value, true, nil
}

func (p *Pebble) Set(key, value string, opts Options) error {
	data, err := newRecord(value, opts, p.now()).encode()
	if err != nil {
		return ierrors.StoreFailed("store.Set", key, err)
	}
	if err := p.db.Set([]byte(scopedKey(key, opts)), data, pebble.Sync); err != nil {
		return ierrors.StoreFailed("store.Set", key, err)
	}
	return nil
}

func (p *Pebble) Delete(key string, opts Options) error {
	if err := p.db.Delete([]byte(scopedKey(key, opts)), pebble.Sync); err != nil {
		return ierrors.StoreFailed("store.Delete", key, err)
	}
	return nil
}

func (p *Pebble) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
