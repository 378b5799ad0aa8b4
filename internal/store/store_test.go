package store

import (
	"os"
	"testing"
	"time"

	"github.com/Elun4705/Interactive/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

// backends returns each Store implementation with a controllable clock.
func backends(t *testing.T) map[string]func() (Store, *clock) {
	t.Helper()
	return map[string]func() (Store, *clock){
		"memory": func() (Store, *clock) {
			c := &clock{t: time.Unix(1_700_000_000, 0)}
			m := NewMemory()
			m.SetClock(c.now)
			return m, c
		},
		"pebble": func() (Store, *clock) {
			c := &clock{t: time.Unix(1_700_000_000, 0)}
			p, err := OpenMemPebble()
			if err != nil {
				t.Fatalf("OpenMemPebble() error = %v", err)
			}
			p.SetClock(c.now)
			t.Cleanup(func() { p.Close() })
			return p, c
		},
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s, _ := open()

			if _, ok, err := s.Get("interactive-tts", Options{}); err != nil || ok {
				t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
			}

			if err := s.Set("interactive-tts", "false", Options{MaxAge: Forever}); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			v, ok, err := s.Get("interactive-tts", Options{})
			if err != nil || !ok || v != "false" {
				t.Fatalf("Get() = %q, %v, %v; want \"false\", true, nil", v, ok, err)
			}

			if err := s.Set("interactive-tts", "true", Options{MaxAge: Forever}); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if v, _, _ := s.Get("interactive-tts", Options{}); v != "true" {
				t.Errorf("Get() after overwrite = %q, want \"true\"", v)
			}

			if err := s.Delete("interactive-tts", Options{}); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, ok, _ := s.Get("interactive-tts", Options{}); ok {
				t.Error("key should be absent after Delete")
			}

			// Deleting an absent key is not an error
			if err := s.Delete("never-set", Options{}); err != nil {
				t.Errorf("Delete() of absent key error = %v", err)
			}
		})
	}
}

func TestStore_Expiry(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s, c := open()

			if err := s.Set("conversation", "abc", Options{MaxAge: time.Minute}); err != nil {
				t.Fatal(err)
			}
			c.t = c.t.Add(59 * time.Second)
			if _, ok, _ := s.Get("conversation", Options{}); !ok {
				t.Error("value should be present before expiry")
			}

			c.t = c.t.Add(time.Second)
			if _, ok, _ := s.Get("conversation", Options{}); ok {
				t.Error("expired value should read as absent")
			}
		})
	}
}

func TestStore_ForeverOutlivesYears(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s, c := open()

			if err := s.Set("uuid", "u-1", Options{MaxAge: Forever}); err != nil {
				t.Fatal(err)
			}
			c.t = c.t.AddDate(30, 0, 0)
			if v, ok, _ := s.Get("uuid", Options{}); !ok || v != "u-1" {
				t.Errorf("Get() = %q, %v; want value kept", v, ok)
			}
		})
	}
}

func TestStore_ScopeIsolation(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s, _ := open()
			a := Options{Scope: "a.example.com"}
			b := Options{Scope: "b.example.com"}

			if err := s.Set("agent", "planner", a); err != nil {
				t.Fatal(err)
			}
			if _, ok, _ := s.Get("agent", b); ok {
				t.Error("value leaked across scopes")
			}
			if err := s.Delete("agent", b); err != nil {
				t.Fatal(err)
			}
			if v, ok, _ := s.Get("agent", a); !ok || v != "planner" {
				t.Error("delete in one scope removed value in another")
			}
		})
	}
}

func TestMemory_DropsExpiredOnRead(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	m := NewMemory()
	m.SetClock(c.now)

	m.Set("k", "v", Options{MaxAge: time.Second})
	c.t = c.t.Add(2 * time.Second)
	m.Get("k", Options{})

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after reading an expired key", m.Len())
	}
}

func TestPebble_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	p, err := OpenPebble(dir)
	if err != nil {
		t.Fatalf("OpenPebble() error = %v", err)
	}
	if err := p.Set("interactive-websearch", "true", Options{MaxAge: Forever}); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	p, err = OpenPebble(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer p.Close()

	if v, ok, _ := p.Get("interactive-websearch", Options{}); !ok || v != "true" {
		t.Errorf("Get() after reopen = %q, %v", v, ok)
	}
}

func TestPebble_CloseTwice(t *testing.T) {
	p, err := OpenMemPebble()
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
