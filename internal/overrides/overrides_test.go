package overrides

import (
	"errors"
	"testing"

	"github.com/Elun4705/Interactive/internal/store"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"empty", "", nil},
		{"single", "tts", []string{"tts"}},
		{"known order wins", "websearch, tts", []string{"tts", "websearch"}},
		{"unknown ignored", "tts,teleport", []string{"tts"}},
		{"all", "analyze-user-input,create-image,websearch,tts", []string{"tts", "websearch", "create-image", "analyze-user-input"}},
		{"duplicates", "tts,tts", []string{"tts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.list)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.list, got, tt.want)
			}
			for i, f := range got {
				if f.Name != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %q, want %q", tt.list, i, f.Name, tt.want[i])
				}
			}
		})
	}
}

func TestLookupLabels(t *testing.T) {
	want := map[string]string{
		"tts":                "Text-to-Speech",
		"websearch":          "Websearch",
		"create-image":       "Generate an Image",
		"analyze-user-input": "Analyze",
	}
	for name, label := range want {
		f, ok := Lookup(name)
		if !ok || f.Label != label {
			t.Errorf("Lookup(%q) = %+v, %v; want label %q", name, f, ok, label)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unknown feature should fail")
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr bool
	}{
		{"default", Default, false},
		{"allow", Allowed, false},
		{"ALLOWED", Allowed, false},
		{"never", Never, false},
		{"off", Never, false},
		{"maybe", Default, true},
	}
	for _, tt := range tests {
		got, err := ParseState(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseState(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestLoad_StoredValues(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   State
	}{
		{"absent", nil, Default},
		{"false", ptr("false"), Never},
		{"true", ptr("true"), Allowed},
		{"anything else reads as allowed", ptr("yes"), Allowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemory()
			if tt.stored != nil {
				s.Set(Key("tts"), *tt.stored, store.Options{})
			}
			got, err := Load(s, "", "tts")
			if err != nil || got != tt.want {
				t.Errorf("Load() = %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestSwitch_ToggleThreeTimesRestoresDefault(t *testing.T) {
	s := store.NewMemory()
	f, _ := Lookup("websearch")
	sw, err := NewSwitch(s, "example.com", f)
	if err != nil {
		t.Fatal(err)
	}

	// Untick "use default": explicit never
	if err := sw.ToggleDefault(); err != nil {
		t.Fatal(err)
	}
	assertStored(t, s, "example.com", "false")

	// Flip the switch: explicit allow
	if err := sw.Flip(); err != nil {
		t.Fatal(err)
	}
	assertStored(t, s, "example.com", "true")

	// Tick "use default" again: key removed
	if err := sw.ToggleDefault(); err != nil {
		t.Fatal(err)
	}
	if sw.State() != Default || !sw.UsesDefault() {
		t.Errorf("State() = %v, want default", sw.State())
	}
	if s.Len() != 0 {
		t.Errorf("store has %d entries, want key removed", s.Len())
	}
}

func TestSwitch_FlipWhileDefaultIsNoop(t *testing.T) {
	s := store.NewMemory()
	sw, _ := NewSwitch(s, "", Known[0])

	if err := sw.Flip(); err != nil {
		t.Fatal(err)
	}
	if sw.State() != Default || s.Len() != 0 {
		t.Error("Flip should do nothing while the default is in use")
	}
}

func TestSwitch_PersistsWithForeverExpiry(t *testing.T) {
	s := store.NewMemory()
	sw, _ := NewSwitch(s, "", Known[0])
	if err := sw.Set(Allowed); err != nil {
		t.Fatal(err)
	}

	// A reload sees the same value
	again, err := NewSwitch(s, "", Known[0])
	if err != nil || again.State() != Allowed {
		t.Errorf("reloaded state = %v, %v; want allow", again.State(), err)
	}
}

type failingStore struct{ store.Store }

func (failingStore) Set(string, string, store.Options) error { return errors.New("disk full") }
func (failingStore) Delete(string, store.Options) error      { return errors.New("disk full") }

func TestSwitch_StoreErrorKeepsState(t *testing.T) {
	sw, _ := NewSwitch(store.NewMemory(), "", Known[0])
	sw.state = failingStore{store.NewMemory()}

	if err := sw.ToggleDefault(); err == nil {
		t.Fatal("expected error from failing store")
	}
	if sw.State() != Default {
		t.Errorf("State() = %v, want unchanged default", sw.State())
	}
}

func assertStored(t *testing.T, s store.Store, scope, want string) {
	t.Helper()
	v, ok, err := s.Get(Key("websearch"), store.Options{Scope: scope})
	if err != nil || !ok || v != want {
		t.Errorf("stored = %q, %v, %v; want %q", v, ok, err, want)
	}
}

func ptr(s string) *string { return &s }
