// Package overrides manages per-feature tri-state flags that let the user
// force an agent capability on or off, or inherit the agent's default.
package overrides

import (
	"fmt"
	"strings"

	"github.com/Elun4705/Interactive/internal/store"
)

// KeyPrefix prefixes the persisted key of every override flag.
const KeyPrefix = "interactive-"

// State is the tri-state value of an override flag.
type State int

const (
	Default State = iota // No explicit value; the agent decides
	Allowed              // Explicitly enabled
	Never                // Explicitly disabled
)

func (s State) String() string {
	switch s {
	case Allowed:
		return "allow"
	case Never:
		return "never"
	default:
		return "default"
	}
}

// ParseState parses the CLI spelling of a state.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "unset", "":
		return Default, nil
	case "allow", "allowed", "true", "on":
		return Allowed, nil
	case "never", "false", "off":
		return Never, nil
	}
	return Default, fmt.Errorf("unknown override state %q (want default, allow or never)", s)
}

// Feature is a capability that can be overridden.
type Feature struct {
	Name  string // Persisted name, e.g. "tts"
	Label string // Human readable label
}

// Known lists the overridable features in display order.
var Known = []Feature{
	{Name: "tts", Label: "Text-to-Speech"},
	{Name: "websearch", Label: "Websearch"},
	{Name: "create-image", Label: "Generate an Image"},
	{Name: "analyze-user-input", Label: "Analyze"},
}

// Lookup returns the known feature with the given name.
func Lookup(name string) (Feature, bool) {
	for _, f := range Known {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Parse selects the known features named in a comma separated list. The
// result keeps the order of Known, not of the list; unknown names are ignored.
func Parse(list string) []Feature {
	wanted := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}

	var out []Feature
	for _, f := range Known {
		if wanted[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

// Key returns the persisted key for a feature name.
func Key(feature string) string {
	return KeyPrefix + feature
}

// Load reads the current state of a feature from s.
func Load(s store.Store, scope, feature string) (State, error) {
	v, ok, err := s.Get(Key(feature), store.Options{Scope: scope})
	if err != nil {
		return Default, err
	}
	if !ok {
		return Default, nil
	}
	if v == "false" {
		return Never, nil
	}
	return Allowed, nil
}

// Save persists state for a feature. Default removes the key entirely.
func Save(s store.Store, scope, feature string, state State) error {
	switch state {
	case Allowed:
		return s.Set(Key(feature), "true", store.Options{Scope: scope, MaxAge: store.Forever})
	case Never:
		return s.Set(Key(feature), "false", store.Options{Scope: scope, MaxAge: store.Forever})
	default:
		return s.Delete(Key(feature), store.Options{Scope: scope})
	}
}
