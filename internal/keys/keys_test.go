package keys

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// TestKeyStringValues pins the string form of every constant in case
// Bubble Tea changes its key formatting.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		// Editing
		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"AltEnter", AltEnter, "alt+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Delete", Delete, "delete"},
		{"Escape", Escape, "esc"},

		// Ctrl combos
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlF", CtrlF, "ctrl+f"},
		{"CtrlK", CtrlK, "ctrl+k"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlN", CtrlN, "ctrl+n"},
		{"CtrlO", CtrlO, "ctrl+o"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlS", CtrlS, "ctrl+s"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlV", CtrlV, "ctrl+v"},
		{"CtrlX", CtrlX, "ctrl+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

// TestBindingsAreDistinct guards against two app actions sharing a key.
func TestBindingsAreDistinct(t *testing.T) {
	bindings := map[string]string{
		"Quit":            Quit,
		"Send":            Send,
		"Record":          Record,
		"Commands":        Commands,
		"Attach":          Attach,
		"PasteImage":      PasteImage,
		"Search":          Search,
		"NewConversation": NewConversation,
		"ImportFile":      ImportFile,
		"ResetChat":       ResetChat,
		"Overrides":       Overrides,
		"ToggleSidebar":   ToggleSidebar,
	}
	seen := make(map[string]string)
	for name, key := range bindings {
		if other, ok := seen[key]; ok {
			t.Errorf("%s and %s are both bound to %q", name, other, key)
		}
		seen[key] = name
	}
}

func TestTypedCharacterString(t *testing.T) {
	// Typed characters stringify to their text, space excepted
	if got := (tea.KeyPressMsg{Code: 'i', Text: "i"}).String(); got != "i" {
		t.Errorf("Expected %q, got %q", "i", got)
	}
	if got := (tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}).String(); got != Space {
		t.Errorf("Expected %q, got %q", Space, got)
	}
}
