package modals

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testCommands() []CommandItem {
	return []CommandItem{
		{ID: "new", Label: "New Conversation", Hint: "ctrl+n"},
		{ID: "import", Label: "Import Conversation"},
		{ID: "theme-dark", Label: "Theme: Dark"},
	}
}

func TestCommandMenuState_ListsAllWithoutQuery(t *testing.T) {
	state := NewCommandMenuState(testCommands())

	out := plain(state.Render())
	for _, item := range testCommands() {
		if !strings.Contains(out, item.Label) {
			t.Errorf("Expected %q listed", item.Label)
		}
	}
	if !strings.Contains(out, "ctrl+n") {
		t.Error("Expected hint to be shown")
	}
	if got := state.GetSelected(); got == nil || got.ID != "new" {
		t.Errorf("Expected first command selected, got %+v", got)
	}
}

func TestCommandMenuState_Filter(t *testing.T) {
	state := NewCommandMenuState(testCommands())
	state.SetQuery("imp")

	if len(state.Matches) != 1 {
		t.Fatalf("Expected one match, got %d", len(state.Matches))
	}
	if got := state.GetSelected(); got == nil || got.ID != "import" {
		t.Errorf("Expected import selected, got %+v", got)
	}

	out := plain(state.Render())
	if strings.Contains(out, "New Conversation") {
		t.Error("Filtered-out command should not render")
	}
}

func TestCommandMenuState_NoMatches(t *testing.T) {
	state := NewCommandMenuState(testCommands())
	state.SetQuery("zzz")

	if state.GetSelected() != nil {
		t.Error("Expected no selection")
	}
	if !strings.Contains(plain(state.Render()), "No matching commands") {
		t.Error("Expected empty-state text")
	}
}

func TestCommandMenuState_TypingFilters(t *testing.T) {
	state := NewCommandMenuState(testCommands())
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if state.SelectedIndex != 1 {
		t.Fatalf("Expected index 1, got %d", state.SelectedIndex)
	}

	state.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if state.Input.Value() != "t" {
		t.Fatalf("Expected query %q, got %q", "t", state.Input.Value())
	}
	if state.SelectedIndex != 0 {
		t.Error("Changing the query should reset the selection")
	}

	state.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if state.Matches != nil {
		t.Error("Clearing the query should list everything")
	}
}

func TestCommandMenuState_Navigation(t *testing.T) {
	var items []CommandItem
	for i := 0; i < CommandMenuMaxVisible+5; i++ {
		items = append(items, CommandItem{ID: fmt.Sprint(i), Label: fmt.Sprintf("Command %d", i)})
	}
	state := NewCommandMenuState(items)

	for i := 0; i < CommandMenuMaxVisible+2; i++ {
		state.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	}
	if state.SelectedIndex != CommandMenuMaxVisible+2 {
		t.Errorf("Expected index %d, got %d", CommandMenuMaxVisible+2, state.SelectedIndex)
	}
	if state.ScrollOffset != 3 {
		t.Errorf("Expected scroll offset 3, got %d", state.ScrollOffset)
	}
	if !strings.Contains(plain(state.Render()), "more above") {
		t.Error("Expected scroll indicator")
	}

	for i := 0; i < 50; i++ {
		state.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if state.SelectedIndex != 0 || state.ScrollOffset != 0 {
		t.Errorf("Expected top, got index %d offset %d", state.SelectedIndex, state.ScrollOffset)
	}
}

func TestHighlight(t *testing.T) {
	if got := highlight("Theme", nil); got != "Theme" {
		t.Errorf("Expected unchanged label, got %q", got)
	}
	if got := plain(highlight("Thème", []int{0, 2})); got != "Thème" {
		t.Errorf("Expected text preserved, got %q", got)
	}
}
