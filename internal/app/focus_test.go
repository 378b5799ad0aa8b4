package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/config"
	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/session"
	"github.com/Elun4705/Interactive/internal/ui"
)

func TestCycleFocus_Wide(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	want := []Focus{FocusChat, FocusSidebar, FocusTranscript, FocusChat}
	for i, f := range want {
		sendKey(m, keys.Tab)
		if m.focus != f {
			t.Fatalf("after %d tabs focus = %d, want %d", i+1, m.focus, f)
		}
	}
}

func TestCycleFocus_Backwards(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	sendKey(m, keys.ShiftTab)
	if m.focus != FocusSidebar {
		t.Errorf("focus = %d, want FocusSidebar", m.focus)
	}
	if !m.sidebar.IsFocused() {
		t.Error("sidebar should report focus")
	}
}

func TestCycleFocus_NarrowSkipsSidebar(t *testing.T) {
	m := testModelWithSize(t, testConfig(), NarrowWidth-1, 40)

	for i := 0; i < 4; i++ {
		sendKey(m, keys.Tab)
		if m.focus == FocusSidebar {
			t.Fatal("hidden sidebar must not take focus")
		}
	}
}

func TestChildMode_HidesSidebar(t *testing.T) {
	cfg := testConfig()
	cfg.RoleID = config.ChildRoleID
	m := testModelWithSize(t, cfg, 120, 40)

	if m.sidebarVisible() {
		t.Error("sidebar should be hidden in child mode")
	}
	if cmd := m.setFocus(FocusSidebar); cmd != nil || m.focus != FocusTranscript {
		t.Errorf("focus = %d, want FocusTranscript", m.focus)
	}
}

func TestChildMode_SpaceRecords(t *testing.T) {
	cfg := testConfig()
	cfg.RoleID = config.ChildRoleID
	m := testModelWithSize(t, cfg, 120, 40)

	cmd := sendKey(m, keys.Space)
	if _, ok := findMsg[ui.RecordMsg](collect(cmd)); !ok {
		t.Error("space should start talking in child mode")
	}
}

func TestToggleSidebar(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m.setFocus(FocusSidebar)

	sendKey(m, keys.ToggleSidebar)
	if m.sidebarVisible() {
		t.Fatal("sidebar should be hidden after ctrl+b")
	}
	if m.focus != FocusTranscript {
		t.Errorf("focus = %d, want FocusTranscript", m.focus)
	}

	sendKey(m, keys.ToggleSidebar)
	if !m.sidebarVisible() {
		t.Error("sidebar should be visible again")
	}
}

func TestEscape_CollapsesChatBar(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	sendKey(m, "i")
	typeText(m, "draft")
	sendKey(m, keys.Escape)

	if m.chatbar.IsActive() {
		t.Error("chat bar should collapse on esc")
	}
	if m.focus != FocusTranscript {
		t.Errorf("focus = %d, want FocusTranscript", m.focus)
	}
	if m.chatbar.Draft() != "draft" {
		t.Errorf("draft = %q, want it kept", m.chatbar.Draft())
	}
}

func TestTyping_LettersAreText(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	sendKey(m, "i")
	typeText(m, "q?d")

	if m.chatbar.Draft() != "q?d" {
		t.Errorf("draft = %q, want q?d", m.chatbar.Draft())
	}
	if m.modal.IsVisible() {
		t.Error("typing ? must not open help")
	}
}

func TestSidebarEnter_OpensConversation(t *testing.T) {
	svc := testServices(t)
	m := testModelWith(t, testConfig(), svc)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	settle(m, submit(m, "hello"))
	id := m.identity.Conversation()
	settle(m, m.newConversation())
	if m.identity.Conversation() != session.NoConversation {
		t.Fatal("expected the placeholder after starting a new conversation")
	}

	m.setFocus(FocusSidebar)
	sendKey(m, keys.Down)
	if got := m.sidebar.SelectedID(); got != id {
		t.Fatalf("selected = %q, want %q", got, id)
	}
	settle(m, sendKey(m, keys.Enter))

	if m.identity.Conversation() != id {
		t.Errorf("active = %q, want %q", m.identity.Conversation(), id)
	}
	if len(m.transcript.Messages()) != 2 {
		t.Errorf("transcript has %d messages, want 2", len(m.transcript.Messages()))
	}
	if m.focus != FocusTranscript {
		t.Errorf("focus = %d, want FocusTranscript", m.focus)
	}
}
