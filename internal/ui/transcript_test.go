package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/conversation"
)

func TestTranscript_Empty(t *testing.T) {
	tr := NewTranscript("Assistant")
	tr.SetSize(60, 20)

	view := stripANSI(tr.View())
	if !strings.Contains(view, "No messages yet") {
		t.Errorf("Expected empty state, got %q", view)
	}
}

func TestTranscript_RendersRoles(t *testing.T) {
	tr := NewTranscript("Tutor")
	tr.SetSize(60, 20)
	tr.SetMessages([]conversation.Message{
		{Role: "user", Message: "What is **Go**?"},
		{Role: "assistant", Message: "A **language**."},
	})

	view := stripANSI(tr.View())
	for _, want := range []string{"You", "What is **Go**?", "Tutor", "A language."} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected transcript to contain %q, got %q", want, view)
		}
	}
}

func TestTranscript_Pending(t *testing.T) {
	tr := NewTranscript("Assistant")
	tr.SetSize(60, 20)
	tr.SetPending("on its way")

	if view := stripANSI(tr.View()); !strings.Contains(view, "on its way") {
		t.Errorf("Expected pending text, got %q", view)
	}

	tr.Clear()
	if view := stripANSI(tr.View()); strings.Contains(view, "on its way") {
		t.Error("Clear should drop pending text")
	}
}

func TestTranscript_ScrollToMessage(t *testing.T) {
	tr := NewTranscript("Assistant")
	tr.SetSize(60, 8)

	var msgs []conversation.Message
	for i := 0; i < 20; i++ {
		msgs = append(msgs, conversation.Message{Role: "user", Message: fmt.Sprintf("message %d", i)})
	}
	tr.SetMessages(msgs)

	tr.ScrollToMessage(0)
	if tr.ScrollOffset() != 0 {
		t.Errorf("Expected offset 0, got %d", tr.ScrollOffset())
	}

	tr.ScrollToMessage(3)
	// Each message is a label line, a body line and a blank separator
	if tr.ScrollOffset() != 9 {
		t.Errorf("Expected offset 9, got %d", tr.ScrollOffset())
	}

	// Out of range is ignored
	tr.ScrollToMessage(99)
	if tr.ScrollOffset() != 9 {
		t.Errorf("Expected offset unchanged, got %d", tr.ScrollOffset())
	}
}

func TestTranscript_KeysOnlyWhenFocused(t *testing.T) {
	tr := NewTranscript("Assistant")
	tr.SetSize(60, 8)
	var msgs []conversation.Message
	for i := 0; i < 20; i++ {
		msgs = append(msgs, conversation.Message{Role: "user", Message: "line"})
	}
	tr.SetMessages(msgs)
	bottom := tr.ScrollOffset()

	tr.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if tr.ScrollOffset() != bottom {
		t.Error("Unfocused transcript should ignore keys")
	}

	tr.SetFocused(true)
	tr.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if tr.ScrollOffset() >= bottom {
		t.Error("Focused transcript should scroll up on pgup")
	}
}

func TestTranscript_ShowsTimer(t *testing.T) {
	clock := newFakeClock()
	tr := NewTranscript("Assistant")
	tr.SetSize(60, 10)
	tr.Timer().SetClock(clock.Now)
	tr.Timer().Start()
	clock.Advance(1500 * time.Millisecond)
	tr.Timer().Stop()

	if view := stripANSI(tr.View()); !strings.Contains(view, "1.5s") {
		t.Errorf("Expected timer in transcript, got %q", view)
	}
}
