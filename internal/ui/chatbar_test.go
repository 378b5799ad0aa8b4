package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/upload"
)

func defaultChatBarOptions() ChatBarOptions {
	return ChatBarOptions{
		ClearOnSend:   true,
		BlurOnSend:    true,
		MaxInputLines: 4,
		UploadEnabled: true,
	}
}

func testChatBar(opts ChatBarOptions) *ChatBar {
	c := NewChatBar(opts)
	c.SetWidth(40)
	return c
}

func typeInto(c *ChatBar, text string) {
	for _, r := range text {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func pressKey(c *ChatBar, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := c.Update(msg)
	return cmd
}

var (
	enterKey      = tea.KeyPressMsg{Code: tea.KeyEnter}
	shiftEnterKey = tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	escKey        = tea.KeyPressMsg{Code: tea.KeyEscape}
	ctrlSKey      = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	spaceKey      = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

// sendMsgFrom runs cmd and returns the SendMsg it produced
func sendMsgFrom(t *testing.T, cmd tea.Cmd) SendMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a send command")
	}
	msg, ok := cmd().(SendMsg)
	if !ok {
		t.Fatalf("Expected SendMsg, got %T", cmd())
	}
	return msg
}

func TestChatBar_StartsInactive(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	if c.IsActive() {
		t.Error("New chat bar should be inactive")
	}
	if c.CanSend() {
		t.Error("Empty chat bar should not be able to send")
	}

	// Keys are ignored while inactive
	typeInto(c, "hi")
	if c.Draft() != "" {
		t.Errorf("Inactive bar should ignore typing, got %q", c.Draft())
	}
}

func TestChatBar_ActivateAndType(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	typeInto(c, "hello")

	if c.Draft() != "hello" {
		t.Errorf("Expected draft 'hello', got %q", c.Draft())
	}
	if !c.CanSend() {
		t.Error("Expected CanSend with text")
	}
}

func TestChatBar_CanSend(t *testing.T) {
	tests := []struct {
		name     string
		draft    string
		upload   bool
		disabled bool
		want     bool
	}{
		{"empty", "", false, false, false},
		{"whitespace only", "  \n\t", false, false, false},
		{"text", "hi", false, false, true},
		{"upload only", "", true, false, true},
		{"whitespace with upload", "   ", true, false, true},
		{"disabled with text", "hi", false, true, false},
		{"disabled with upload", "", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testChatBar(defaultChatBarOptions())
			c.SetDraft(tt.draft)
			if tt.upload {
				c.AddUpload(upload.File{Name: "a.txt", DataURL: "data:text/plain;base64,aGk="})
			}
			c.SetDisabled(tt.disabled)
			if got := c.CanSend(); got != tt.want {
				t.Errorf("CanSend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChatBar_EnterSendsText(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	typeInto(c, "hello there")

	msg := sendMsgFrom(t, pressKey(c, enterKey))
	if msg.Text != "hello there" {
		t.Errorf("Expected sent text 'hello there', got %q", msg.Text)
	}
	if len(msg.Files) != 0 {
		t.Errorf("Expected no files, got %v", msg.Files)
	}

	// ClearOnSend and BlurOnSend
	if c.Draft() != "" {
		t.Errorf("Expected draft cleared, got %q", c.Draft())
	}
	if c.IsActive() {
		t.Error("Expected bar to blur after send")
	}
	if c.InputHeight() != MinInputLines {
		t.Errorf("Expected height reset to %d, got %d", MinInputLines, c.InputHeight())
	}
}

func TestChatBar_EnterWithOnlyFilesInsertsNewline(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.AddUpload(upload.File{Name: "a.txt", DataURL: "data:text/plain;base64,aGk="})

	if cmd := pressKey(c, enterKey); cmd != nil {
		if _, ok := cmd().(SendMsg); ok {
			t.Fatal("Enter with only files should not send")
		}
	}
	if c.Draft() != "\n" {
		t.Errorf("Expected newline in draft, got %q", c.Draft())
	}
	if c.Uploads().Len() != 1 {
		t.Error("Upload should remain pending")
	}
}

func TestChatBar_CtrlSSendsFiles(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.AddUpload(upload.File{Name: "a.txt", DataURL: "data:text/plain;base64,aGk="})
	c.AddUpload(upload.File{Name: "b.png", DataURL: "data:image/png;base64,AAAA"})

	msg := sendMsgFrom(t, pressKey(c, ctrlSKey))
	if len(msg.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(msg.Files))
	}
	if msg.Files["b.png"] != "data:image/png;base64,AAAA" {
		t.Errorf("Unexpected data URL for b.png: %q", msg.Files["b.png"])
	}
	if c.Uploads().Len() != 0 {
		t.Error("Expected uploads cleared after send")
	}
}

func TestChatBar_ShiftEnterInsertsNewline(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	typeInto(c, "one")

	if cmd := pressKey(c, shiftEnterKey); cmd != nil {
		if _, ok := cmd().(SendMsg); ok {
			t.Fatal("shift+enter should not send")
		}
	}
	typeInto(c, "two")

	if c.Draft() != "one\ntwo" {
		t.Errorf("Expected two-line draft, got %q", c.Draft())
	}
}

func TestChatBar_DisabledEnterDoesNothing(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	typeInto(c, "wait")
	c.SetDisabled(true)

	if cmd := pressKey(c, enterKey); cmd != nil {
		t.Error("Disabled bar should not send")
	}
	if c.Draft() != "wait" {
		t.Errorf("Draft should be untouched, got %q", c.Draft())
	}
}

func TestChatBar_SendWithoutClearOrBlur(t *testing.T) {
	opts := defaultChatBarOptions()
	opts.ClearOnSend = false
	opts.BlurOnSend = false
	c := testChatBar(opts)
	c.Activate()
	typeInto(c, "keep me")

	sendMsgFrom(t, pressKey(c, enterKey))
	if c.Draft() != "keep me" {
		t.Errorf("Expected draft kept, got %q", c.Draft())
	}
	if !c.IsActive() {
		t.Error("Expected bar to stay active")
	}
}

func TestChatBar_BlurOnSendClearsDraft(t *testing.T) {
	opts := defaultChatBarOptions()
	opts.ClearOnSend = false
	opts.BlurOnSend = true
	opts.MaxInputLines = 5
	c := testChatBar(opts)
	c.Activate()
	c.SetDraft("hello\nsecond\nthird")
	if c.InputHeight() != 3 {
		t.Fatalf("Expected draft to grow to 3 lines, got %d", c.InputHeight())
	}

	msg := sendMsgFrom(t, c.Send())
	if msg.Text != "hello\nsecond\nthird" {
		t.Errorf("Expected captured draft to be sent, got %q", msg.Text)
	}
	if c.IsActive() {
		t.Error("Expected bar to be inactive after blur")
	}
	if c.Draft() != "" {
		t.Errorf("Blur should clear the draft, got %q", c.Draft())
	}
	if c.InputHeight() != MinInputLines {
		t.Errorf("Expected height reset to %d, got %d", MinInputLines, c.InputHeight())
	}
}

func TestChatBar_BlurOnSendKeepsUploads(t *testing.T) {
	opts := defaultChatBarOptions()
	opts.ClearOnSend = false
	opts.BlurOnSend = true
	c := testChatBar(opts)
	c.Activate()
	c.AddUpload(upload.File{Name: "a.txt", DataURL: "data:text/plain;base64,YQ=="})
	typeInto(c, "hello")

	sendMsgFrom(t, pressKey(c, enterKey))
	if c.Draft() != "" {
		t.Errorf("Blur should clear the draft, got %q", c.Draft())
	}
	if c.Uploads().Len() != 1 {
		t.Errorf("Uploads are only cleared by clear on send, got %d", c.Uploads().Len())
	}
}

func TestChatBar_SendWhenNothingQualifies(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	c.SetDraft("   ")

	if cmd := c.Send(); cmd != nil {
		t.Error("Whitespace-only draft should not produce a send")
	}
	// The bar still clears and blurs
	if c.Draft() != "" || c.IsActive() {
		t.Error("Expected clear and blur even when nothing was sent")
	}
}

func TestChatBar_EscapeCollapsesKeepingDraft(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	typeInto(c, "draft")

	pressKey(c, escKey)
	if c.IsActive() {
		t.Error("Expected bar collapsed")
	}
	if c.Draft() != "draft" {
		t.Errorf("Collapse should keep the draft, got %q", c.Draft())
	}
}

func TestChatBar_BlurClearsDraft(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	c.SetDraft("a\nb\nc")
	c.Blur()

	if c.Draft() != "" {
		t.Errorf("Blur should clear the draft, got %q", c.Draft())
	}
	if c.InputHeight() != MinInputLines {
		t.Errorf("Expected height %d after blur, got %d", MinInputLines, c.InputHeight())
	}
}

func TestChatBar_AutoSize(t *testing.T) {
	c := testChatBar(defaultChatBarOptions()) // MaxInputLines 4
	c.Activate()

	c.SetDraft("one")
	if c.InputHeight() != 1 {
		t.Errorf("Expected height 1, got %d", c.InputHeight())
	}

	c.SetDraft("one\ntwo\nthree")
	if c.InputHeight() != 3 {
		t.Errorf("Expected height 3, got %d", c.InputHeight())
	}

	c.SetDraft(strings.Repeat("line\n", 10) + "end")
	if c.InputHeight() != 4 {
		t.Errorf("Expected height clamped to 4, got %d", c.InputHeight())
	}
	if !strings.HasSuffix(c.Draft(), "end") {
		t.Error("Content beyond the visible height must be kept")
	}

	// Shrinks again
	c.SetDraft("short")
	if c.InputHeight() != 1 {
		t.Errorf("Expected height back to 1, got %d", c.InputHeight())
	}
}

func TestChatBar_AutoSizeCountsWrappedLines(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()

	width := c.input.Width()
	c.SetDraft(strings.Repeat("x", width*2+1))
	if c.InputHeight() != 3 {
		t.Errorf("Expected 3 visual lines for a long line, got %d", c.InputHeight())
	}
}

func TestChatBar_InactiveHeightIsOneLine(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	c.SetDraft("a\nb\nc")
	c.Collapse()

	if c.InputHeight() != MinInputLines {
		t.Errorf("Collapsed bar should be one line, got %d", c.InputHeight())
	}
}

func TestChatBar_AddUploadActivates(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.AddUpload(upload.File{Name: "notes.md", DataURL: "data:text/markdown;base64,"})

	if !c.IsActive() {
		t.Error("Upload arrival should activate the bar")
	}
	if !c.Uploads().Has("notes.md") {
		t.Error("Expected upload recorded")
	}

	c.RemoveUpload("notes.md")
	if c.Uploads().Len() != 0 {
		t.Error("Expected upload removed")
	}
}

func TestChatBar_PasteOfFilePathsIsDrop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drop me.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testChatBar(defaultChatBarOptions())
	_, cmd := c.Update(tea.PasteMsg{Content: "'" + path + "'"})
	if cmd == nil {
		t.Fatal("Expected drop command")
	}
	drop, ok := cmd().(DropMsg)
	if !ok {
		t.Fatalf("Expected DropMsg, got %T", cmd())
	}
	if len(drop.Paths) != 1 || drop.Paths[0] != path {
		t.Errorf("Unexpected dropped paths %v", drop.Paths)
	}
}

func TestChatBar_PasteOfTextIsText(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.Activate()
	c.Update(tea.PasteMsg{Content: "just some words"})

	if c.Draft() != "just some words" {
		t.Errorf("Expected pasted text in draft, got %q", c.Draft())
	}
}

func TestChatBar_PasteDropDisabledWithoutUploads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := defaultChatBarOptions()
	opts.UploadEnabled = false
	c := testChatBar(opts)
	c.Activate()
	c.Update(tea.PasteMsg{Content: path})

	if c.Draft() != path {
		t.Errorf("Expected path pasted as text, got %q", c.Draft())
	}
}

func TestChatBar_ChildMode(t *testing.T) {
	opts := defaultChatBarOptions()
	opts.ChildMode = true
	c := testChatBar(opts)

	view := stripANSI(c.View())
	if !strings.Contains(view, ChildModePrompt) {
		t.Errorf("Expected child prompt, got %q", view)
	}

	for _, k := range []tea.KeyPressMsg{spaceKey, enterKey} {
		cmd := pressKey(c, k)
		if cmd == nil {
			t.Fatalf("Expected record command for %q", k.String())
		}
		if _, ok := cmd().(RecordMsg); !ok {
			t.Errorf("Expected RecordMsg for %q", k.String())
		}
	}

	if cmd := pressKey(c, tea.KeyPressMsg{Code: 'a', Text: "a"}); cmd != nil {
		t.Error("Other keys should do nothing in child mode")
	}
}

func TestChatBar_ViewShowsBadgesAndCounter(t *testing.T) {
	c := testChatBar(defaultChatBarOptions())
	c.AddUpload(upload.File{Name: "a-very-long-file-name-that-needs-truncating.pdf", DataURL: "data:application/pdf;base64,"})
	typeInto(c, "héllo")

	view := stripANSI(c.View())
	if !strings.Contains(view, "…") {
		t.Errorf("Expected truncated badge, got %q", view)
	}
	if !strings.Contains(view, "5") {
		t.Errorf("Expected grapheme counter of 5, got %q", view)
	}
	if got, want := len(strings.Split(c.View(), "\n")), c.Height(); got != want {
		t.Errorf("Rendered %d lines, Height() reports %d", got, want)
	}
}

func TestChatBar_InactivePlaceholder(t *testing.T) {
	opts := defaultChatBarOptions()
	opts.VoiceEnabled = true
	c := testChatBar(opts)

	view := stripANSI(c.View())
	if !strings.Contains(view, "Press i to type") {
		t.Errorf("Expected activation hint, got %q", view)
	}
	if !strings.Contains(view, "ctrl+r") {
		t.Errorf("Expected voice hint, got %q", view)
	}
}
