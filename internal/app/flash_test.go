package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/ui"
)

func TestSaveConfigOrFlash_Success(t *testing.T) {
	cfg := testConfig()
	// Use a temp file so Save() succeeds
	cfg.SetFilePath(filepath.Join(t.TempDir(), "config.yaml"))
	m := testModelWithSize(t, cfg, 120, 40)

	cmd := m.saveConfigOrFlash()
	if cmd != nil {
		t.Error("expected nil cmd on successful save, got non-nil")
	}
	if m.footer.HasFlash() {
		t.Errorf("unexpected flash %q", m.footer.Flash().Text)
	}
}

func TestSaveConfigOrFlash_Error(t *testing.T) {
	cfg := testConfig()
	// A regular file where the config directory should be makes Save fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg.SetFilePath(filepath.Join(blocker, "config.yaml"))
	m := testModelWithSize(t, cfg, 120, 40)

	cmd := m.saveConfigOrFlash()
	if cmd == nil {
		t.Error("expected non-nil cmd on failed save, got nil")
	}
	flash := m.footer.Flash()
	if flash == nil || flash.Type != ui.FlashError {
		t.Fatalf("expected error flash, got %+v", flash)
	}
}

func TestShowFlash_Types(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	tests := []struct {
		show func(string) tea.Cmd
		want ui.FlashType
	}{
		{m.ShowFlashInfo, ui.FlashInfo},
		{m.ShowFlashSuccess, ui.FlashSuccess},
		{m.ShowFlashWarning, ui.FlashWarning},
		{m.ShowFlashError, ui.FlashError},
	}
	for _, tt := range tests {
		if cmd := tt.show("hello"); cmd == nil {
			t.Error("expected a tick command")
		}
		flash := m.footer.Flash()
		if flash == nil {
			t.Fatal("expected a flash")
		}
		if flash.Text != "hello" || flash.Type != tt.want {
			t.Errorf("flash = %+v, want type %d", flash, tt.want)
		}
	}
}

func TestHandleFlashTick_StopsWhenCleared(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)

	if cmd := m.handleFlashTick(); cmd != nil {
		t.Error("expected no tick without a flash")
	}

	m.ShowFlashInfo("still here")
	if cmd := m.handleFlashTick(); cmd == nil {
		t.Error("expected another tick while the flash is showing")
	}

	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, -1)
	if cmd := m.handleFlashTick(); cmd != nil {
		t.Error("expected no tick after the flash expired")
	}
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
}
