package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/ui"
)

// ShowFlash displays a toast in the footer and returns the command that
// starts its auto-dismiss tick
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error toast
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning toast
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info toast
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success toast
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// handleFlashTick clears an expired toast and keeps ticking while one shows
func (m *Model) handleFlashTick() tea.Cmd {
	m.footer.ClearIfExpired()
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}
