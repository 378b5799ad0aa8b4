package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			key := shortcut.Key
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	return m.forwardToModal(msg)
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	for _, s := range DisplayOnlyShortcuts {
		if s.DisplayKey == displayKey {
			return ""
		}
	}
	return strings.ToLower(displayKey)
}

// handleSearchMessagesModal handles key events for the Search Messages modal.
func (m *Model) handleSearchMessagesModal(key string, msg tea.KeyPressMsg, state *modals.SearchMessagesState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		result := state.GetSelectedResult()
		if result == nil {
			return m, nil
		}
		m.modal.Hide()
		logger.Debug("App: jumping to message %d", result.MessageIndex+1)
		m.transcript.ScrollToMessage(result.MessageIndex)
		return m, m.setFocus(FocusTranscript)
	}
	// Forward other keys to the modal for text input and navigation
	return m.forwardToModal(msg)
}
