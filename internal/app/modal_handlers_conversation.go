package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// handleImportModal handles key events for the Import Conversation modal.
func (m *Model) handleImportModal(key string, msg tea.KeyPressMsg, state *modals.ImportState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		path := state.Path()
		if path == "" {
			m.modal.SetError("Please enter a path")
			return m, nil
		}
		m.modal.Hide()
		return m, m.importFile(path)
	}
	return m.forwardToModal(msg)
}

// handleAttachModal handles key events for the Attach File modal.
func (m *Model) handleAttachModal(key string, msg tea.KeyPressMsg, state *modals.AttachState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		paths := state.Paths()
		if len(paths) == 0 {
			m.modal.SetError("Please enter a path")
			return m, nil
		}
		m.modal.Hide()
		return m, m.readFiles(paths)
	}
	return m.forwardToModal(msg)
}

// handleResetModal handles key events for the Reset Conversation confirmation.
func (m *Model) handleResetModal(key string, msg tea.KeyPressMsg, state *modals.ResetState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Let the form settle its value before reading it
		m.forwardToModal(msg)
		m.modal.Hide()
		if !state.Confirmed() {
			logger.Debug("App: reset canceled")
			return m, nil
		}
		logger.Info("App: resetting conversation")
		return m, m.resetConversation()
	}
	return m.forwardToModal(msg)
}

// handleDeleteConversationModal handles key events for the Delete Conversation confirmation.
func (m *Model) handleDeleteConversationModal(key string, msg tea.KeyPressMsg, state *modals.DeleteConversationState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.forwardToModal(msg)
		m.modal.Hide()
		if !state.Confirmed() {
			return m, nil
		}
		logger.WithConversation(state.ConversationID).Info("deleting conversation", "name", state.Name)
		return m, m.deleteConversation(state.ConversationID)
	}
	return m.forwardToModal(msg)
}
