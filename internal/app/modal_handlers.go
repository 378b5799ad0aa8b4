package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
//
// Modal handlers are organized by domain:
//   - modal_handlers_conversation.go: import, attach, reset, delete
//   - modal_handlers_config.go: feature overrides, command menu
//   - modal_handlers_navigation.go: help, message search
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	// Conversation modals (modal_handlers_conversation.go)
	case *modals.ImportState:
		return m.handleImportModal(key, msg, s)
	case *modals.AttachState:
		return m.handleAttachModal(key, msg, s)
	case *modals.ResetState:
		return m.handleResetModal(key, msg, s)
	case *modals.DeleteConversationState:
		return m.handleDeleteConversationModal(key, msg, s)

	// Config modals (modal_handlers_config.go)
	case *modals.OverridesState:
		return m.handleOverridesModal(key, msg, s)
	case *modals.CommandMenuState:
		return m.handleCommandMenuModal(key, msg, s)

	// Navigation modals (modal_handlers_navigation.go)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.SearchMessagesState:
		return m.handleSearchMessagesModal(key, msg, s)
	}

	// Default: update modal input (for text-based modals)
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// forwardToModal passes a key to the visible modal
func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
