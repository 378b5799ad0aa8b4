package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// handleOverridesModal handles key events for the Feature Overrides modal.
// Changes are persisted by the switches themselves as they are made.
func (m *Model) handleOverridesModal(key string, msg tea.KeyPressMsg, _ *modals.OverridesState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, keys.Enter, "q":
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleCommandMenuModal handles key events for the Command Menu modal.
func (m *Model) handleCommandMenuModal(key string, msg tea.KeyPressMsg, state *modals.CommandMenuState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		item := state.GetSelected()
		if item == nil {
			return m, nil
		}
		m.modal.Hide()
		return m.runCommand(item.ID)
	}
	return m.forwardToModal(msg)
}
