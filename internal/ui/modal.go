package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// ModalState is the state of whichever modal is showing
type ModalState = modals.ModalState

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	if sized, ok := m.State.(modals.ModalWithSize); ok {
		sized.SetSize(ModalWidth, max(1, screenHeight-6))
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	style := ModalStyle
	if w, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		style = style.Width(w.PreferredWidth())
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		style.Render(content),
	)
}

// RefreshModalStyles pushes the current theme into the modals package
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle,
		ModalHelpStyle,
		SidebarItemStyle,
		SidebarSelectedStyle,
		StatusErrorStyle,
		ColorPrimary,
		ColorSecondary,
		ColorText,
		ColorTextMuted,
		ColorTextInverse,
		ColorUser,
		ColorWarning,
		ColorSuccess,
		ModalInputWidth,
		ModalInputCharLimit,
		ModalWidth,
	)
}
