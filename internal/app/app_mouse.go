package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/ui"
)

// mouseRegion is the part of the screen a mouse event landed in
type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionSidebar
	regionTranscript
	regionChatBar
)

// regionAt maps screen coordinates to a panel
func (m *Model) regionAt(x, y int) mouseRegion {
	ctx := ui.GetViewContext()
	top := ctx.HeaderHeight
	bottom := top + ctx.ContentHeight
	if y < top || y >= bottom {
		return regionNone
	}
	if m.sidebarVisible() && x < ctx.SidebarWidth {
		return regionSidebar
	}
	if y >= bottom-m.chatbar.Height() {
		return regionChatBar
	}
	return regionTranscript
}

// handleMouseClick focuses the clicked panel. A click on the chat bar
// activates it, or starts talking in the child layout.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() || msg.Button != tea.MouseLeft {
		return m, nil
	}

	switch m.regionAt(msg.X, msg.Y) {
	case regionChatBar:
		if m.config.IsChildMode() {
			return m, func() tea.Msg { return ui.RecordMsg{} }
		}
		cmd := m.setFocus(FocusChat)
		m.updateSizes()
		return m, cmd
	case regionSidebar:
		return m, m.setFocus(FocusSidebar)
	case regionTranscript:
		cmd := m.setFocus(FocusTranscript)
		m.updateSizes()
		return m, cmd
	}
	return m, nil
}

// handleMouseWheel scrolls the transcript wherever the wheel is used outside the sidebar
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() || m.regionAt(msg.X, msg.Y) == regionSidebar {
		return m, nil
	}
	transcript, cmd := m.transcript.Update(msg)
	m.transcript = transcript
	return m, cmd
}
