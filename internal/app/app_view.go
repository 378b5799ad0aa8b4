package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elun4705/Interactive/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = m.config.AppName
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.transcript.View(),
		m.chatbar.View(),
	)
	panels := main
	if m.sidebarVisible() {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.isTyping(),
		m.focus == FocusSidebar,
		m.state == StateAwaitingReply,
		m.config.IsChildMode(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, !m.sidebarVisible())

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chatbar.SetWidth(ctx.MainWidth)
	m.transcript.SetSize(ctx.MainWidth, max(ui.BorderSize+1, ctx.ContentHeight-m.chatbar.Height()))
}
