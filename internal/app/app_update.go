package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/ui"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyboardEnhancementsMsg:
		return m.handleKeyboardEnhancements(msg)

	case tea.PasteMsg:
		return m.handlePaste(msg)

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ui.TimerTickMsg:
		transcript, cmd := m.transcript.Update(msg)
		m.transcript = transcript
		return m, cmd

	case ui.SendMsg:
		return m.handleSendMsg(msg)

	case ui.DropMsg:
		return m.handleDropMsg(msg)

	case ui.RecordMsg:
		return m.handleRecordMsg()

	case ConversationsLoadedMsg:
		return m.handleConversationsLoadedMsg(msg)

	case MessagesLoadedMsg:
		return m.handleMessagesLoadedMsg(msg)

	case ReplyMsg:
		return m.handleReplyMsg(msg)

	case FileReadMsg:
		return m.handleFileReadMsg(msg)

	case ClipboardImageMsg:
		return m.handleClipboardImageMsg(msg)

	case RecordingDoneMsg:
		return m.handleRecordingDoneMsg(msg)

	case ImportDoneMsg:
		return m.handleImportDoneMsg(msg)

	case ResetDoneMsg:
		return m.handleResetDoneMsg(msg)

	case DeleteDoneMsg:
		return m.handleDeleteDoneMsg(msg)

	case modals.OverrideChangedMsg:
		return m.handleOverrideChangedMsg(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return m, tea.Batch(cmds...)
		}
	}

	// Update focused panel for other messages
	switch m.focus {
	case FocusSidebar:
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	case FocusTranscript:
		transcript, cmd := m.transcript.Update(msg)
		m.transcript = transcript
		cmds = append(cmds, cmd)
	case FocusChat:
		chatbar, cmd := m.chatbar.Update(msg)
		m.chatbar = chatbar
		cmds = append(cmds, cmd)
		m.syncChatFocus()
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Debug("App: key=%q focus=%d modal=%v typing=%v", key, m.focus, m.modal.IsVisible(), m.isTyping())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// ctrl+c always quits
	if key == keys.Quit {
		return m, m.quit()
	}

	// The child layout has one action: talk
	if m.config.IsChildMode() && (key == keys.Space || key == keys.Enter) {
		chatbar, cmd := m.chatbar.Update(msg)
		m.chatbar = chatbar
		return m, cmd
	}

	// While typing, only chords reach the registry; everything else is text
	if m.isTyping() && !isChord(key) {
		return nil, nil
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter && m.focus == FocusSidebar {
		return m.handleSidebarEnter()
	}

	// Key not handled - return nil to signal it should fall through to focused panel
	return nil, nil
}

// isChord reports whether key uses a modifier or switches panes
func isChord(key string) bool {
	if key == keys.Tab || key == keys.ShiftTab {
		return true
	}
	return strings.HasPrefix(key, "ctrl+")
}

// handleSidebarEnter opens the selected conversation
func (m *Model) handleSidebarEnter() (tea.Model, tea.Cmd) {
	id := m.sidebar.SelectedID()
	cmd := m.openConversation(id)
	if m.focus == FocusSidebar {
		m.focus = FocusTranscript
		m.applyFocus()
	}
	return m, cmd
}

// handlePaste routes pasted text to the modal or the chat bar
func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	logger.Debug("App: paste of %d bytes", len(msg.Content))
	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	chatbar, cmd := m.chatbar.Update(msg)
	m.chatbar = chatbar
	m.updateSizes()
	return m, cmd
}

// syncChatFocus moves focus off the chat bar once it collapses
func (m *Model) syncChatFocus() {
	if m.focus == FocusChat && !m.chatbar.IsActive() {
		m.focus = FocusTranscript
		m.applyFocus()
	}
	m.updateSizes()
}
