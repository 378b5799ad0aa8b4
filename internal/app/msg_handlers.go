package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/conversation"
	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/notification"
	"github.com/Elun4705/Interactive/internal/session"
	"github.com/Elun4705/Interactive/internal/ui"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// handleConversationsLoadedMsg refreshes the sidebar list.
func (m *Model) handleConversationsLoadedMsg(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: failed to load conversations: %v", msg.Err)
		return m, m.ShowFlashError("Could not load conversations")
	}
	m.sidebar.SetConversations(msg.Conversations)
	if id := m.identity.Conversation(); id != session.NoConversation {
		m.header.SetConversationName(m.sidebar.Name(id))
	}
	return m, nil
}

// handleMessagesLoadedMsg shows a conversation's history if it is still active.
func (m *Model) handleMessagesLoadedMsg(msg MessagesLoadedMsg) (tea.Model, tea.Cmd) {
	log := logger.WithConversation(msg.ConversationID)
	if msg.ConversationID != m.identity.Conversation() {
		log.Debug("dropping history of inactive conversation")
		return m, nil
	}
	if msg.Err != nil {
		log.Error("failed to load messages", "error", msg.Err)
		if ierrors.Is(msg.Err, ierrors.KindNotFound) {
			return m, tea.Batch(m.newConversation(), m.ShowFlashWarning("Conversation no longer exists"))
		}
		return m, m.ShowFlashError("Could not load messages")
	}
	m.transcript.SetMessages(msg.Messages)
	return m, nil
}

// handleSendMsg handles a draft submitted from the chat bar.
func (m *Model) handleSendMsg(msg ui.SendMsg) (tea.Model, tea.Cmd) {
	p := conversation.Payload{Text: msg.Text}
	return m, m.sendPayload(p, msg.Files, pendingLabel(msg.Text, msg.Files))
}

// handleReplyMsg finishes a send round trip.
func (m *Model) handleReplyMsg(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.transcript.Timer().Stop()
	m.transcript.SetPending("")
	m.setState(StateIdle)

	var cmds []tea.Cmd
	if msg.ConversationID != "" && msg.ConversationID != m.identity.Conversation() {
		if err := m.identity.SetConversation(msg.ConversationID); err != nil {
			logger.Error("App: failed to persist conversation %s: %v", msg.ConversationID, err)
		}
		m.sidebar.SetActive(msg.ConversationID)
	}

	if msg.Err != nil {
		logger.WithConversation(msg.ConversationID).Error("send failed", "error", msg.Err)
		cmds = append(cmds, m.ShowFlashError("Failed to send message"))
	} else {
		logger.WithConversation(msg.ConversationID).Info("reply received",
			"elapsed", m.transcript.Timer().Seconds())
		m.notify(func() error { return notification.ReplyReceived(m.identity.Agent()) })
	}

	cmds = append(cmds, m.loadConversations(), m.loadMessages(m.identity.Conversation()))
	return m, tea.Batch(cmds...)
}

// handleDropMsg reads files dropped onto the chat bar.
func (m *Model) handleDropMsg(msg ui.DropMsg) (tea.Model, tea.Cmd) {
	logger.Debug("App: %d path(s) dropped", len(msg.Paths))
	return m, m.readFiles(msg.Paths)
}

// handleFileReadMsg adds a read file to the pending uploads.
func (m *Model) handleFileReadMsg(msg FileReadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: failed to read %s: %v", msg.Path, msg.Err)
		return m, m.ShowFlashWarning("Could not attach " + modals.TruncatePath(msg.Path, 40))
	}
	logger.Debug("App: attached %s", msg.File.Name)
	cmd := m.chatbar.AddUpload(msg.File)
	m.focus = FocusChat
	m.applyFocus()
	m.updateSizes()
	return m, cmd
}

// handleClipboardImageMsg attaches a pasted image.
func (m *Model) handleClipboardImageMsg(msg ClipboardImageMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: clipboard read failed: %v", msg.Err)
		return m, m.ShowFlashWarning("Could not read clipboard image")
	}
	if msg.File == nil {
		return m, m.ShowFlashInfo("No image in clipboard")
	}
	return m.handleFileReadMsg(FileReadMsg{Path: msg.File.Name, File: *msg.File})
}

// handleRecordMsg toggles recording from the chat bar.
func (m *Model) handleRecordMsg() (tea.Model, tea.Cmd) {
	return m, m.toggleRecording()
}

// handleRecordingDoneMsg sends a finished clip.
func (m *Model) handleRecordingDoneMsg(msg RecordingDoneMsg) (tea.Model, tea.Cmd) {
	m.stopRecording = nil
	m.setState(StateIdle)
	if msg.Err != nil {
		logger.Error("App: recording failed: %v", msg.Err)
		return m, m.ShowFlashError("Recording failed")
	}
	if msg.Audio == "" {
		return m, nil
	}
	return m, m.sendPayload(conversation.Payload{Audio: msg.Audio}, nil, VoicePendingText)
}

// handleImportDoneMsg reports the outcome of an import.
func (m *Model) handleImportDoneMsg(msg ImportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: import failed: %v", msg.Err)
		return m, m.ShowFlashError("Import Error: " + conversation.Describe(msg.Err))
	}

	res := msg.Result
	logger.WithConversation(res.ConversationID).Info("conversation imported",
		"name", res.Name, "messages", res.Messages)
	m.notify(func() error { return notification.ImportCompleted(res.Name) })

	m.sidebar.SetActive(res.ConversationID)
	m.header.SetConversationName(res.Name)
	m.transcript.Clear()
	return m, tea.Batch(
		m.ShowFlashSuccess(res.SuccessMessage()),
		m.loadConversations(),
		m.loadMessages(res.ConversationID),
	)
}

// handleResetDoneMsg clears the view after a reset.
func (m *Model) handleResetDoneMsg(msg ResetDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: reset failed: %v", msg.Err)
		return m, m.ShowFlashError("Could not reset the conversation")
	}
	m.transcript.Clear()
	m.sidebar.SetActive(session.NoConversation)
	m.header.SetConversationName("")
	return m, m.ShowFlashInfo("Conversation reset")
}

// handleDeleteDoneMsg drops a deleted conversation from the view.
func (m *Model) handleDeleteDoneMsg(msg DeleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithConversation(msg.ConversationID).Error("delete failed", "error", msg.Err)
		return m, m.ShowFlashError("Could not delete conversation")
	}
	var cmds []tea.Cmd
	if msg.ConversationID == m.identity.Conversation() {
		cmds = append(cmds, m.newConversation())
	}
	cmds = append(cmds, m.ShowFlashSuccess("Conversation deleted"), m.loadConversations())
	return m, tea.Batch(cmds...)
}

// handleOverrideChangedMsg confirms a persisted override change.
func (m *Model) handleOverrideChangedMsg(msg modals.OverrideChangedMsg) (tea.Model, tea.Cmd) {
	label := msg.Feature
	for _, sw := range m.switches {
		if sw.Feature.Name == msg.Feature {
			label = sw.Feature.Label
		}
	}
	return m, m.ShowFlashInfo(label + ": " + msg.State.String())
}

// handleKeyboardEnhancements records whether shift+enter is reported.
func (m *Model) handleKeyboardEnhancements(msg tea.KeyboardEnhancementsMsg) (tea.Model, tea.Cmd) {
	m.kittyKeyboard = msg.SupportsKeyDisambiguation()
	m.footer.SetKittyKeyboard(m.kittyKeyboard)
	logger.Debug("App: keyboard disambiguation=%v", m.kittyKeyboard)
	return m, nil
}
