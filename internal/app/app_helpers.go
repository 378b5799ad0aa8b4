package app

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/conversation"
	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/session"
	"github.com/Elun4705/Interactive/internal/ui"
)

// VoicePendingText stands in for a recorded clip in the transcript
const VoicePendingText = "🎤 Voice message"

// =============================================================================
// Loading
// =============================================================================

// loadConversations fetches the conversation list for the sidebar
func (m *Model) loadConversations() tea.Cmd {
	client := m.client
	if client == nil {
		return nil
	}
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		convs, err := client.Conversations(ctx)
		return ConversationsLoadedMsg{Conversations: convs, Err: err}
	})
}

// loadMessages fetches the history of one conversation
func (m *Model) loadMessages(id string) tea.Cmd {
	client := m.client
	if client == nil || id == session.NoConversation {
		return nil
	}
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		msgs, err := client.Messages(ctx, id)
		return MessagesLoadedMsg{ConversationID: id, Messages: msgs, Err: err}
	})
}

// =============================================================================
// Conversation Selection
// =============================================================================

// openConversation makes id the active conversation and loads it
func (m *Model) openConversation(id string) tea.Cmd {
	if id == session.NoConversation {
		return m.newConversation()
	}
	if id == m.identity.Conversation() && len(m.transcript.Messages()) > 0 {
		return nil
	}
	if err := m.identity.SetConversation(id); err != nil {
		logger.Error("App: failed to activate conversation %s: %v", id, err)
		return m.ShowFlashError("Could not open conversation")
	}
	logger.WithConversation(id).Info("conversation opened")

	m.sidebar.SetActive(id)
	m.header.SetConversationName(m.sidebar.Name(id))
	m.transcript.Clear()
	return m.loadMessages(id)
}

// newConversation clears the transcript; the next message starts a conversation
func (m *Model) newConversation() tea.Cmd {
	if err := m.identity.SetConversation(session.NoConversation); err != nil {
		logger.Error("App: failed to clear active conversation: %v", err)
		return m.ShowFlashError("Could not start a new conversation")
	}
	m.sidebar.SetActive(session.NoConversation)
	m.header.SetConversationName("")
	m.transcript.Clear()
	if m.config.IsChildMode() {
		return nil
	}
	return m.setFocus(FocusChat)
}

// =============================================================================
// Message Sending
// =============================================================================

// sendPayload sends typed text or a voice clip with the pending uploads
func (m *Model) sendPayload(p conversation.Payload, files map[string]string, pendingText string) tea.Cmd {
	if m.client == nil {
		return m.ShowFlashError(conversation.Describe(ierrors.SDKUnavailable()))
	}
	if m.state == StateAwaitingReply {
		logger.Warn("App: send ignored in state %s", m.state)
		return nil
	}

	client := m.client
	agent := m.identity.Agent()
	convID := m.identity.Conversation()
	logger.WithConversation(convID).Info("sending message",
		"agent", agent,
		"textLen", len(p.Text),
		"voice", p.Audio != "",
		"files", len(files),
	)

	m.transcript.SetPending(pendingText)
	timerCmd := m.transcript.Timer().Start()
	m.setState(StateAwaitingReply)

	send := m.tasks.Go(func(ctx context.Context) tea.Msg {
		id, err := client.Send(ctx, agent, convID, p, files)
		return ReplyMsg{ConversationID: id, Err: err}
	})
	return tea.Batch(timerCmd, send)
}

// pendingLabel is what the transcript shows while a send is outstanding
func pendingLabel(text string, files map[string]string) string {
	if strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("📎 %d file(s)", len(files))
}

// =============================================================================
// Uploads
// =============================================================================

// readFiles reads each path as an upload; results arrive one FileReadMsg each
func (m *Model) readFiles(paths []string) tea.Cmd {
	if !m.config.EnableFileUpload {
		return m.ShowFlashWarning("File upload is disabled")
	}
	reader := m.reader
	cmds := make([]tea.Cmd, 0, len(paths))
	for _, p := range paths {
		path := p
		cmds = append(cmds, m.tasks.Go(func(ctx context.Context) tea.Msg {
			f, err := reader.Read(ctx, path)
			return FileReadMsg{Path: path, File: f, Err: err}
		}))
	}
	logger.Debug("App: reading %d file(s)", len(paths))
	return tea.Batch(cmds...)
}

// pasteImage checks the clipboard for an image to attach
func (m *Model) pasteImage() tea.Cmd {
	if !m.config.EnableFileUpload {
		return nil
	}
	read := m.clipboard
	now := m.now()
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		f, err := read(now)
		return ClipboardImageMsg{File: f, Err: err}
	})
}

// =============================================================================
// Voice Recording
// =============================================================================

// toggleRecording starts a recording, or stops the one in progress
func (m *Model) toggleRecording() tea.Cmd {
	if m.stopRecording != nil {
		logger.Info("App: stopping recording")
		m.stopRecording()
		m.stopRecording = nil
		return nil
	}
	if !m.voiceEnabled() {
		logger.Warn("App: %v", ierrors.RecorderUnavailable())
		return m.ShowFlashError("Voice input is not available")
	}
	if !m.IsIdle() {
		return nil
	}

	recorder := m.recorder
	ctx, cancel := context.WithCancel(m.tasks.Context())
	m.stopRecording = cancel
	m.setState(StateRecording)
	logger.Info("App: recording started")

	return tea.Batch(
		m.tasks.Go(func(context.Context) tea.Msg {
			audio, err := recorder.Record(ctx)
			return RecordingDoneMsg{Audio: audio, Err: err}
		}),
		m.ShowFlashInfo("Recording… press ctrl+r again to send"),
	)
}

// =============================================================================
// Import, Reset, Delete
// =============================================================================

// importFile imports an exported conversation from path
func (m *Model) importFile(path string) tea.Cmd {
	importer := m.importer
	logger.Info("App: importing %s", path)
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		res, err := importer.Import(ctx, path)
		return ImportDoneMsg{Result: res, Err: err}
	})
}

// resetConversation issues a fresh identity and drops the active conversation
func (m *Model) resetConversation() tea.Cmd {
	identity := m.identity
	var inv session.Invalidator
	if m.client != nil {
		inv = m.client
	}
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		_, err := identity.Reset(ctx, inv)
		return ResetDoneMsg{Err: err}
	})
}

// deleteConversation removes a stored conversation
func (m *Model) deleteConversation(id string) tea.Cmd {
	client := m.client
	if client == nil {
		return m.ShowFlashError(conversation.Describe(ierrors.SDKUnavailable()))
	}
	return m.tasks.Go(func(ctx context.Context) tea.Msg {
		return DeleteDoneMsg{ConversationID: id, Err: client.Delete(ctx, id)}
	})
}

// =============================================================================
// Config & Notifications
// =============================================================================

// saveConfigOrFlash saves the config and returns a flash command on failure
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
		return m.ShowFlashError("Failed to save config: " + err.Error())
	}
	return nil
}

// notify sends a desktop notification when they are enabled
func (m *Model) notify(send func() error) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	if err := send(); err != nil {
		logger.Warn("App: notification failed: %v", err)
	}
}

// setTheme switches the palette and persists the choice
func (m *Model) setTheme(name ui.ThemeName) tea.Cmd {
	ui.SetTheme(name)
	m.config.SetTheme(string(name))
	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return cmd
	}
	return m.ShowFlashSuccess("Theme: " + ui.GetTheme(name).Name)
}
