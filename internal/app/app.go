package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/backend"
	"github.com/Elun4705/Interactive/internal/clipboard"
	"github.com/Elun4705/Interactive/internal/config"
	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/overrides"
	"github.com/Elun4705/Interactive/internal/session"
	"github.com/Elun4705/Interactive/internal/store"
	"github.com/Elun4705/Interactive/internal/task"
	"github.com/Elun4705/Interactive/internal/ui"
	"github.com/Elun4705/Interactive/internal/upload"
	"github.com/Elun4705/Interactive/internal/voice"
)

// Focus represents which panel receives keys
type Focus int

const (
	FocusSidebar Focus = iota
	FocusTranscript
	FocusChat
)

// AppState represents the current state of the application.
// Using an explicit state machine prevents invalid state combinations
// and makes state transitions clear and traceable.
type AppState int

const (
	StateIdle          AppState = iota // Ready for user input
	StateAwaitingReply                 // A message was sent and the reply is outstanding
	StateRecording                     // A voice clip is being captured
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingReply:
		return "AwaitingReply"
	case StateRecording:
		return "Recording"
	default:
		return "Unknown"
	}
}

// Services are the collaborators the model drives.
type Services struct {
	Store     store.Store     // Persisted client state; in-memory when nil
	Client    *backend.Client // Conversation data layer; nil means unavailable
	Recorder  voice.Recorder  // nil disables voice input
	Clipboard func(now time.Time) (*upload.File, error)
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header     *ui.Header
	footer     *ui.Footer
	sidebar    *ui.Sidebar
	transcript *ui.Transcript
	chatbar    *ui.ChatBar
	modal      *ui.Modal

	width  int
	height int
	focus  Focus
	state  AppState

	sidebarHidden bool // Toggled by the user
	kittyKeyboard bool // Terminal reports shift+enter

	store     store.Store
	identity  *session.Identity
	client    *backend.Client
	importer  *conversation.Importer
	reader    *upload.Reader
	recorder  voice.Recorder
	clipboard func(time.Time) (*upload.File, error)
	tasks     *task.Group
	switches  []*overrides.Switch

	stopRecording context.CancelFunc // Non-nil while a clip is being recorded
	now           func() time.Time
}

// New creates a new app model
func New(cfg *config.Config, version string, svc Services) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	st := svc.Store
	if st == nil {
		st = store.NewMemory()
	}
	readClipboard := svc.Clipboard
	if readClipboard == nil {
		readClipboard = clipboard.ReadAttachment
	}

	m := &Model{
		config:    cfg,
		version:   version,
		header:    ui.NewHeader(cfg.AppName),
		footer:    ui.NewFooter(),
		sidebar:   ui.NewSidebar(),
		modal:     ui.NewModal(),
		focus:     FocusTranscript,
		state:     StateIdle,
		store:     st,
		identity:  session.New(st, cfg.StoreScope, cfg.GetAgentName()),
		client:    svc.Client,
		reader:    upload.NewReader(cfg.MaxConcurrentReads),
		recorder:  svc.Recorder,
		clipboard: readClipboard,
		tasks:     task.NewGroup(context.Background()),
		switches:  loadSwitches(st, cfg),
		now:       time.Now,
	}

	agent := m.identity.Agent()
	m.header.SetAgent(agent)
	m.transcript = ui.NewTranscript(agent)
	m.chatbar = ui.NewChatBar(m.chatBarOptions())

	m.importer = &conversation.Importer{
		Agent:  m.identity.Agent,
		Active: m.identity,
		Now:    func() time.Time { return m.now() },
	}
	if m.client != nil {
		m.importer.SDK = m.client
	}

	m.sidebar.SetActive(m.identity.Conversation())
	m.applyFocus()

	logger.WithComponent("app").Info("model created",
		"agent", agent,
		"conversation", m.identity.Conversation(),
		"childMode", cfg.IsChildMode(),
	)
	return m
}

// loadSwitches builds the override switches the config asks for
func loadSwitches(st store.Store, cfg *config.Config) []*overrides.Switch {
	var switches []*overrides.Switch
	for _, f := range overrides.Parse(cfg.ShowOverrideSwitches) {
		sw, err := overrides.NewSwitch(st, cfg.StoreScope, f)
		if err != nil {
			logger.Warn("App: failed to load override %s: %v", f.Name, err)
			continue
		}
		switches = append(switches, sw)
	}
	return switches
}

func (m *Model) chatBarOptions() ui.ChatBarOptions {
	return ui.ChatBarOptions{
		ClearOnSend:   m.config.ClearOnSend,
		BlurOnSend:    m.config.BlurOnSend,
		MaxInputLines: m.config.MaxInputLines,
		ChildMode:     m.config.IsChildMode(),
		VoiceEnabled:  m.voiceEnabled(),
		UploadEnabled: m.config.EnableFileUpload,
	}
}

// State helper methods

// IsIdle returns true if the app is ready for user input
func (m *Model) IsIdle() bool {
	return m.state == StateIdle
}

// voiceEnabled reports whether recordings can be made
func (m *Model) voiceEnabled() bool {
	return m.config.EnableVoiceInput && m.recorder != nil
}

// isTyping reports whether keys go to the chat bar draft
func (m *Model) isTyping() bool {
	return m.focus == FocusChat && m.chatbar.IsActive()
}

// hasActiveConversation reports whether a stored conversation is open
func (m *Model) hasActiveConversation() bool {
	return m.identity.Conversation() != session.NoConversation
}

// setState transitions to a new state with logging
func (m *Model) setState(newState AppState) {
	if m.state != newState {
		logger.Debug("App: State transition %s -> %s", m.state, newState)
		m.state = newState
	}
	m.chatbar.SetDisabled(m.state == StateAwaitingReply)
}

// Init loads the conversation list and the active conversation
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadConversations()}
	if id := m.identity.Conversation(); id != session.NoConversation {
		cmds = append(cmds, m.loadMessages(id))
	}
	return tea.Batch(cmds...)
}

// Close cancels outstanding work and waits for it to stop
func (m *Model) Close() {
	if m.stopRecording != nil {
		m.stopRecording()
		m.stopRecording = nil
	}
	m.tasks.Close()
}

// quit stops background work before exiting
func (m *Model) quit() tea.Cmd {
	return func() tea.Msg {
		m.Close()
		return tea.Quit()
	}
}

// sidebarVisible reports whether the conversation list is laid out
func (m *Model) sidebarVisible() bool {
	return !m.sidebarHidden && !m.config.IsChildMode() && m.width >= NarrowWidth
}

// NarrowWidth is the terminal width below which the sidebar is hidden
const NarrowWidth = 80

// setFocus moves keyboard focus and updates the panels
func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == FocusSidebar && !m.sidebarVisible() {
		f = FocusTranscript
	}
	m.focus = f
	m.applyFocus()
	if f == FocusChat && !m.chatbar.IsActive() {
		return m.chatbar.Activate()
	}
	return nil
}

func (m *Model) applyFocus() {
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.transcript.SetFocused(m.focus == FocusTranscript)
	if m.focus != FocusChat && m.chatbar.IsActive() {
		m.chatbar.Collapse()
	}
}

// cycleFocus moves focus to the next visible panel
func (m *Model) cycleFocus(delta int) tea.Cmd {
	order := []Focus{FocusTranscript, FocusChat}
	if m.sidebarVisible() {
		order = []Focus{FocusSidebar, FocusTranscript, FocusChat}
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}
