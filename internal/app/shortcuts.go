package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/ui"
	"github.com/Elun4705/Interactive/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key                  string                              // The key binding (e.g., "q", "ctrl+n")
	DisplayKey           string                              // Display name in help; defaults to Key
	Description          string                              // Human-readable description
	Category             string                              // Section for help modal grouping
	RequiresConversation bool                                // An existing conversation must be open
	RequiresNotTyping    bool                                // Must not be typing in the chat bar
	Handler              func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition            func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation    = "Navigation"
	CategoryConversations = "Conversations"
	CategoryChat          = "Chat"
	CategoryConfiguration = "Configuration"
	CategoryGeneral       = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryConversations,
	CategoryChat,
	CategoryConfiguration,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Entries appear in the help modal and the command menu and can be run
// from either.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Next pane",
		Category:    CategoryNavigation,
		Handler:     shortcutNextPane,
	},
	{
		Key:         keys.ShiftTab,
		Description: "Previous pane",
		Category:    CategoryNavigation,
		Handler:     shortcutPrevPane,
	},
	{
		Key:         keys.ToggleSidebar,
		Description: "Toggle conversation list",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleSidebar,
		Condition:   func(m *Model) bool { return !m.config.IsChildMode() },
	},
	{
		Key:               "i",
		Description:       "Type a message",
		Category:          CategoryNavigation,
		RequiresNotTyping: true,
		Handler:           shortcutType,
		Condition:         func(m *Model) bool { return !m.config.IsChildMode() },
	},

	// Conversations
	{
		Key:         keys.NewConversation,
		Description: "New conversation",
		Category:    CategoryConversations,
		Handler:     shortcutNewConversation,
	},
	{
		Key:               "d",
		Description:       "Delete selected conversation",
		Category:          CategoryConversations,
		RequiresNotTyping: true,
		Handler:           shortcutDeleteConversation,
		Condition: func(m *Model) bool {
			return m.focus == FocusSidebar && m.sidebar.Selected() != nil
		},
	},
	{
		Key:                  keys.Search,
		Description:          "Search messages",
		Category:             CategoryConversations,
		RequiresConversation: true,
		Handler:              shortcutSearchMessages,
		Condition:            func(m *Model) bool { return len(m.transcript.Messages()) > 0 },
	},
	{
		Key:         keys.ImportFile,
		Description: "Import conversation",
		Category:    CategoryConversations,
		Handler:     shortcutImport,
	},
	{
		Key:         keys.ResetChat,
		Description: "Reset conversation",
		Category:    CategoryConversations,
		Handler:     shortcutReset,
		Condition:   func(m *Model) bool { return m.config.ShowResetConversation },
	},

	// Chat
	{
		Key:         keys.Attach,
		Description: "Attach files",
		Category:    CategoryChat,
		Handler:     shortcutAttach,
		Condition:   func(m *Model) bool { return m.config.EnableFileUpload && !m.config.IsChildMode() },
	},
	{
		Key:         keys.PasteImage,
		Description: "Paste image",
		Category:    CategoryChat,
		Handler:     shortcutPasteImage,
		Condition:   func(m *Model) bool { return m.config.EnableFileUpload && !m.config.IsChildMode() },
	},
	{
		Key:         keys.Record,
		Description: "Record voice message",
		Category:    CategoryChat,
		Handler:     shortcutRecord,
		Condition:   func(m *Model) bool { return m.voiceEnabled() },
	},

	// Configuration
	{
		Key:         keys.Overrides,
		Description: "Feature overrides",
		Category:    CategoryConfiguration,
		Handler:     shortcutOverrides,
		Condition:   func(m *Model) bool { return len(m.switches) > 0 },
	},

	// General
	// Note: "?" (help) and ctrl+k (commands) are handled specially in
	// ExecuteShortcut to avoid init cycle
	{
		Key:               "q",
		Description:       "Quit",
		Category:          CategoryGeneral,
		RequiresNotTyping: true,
		Handler:           shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:               "?",
	Description:       "Show this help",
	Category:          CategoryGeneral,
	RequiresNotTyping: true,
}

// commandsShortcut opens the command menu, which lists the registry.
var commandsShortcut = Shortcut{
	Key:         keys.Commands,
	Description: "Command menu",
	Category:    CategoryConfiguration,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Select conversation", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll transcript", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open conversation / Send message", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Collapse the chat bar", Category: CategoryNavigation},

	{DisplayKey: "ctrl+s", Description: "Send message", Category: CategoryChat},
	{DisplayKey: "shift+enter", Description: "Insert newline", Category: CategoryChat},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresNotTyping && m.isTyping() {
		return false
	}
	if s.RequiresConversation && !m.hasActiveConversation() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help and commands specially (defined outside registry to avoid init cycle)
	switch key {
	case helpShortcut.Key:
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	case commandsShortcut.Key:
		result, cmd := shortcutCommands(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.Debug("Shortcut: guards failed for %q (focus=%d, typing=%v)", key, m.focus, m.isTyping())
			return m, nil, false
		}
		logger.Debug("Shortcut: executing %q", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	// Chat entries describe the text box, which child mode does not have
	for _, s := range displayOnly {
		if s.Category == CategoryChat && m.config.IsChildMode() {
			continue
		}
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Command Menu
// =============================================================================

// themeCommandPrefix marks command menu entries that switch the palette
const themeCommandPrefix = "theme:"

// commandItems lists the applicable shortcuts followed by the themes
func (m *Model) commandItems() []modals.CommandItem {
	var items []modals.CommandItem
	for _, s := range append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut) {
		if !m.isShortcutApplicable(s) {
			continue
		}
		items = append(items, modals.CommandItem{ID: s.Key, Label: s.Description, Hint: s.Key})
	}
	for _, name := range ui.ThemeNames() {
		items = append(items, modals.CommandItem{
			ID:    themeCommandPrefix + string(name),
			Label: "Theme: " + ui.GetTheme(name).Name,
		})
	}
	return items
}

// runCommand executes a command menu entry by id
func (m *Model) runCommand(id string) (tea.Model, tea.Cmd) {
	if name, ok := strings.CutPrefix(id, themeCommandPrefix); ok {
		return m, m.setTheme(ui.ThemeName(name))
	}
	result, cmd, _ := m.ExecuteShortcut(id)
	return result, cmd
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNextPane(m *Model) (tea.Model, tea.Cmd) {
	return m, m.cycleFocus(1)
}

func shortcutPrevPane(m *Model) (tea.Model, tea.Cmd) {
	return m, m.cycleFocus(-1)
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.sidebarHidden = !m.sidebarHidden
	if m.focus == FocusSidebar && !m.sidebarVisible() {
		m.focus = FocusTranscript
		m.applyFocus()
	}
	m.updateSizes()
	return m, nil
}

func shortcutType(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(FocusChat)
}

func shortcutNewConversation(m *Model) (tea.Model, tea.Cmd) {
	return m, m.newConversation()
}

func shortcutDeleteConversation(m *Model) (tea.Model, tea.Cmd) {
	conv := m.sidebar.Selected()
	if conv == nil {
		return m, nil
	}
	m.modal.Show(modals.NewDeleteConversationState(conv.ID, conv.Name))
	return m, nil
}

func shortcutSearchMessages(m *Model) (tea.Model, tea.Cmd) {
	msgs := m.transcript.Messages()
	if len(msgs) == 0 {
		return m, nil
	}
	m.modal.Show(modals.NewSearchMessagesState(m.identity.Agent(), msgs))
	return m, nil
}

func shortcutImport(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewImportState())
	return m, nil
}

func shortcutReset(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewResetState())
	return m, nil
}

func shortcutAttach(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewAttachState())
	return m, nil
}

func shortcutPasteImage(m *Model) (tea.Model, tea.Cmd) {
	return m, m.pasteImage()
}

func shortcutRecord(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleRecording()
}

func shortcutOverrides(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewOverridesState(m.switches))
	return m, nil
}

func shortcutCommands(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewCommandMenuState(m.commandItems()))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(append([]Shortcut{}, ShortcutRegistry...), commandsShortcut, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, m.quit()
}
