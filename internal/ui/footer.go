package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 4 * time.Second

// FlashTickInterval is how often expired flashes are checked
const FlashTickInterval = 500 * time.Millisecond

// FlashTickMsg is sent to check whether the flash message has expired
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient notice shown in place of the keybindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

func (f *FlashMessage) icon() string {
	switch f.Type {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (f *FlashMessage) color() lipgloss.Style {
	switch f.Type {
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width          int
	bindings       []KeyBinding
	chatActive     bool // Whether the chat bar has focus
	sidebarFocused bool // Whether sidebar has focus
	loading        bool // Whether a reply is pending
	childMode      bool // Whether the voice-only layout is in use
	kittyKeyboard  bool // Whether the terminal reports shift+enter
	flashMessage   *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "i", Desc: "type"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+k", Desc: "commands"},
			{Key: "ctrl+n", Desc: "new"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(chatActive, sidebarFocused, loading, childMode bool) {
	f.chatActive = chatActive
	f.sidebarFocused = sidebarFocused
	f.loading = loading
	f.childMode = childMode
}

// SetKittyKeyboard records whether the terminal distinguishes shift+enter
func (f *Footer) SetKittyKeyboard(enabled bool) {
	f.kittyKeyboard = enabled
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired removes the flash message once it has expired and
// reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) activeBindings() []KeyBinding {
	switch {
	case f.childMode:
		return []KeyBinding{
			{Key: "space", Desc: "talk"},
			{Key: "q", Desc: "quit"},
		}
	case f.chatActive:
		newline := "opt+enter"
		if f.kittyKeyboard {
			newline = "shift+enter"
		}
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: newline, Desc: "newline"},
			{Key: "ctrl+o", Desc: "attach"},
			{Key: "ctrl+v", Desc: "paste image"},
			{Key: "esc", Desc: "collapse"},
		}
	case f.sidebarFocused:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "q", Desc: "quit"},
		}
	}
	return f.bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		style := f.flashMessage.color()
		text := f.flashMessage.icon() + " " + f.flashMessage.Text
		if f.width > 2 {
			text = ansi.Truncate(text, f.width-2, "…")
		}
		return FooterStyle.Width(f.width).Render(style.Render(text))
	}

	var parts []string
	for _, b := range f.activeBindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	if f.loading {
		parts = append(parts, StatusLoadingStyle.Render("waiting for reply"))
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	return FooterStyle.Width(f.width).Render(strings.Join(parts, sep))
}
