package ui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/ui/modals"
	"github.com/Elun4705/Interactive/internal/upload"
)

// ChildModePrompt is the only thing the bar shows in child mode
const ChildModePrompt = "Tap to talk!"

// DefaultMaxInputLines bounds the draft height when no limit is configured
const DefaultMaxInputLines = 12

// SendMsg carries the captured draft and uploads out of the chat bar
type SendMsg struct {
	Text  string
	Files map[string]string
}

// DropMsg is emitted when a paste consists of existing file paths
type DropMsg struct {
	Paths []string
}

// RecordMsg asks the app to start a voice recording
type RecordMsg struct{}

// ChatBarOptions configures a chat bar
type ChatBarOptions struct {
	ClearOnSend   bool
	BlurOnSend    bool
	MaxInputLines int
	ChildMode     bool
	VoiceEnabled  bool
	UploadEnabled bool
}

// ChatBar is the message composer. It is inactive (collapsed to a single
// line) until activated by a key, a click or an incoming upload.
type ChatBar struct {
	input    textarea.Model
	uploads  *upload.Files
	opts     ChatBarOptions
	active   bool
	disabled bool
	width    int
}

// NewChatBar creates an inactive chat bar
func NewChatBar(opts ChatBarOptions) *ChatBar {
	if opts.MaxInputLines <= 0 {
		opts.MaxInputLines = DefaultMaxInputLines
	}

	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Height is clamped by the bar itself; a positive MaxHeight would also cap the line count
	ti.MaxHeight = 0
	ti.SetHeight(MinInputLines)
	modals.ApplyTextareaStyles(&ti)

	return &ChatBar{
		input:   ti,
		uploads: upload.NewFiles(),
		opts:    opts,
	}
}

// SetWidth sets the outer width of the bar
func (c *ChatBar) SetWidth(width int) {
	c.width = width
	c.input.SetWidth(max(1, GetViewContext().InnerWidth(width)-InputPaddingWidth))
	c.resize()
}

// SetOptions replaces the bar options
func (c *ChatBar) SetOptions(opts ChatBarOptions) {
	if opts.MaxInputLines <= 0 {
		opts.MaxInputLines = DefaultMaxInputLines
	}
	c.opts = opts
	c.resize()
}

// Options returns the current bar options
func (c *ChatBar) Options() ChatBarOptions {
	return c.opts
}

// SetDisabled disables sending, e.g. while a reply is outstanding
func (c *ChatBar) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// IsDisabled reports whether sending is disabled
func (c *ChatBar) IsDisabled() bool {
	return c.disabled
}

// IsActive reports whether the bar is expanded and receiving keys
func (c *ChatBar) IsActive() bool {
	return c.active
}

// Activate expands the bar and focuses the draft
func (c *ChatBar) Activate() tea.Cmd {
	c.active = true
	cmd := c.input.Focus()
	c.resize()
	return cmd
}

// Collapse deactivates the bar but keeps the draft
func (c *ChatBar) Collapse() {
	c.active = false
	c.input.Blur()
	c.resize()
}

// Blur deactivates the bar, discards the draft and shrinks it back to one line
func (c *ChatBar) Blur() {
	c.active = false
	c.input.Blur()
	c.input.Reset()
	c.input.SetHeight(MinInputLines)
}

// Draft returns the current text
func (c *ChatBar) Draft() string {
	return c.input.Value()
}

// SetDraft replaces the draft text
func (c *ChatBar) SetDraft(text string) {
	c.input.SetValue(text)
	c.resize()
}

// InputHeight returns the number of visible draft lines
func (c *ChatBar) InputHeight() int {
	return c.input.Height()
}

// Uploads returns the pending uploads
func (c *ChatBar) Uploads() *upload.Files {
	return c.uploads
}

// AddUpload records a file read result and activates the bar
func (c *ChatBar) AddUpload(f upload.File) tea.Cmd {
	c.uploads.Add(f)
	return c.Activate()
}

// RemoveUpload drops a pending upload by name
func (c *ChatBar) RemoveUpload(name string) {
	c.uploads.Remove(name)
}

// CanSend reports whether the send action is enabled
func (c *ChatBar) CanSend() bool {
	if c.disabled {
		return false
	}
	return strings.TrimSpace(c.input.Value()) != "" || c.uploads.Len() > 0
}

// Send captures the draft and uploads and returns a command delivering
// them as a SendMsg. It returns nil when there is nothing to send.
func (c *ChatBar) Send() tea.Cmd {
	text := c.input.Value()
	files := c.uploads.Snapshot()
	qualifies := c.CanSend()

	if c.opts.BlurOnSend {
		c.Blur()
	}

	var cmd tea.Cmd
	if qualifies {
		msg := SendMsg{Text: text, Files: files}
		cmd = func() tea.Msg { return msg }
	}

	if c.opts.ClearOnSend {
		c.input.Reset()
		c.uploads.Clear()
		c.input.SetHeight(MinInputLines)
	}
	c.resize()
	return cmd
}

// visualLines counts wrapped display lines of the draft at the input width
func (c *ChatBar) visualLines() int {
	width := c.input.Width()
	if width <= 0 {
		return c.input.LineCount()
	}
	total := 0
	for _, line := range strings.Split(c.input.Value(), "\n") {
		w := runewidth.StringWidth(line)
		total += max(1, (w+width-1)/width)
	}
	return total
}

// resize recomputes the draft height from its content
func (c *ChatBar) resize() {
	if !c.active {
		c.input.SetHeight(MinInputLines)
		return
	}
	c.input.SetHeight(MinInputLines)
	c.input.SetHeight(max(MinInputLines, min(c.visualLines(), c.opts.MaxInputLines)))
}

// Height returns the rendered height of the bar including borders and badges
func (c *ChatBar) Height() int {
	if c.opts.ChildMode {
		return MinInputLines + InputBorderHeight
	}
	h := c.input.Height() + InputBorderHeight
	if c.hasStatusRow() {
		h += BadgeRowHeight
	}
	return h
}

// hasStatusRow reports whether the badge and counter row is shown
func (c *ChatBar) hasStatusRow() bool {
	return c.uploads.Len() > 0 || (c.active && c.input.Value() != "")
}

// Update handles keys and pastes while the bar is active
func (c *ChatBar) Update(msg tea.Msg) (*ChatBar, tea.Cmd) {
	if c.opts.ChildMode {
		if k, ok := msg.(tea.KeyPressMsg); ok {
			switch k.String() {
			case keys.Space, keys.Enter:
				return c, func() tea.Msg { return RecordMsg{} }
			}
		}
		return c, nil
	}

	// Dropped files are accepted while collapsed; their arrival activates the bar
	if paste, ok := msg.(tea.PasteMsg); ok && c.opts.UploadEnabled {
		if paths := upload.DroppedFiles(paste.Content); len(paths) > 0 {
			return c, func() tea.Msg { return DropMsg{Paths: paths} }
		}
	}

	if !c.active {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Escape:
			c.Collapse()
			return c, nil
		case keys.Send:
			return c, c.Send()
		case keys.ShiftEnter, keys.AltEnter:
			c.input.InsertString("\n")
			c.resize()
			return c, nil
		case keys.Enter:
			if strings.TrimSpace(c.input.Value()) != "" {
				if c.disabled {
					return c, nil
				}
				return c, c.Send()
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.resize()
	return c, cmd
}

// counter renders the grapheme count of the draft
func (c *ChatBar) counter() string {
	n := uniseg.GraphemeClusterCount(c.input.Value())
	if n == 0 {
		return ""
	}
	return ChatCounterStyle.Render(strconv.Itoa(n))
}

// badges renders one truncated badge per pending upload
func (c *ChatBar) badges(width int) string {
	var parts []string
	used := 0
	for _, name := range c.uploads.Names() {
		label := ansi.Truncate(name, MaxBadgeWidth, "…")
		badge := BadgeStyle.Render(label)
		w := lipgloss.Width(badge) + 1
		if used+w > width && len(parts) > 0 {
			more := "+" + strconv.Itoa(c.uploads.Len()-len(parts))
			parts = append(parts, ChatCounterStyle.Render(more))
			break
		}
		parts = append(parts, badge)
		used += w
	}
	return strings.Join(parts, " ")
}

// View renders the bar
func (c *ChatBar) View() string {
	style := ChatInputStyle
	if c.active {
		style = ChatInputFocusedStyle
	}
	inner := max(1, GetViewContext().InnerWidth(c.width)-InputPaddingWidth)

	if c.opts.ChildMode {
		prompt := ChatVoiceStyle.Render("🎤 " + ChildModePrompt)
		return style.Width(c.width).Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, prompt))
	}

	var body string
	if !c.active && c.input.Value() == "" {
		hint := "Press i to type"
		if c.opts.VoiceEnabled {
			hint += ", ctrl+r to talk"
		}
		body = ChatPlaceholderStyle.Render(ansi.Truncate(hint, inner, "…"))
	} else {
		body = c.input.View()
	}

	rows := []string{body}
	if c.hasStatusRow() {
		left := c.badges(inner)
		right := c.counter()
		if !c.active {
			right = ""
		}
		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
		rows = append([]string{left + strings.Repeat(" ", gap) + right}, rows...)
	}

	return style.Width(c.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
