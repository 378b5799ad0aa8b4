package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elun4705/Interactive/internal/conversation"
)

// Transcript is the scrollable message history of the active conversation.
type Transcript struct {
	viewport viewport.Model
	messages []conversation.Message
	pending  string // User text shown while the reply is outstanding
	agent    string
	timer    *Timer
	offsets  []int // First content line of each message
	width    int
	height   int
	focused  bool
}

// NewTranscript creates an empty transcript
func NewTranscript(agent string) *Transcript {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	t := &Transcript{
		viewport: vp,
		agent:    agent,
		timer:    NewTimer(),
	}
	t.updateContent()
	return t
}

// SetSize sets the outer panel dimensions
func (t *Transcript) SetSize(width, height int) {
	if width == t.width && height == t.height {
		return
	}
	t.width = width
	t.height = height

	ctx := GetViewContext()
	t.viewport.SetWidth(ctx.InnerWidth(width))
	// One line is reserved for the timer
	t.viewport.SetHeight(max(1, ctx.InnerHeight(height)-1))
	t.updateContent()
}

// SetFocused sets whether keys scroll the transcript
func (t *Transcript) SetFocused(focused bool) {
	t.focused = focused
}

// SetAgent sets the label used for non-user messages
func (t *Transcript) SetAgent(agent string) {
	t.agent = agent
	t.updateContent()
}

// SetMessages replaces the history and scrolls to the newest message
func (t *Transcript) SetMessages(msgs []conversation.Message) {
	t.messages = msgs
	t.updateContent()
}

// Messages returns the displayed history
func (t *Transcript) Messages() []conversation.Message {
	return t.messages
}

// SetPending shows text the user just sent until the reply arrives
func (t *Transcript) SetPending(text string) {
	t.pending = text
	t.updateContent()
}

// Timer returns the interaction timer shown under the transcript
func (t *Transcript) Timer() *Timer {
	return t.timer
}

// ScrollToMessage scrolls so the message at index is at the top
func (t *Transcript) ScrollToMessage(index int) {
	if index < 0 || index >= len(t.offsets) {
		return
	}
	t.viewport.SetYOffset(t.offsets[index])
}

// Clear empties the transcript for a new conversation
func (t *Transcript) Clear() {
	t.messages = nil
	t.pending = ""
	t.updateContent()
}

func (t *Transcript) roleLabel(role string) string {
	if role == "user" {
		return ChatUserStyle.Render("You")
	}
	name := t.agent
	if name == "" {
		name = role
	}
	return ChatAgentStyle.Render(name)
}

func (t *Transcript) updateContent() {
	width := t.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	if len(t.messages) == 0 && t.pending == "" {
		t.offsets = nil
		t.viewport.SetContent(renderEmptyTranscript())
		return
	}

	var sb strings.Builder
	t.offsets = t.offsets[:0]
	for i, msg := range t.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		t.offsets = append(t.offsets, strings.Count(sb.String(), "\n"))
		sb.WriteString(t.roleLabel(msg.Role))
		sb.WriteString("\n")
		if msg.Role == "user" {
			sb.WriteString(ChatMessageStyle.Render(wrapText(msg.Message, width)))
		} else {
			sb.WriteString(renderMarkdown(msg.Message, width))
		}
	}
	if t.pending != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(t.roleLabel("user"))
		sb.WriteString("\n")
		sb.WriteString(ChatMessageStyle.Render(wrapText(t.pending, width)))
	}

	t.viewport.SetContent(sb.String())
	t.viewport.GotoBottom()
}

func renderEmptyTranscript() string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(msgStyle.Italic(true).Render("No messages yet"))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("i"))
	sb.WriteString(msgStyle.Render(" to start typing"))
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("ctrl+k"))
	sb.WriteString(msgStyle.Render(" for commands"))
	return sb.String()
}

// Update scrolls the viewport and advances the timer
func (t *Transcript) Update(msg tea.Msg) (*Transcript, tea.Cmd) {
	if _, ok := msg.(TimerTickMsg); ok {
		return t, t.timer.Update(msg)
	}
	switch msg.(type) {
	case tea.KeyPressMsg:
		if !t.focused {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

// View renders the transcript panel
func (t *Transcript) View() string {
	style := PanelStyle
	if t.focused {
		style = PanelFocusedStyle
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		t.viewport.View(),
		lipgloss.PlaceHorizontal(t.viewport.Width(), lipgloss.Right, t.timer.View()),
	)
	return style.Width(t.width).Height(t.height).Render(content)
}

// ScrollOffset returns the index of the first visible content line
func (t *Transcript) ScrollOffset() int {
	return t.viewport.YOffset()
}
