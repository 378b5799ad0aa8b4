package ui

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/keys"
)

// NewConversationLabel is the first sidebar row; selecting it starts a new conversation
const NewConversationLabel = "+ New conversation"

// Sidebar represents the left panel with the conversation list. Row 0 is
// the new-conversation action; conversations follow, newest first.
type Sidebar struct {
	conversations []conversation.Conversation
	activeID      string
	selectedIdx   int
	scrollOffset  int
	width         int
	height        int
	focused       bool
	now           func() time.Time
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{now: time.Now}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetConversations replaces the list, keeping the selection on the same
// conversation when it is still present.
func (s *Sidebar) SetConversations(convs []conversation.Conversation) {
	selected := s.SelectedID()
	s.conversations = convs
	s.selectedIdx = 0
	for i, c := range convs {
		if c.ID == selected {
			s.selectedIdx = i + 1
			break
		}
	}
	s.clampScroll()
}

// Conversations returns the listed conversations
func (s *Sidebar) Conversations() []conversation.Conversation {
	return s.conversations
}

// SetActive marks the conversation being shown in the transcript
func (s *Sidebar) SetActive(id string) {
	s.activeID = id
}

// SelectedID returns the selected conversation id, or NoConversationID
// when the new-conversation row is selected.
func (s *Sidebar) SelectedID() string {
	if s.selectedIdx <= 0 || s.selectedIdx > len(s.conversations) {
		return conversation.NoConversationID
	}
	return s.conversations[s.selectedIdx-1].ID
}

// Selected returns the selected conversation, or nil for the new-conversation row.
func (s *Sidebar) Selected() *conversation.Conversation {
	if s.selectedIdx <= 0 || s.selectedIdx > len(s.conversations) {
		return nil
	}
	return &s.conversations[s.selectedIdx-1]
}

// Name returns the display name of the conversation with the given id.
func (s *Sidebar) Name(id string) string {
	for _, c := range s.conversations {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s *Sidebar) rows() int {
	return len(s.conversations) + 1
}

func (s *Sidebar) move(delta int) {
	s.selectedIdx = max(0, min(s.rows()-1, s.selectedIdx+delta))
	s.clampScroll()
}

// clampScroll keeps the selected row inside the visible window
func (s *Sidebar) clampScroll() {
	visible := max(1, GetViewContext().InnerHeight(s.height))
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	}
	if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
	s.scrollOffset = max(0, min(s.scrollOffset, s.rows()-1))
}

// Update handles navigation keys while focused
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Up, "k":
		s.move(-1)
	case keys.Down, "j":
		s.move(1)
	case keys.Home, "g":
		s.move(-s.rows())
	case keys.End, "G":
		s.move(s.rows())
	case keys.PgUp:
		s.move(-GetViewContext().InnerHeight(s.height))
	case keys.PgDown:
		s.move(GetViewContext().InnerHeight(s.height))
	}
	return s, nil
}

// relativeTime renders a short age like "5m" or "3d"
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case t.IsZero():
		return ""
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h"
	default:
		return strconv.Itoa(int(d.Hours()/24)) + "d"
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	if s.width == 0 {
		return ""
	}
	ctx := GetViewContext()
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)
	now := s.now()

	var lines []string
	for idx := 0; idx < s.rows(); idx++ {
		var label, meta string
		if idx == 0 {
			label = NewConversationLabel
		} else {
			c := s.conversations[idx-1]
			label = c.Name
			if label == "" {
				label = c.ID
			}
			if c.ID == s.activeID {
				label = "● " + label
			} else {
				label = "  " + label
			}
			meta = relativeTime(c.UpdatedAt, now)
		}

		// Item styles pad one column each side
		room := innerWidth - 2
		if meta != "" {
			room -= ansi.StringWidth(meta) + 1
		}
		label = ansi.Truncate(label, max(room, 1), "…")
		if meta != "" {
			gap := max(1, innerWidth-2-ansi.StringWidth(label)-ansi.StringWidth(meta))
			label += strings.Repeat(" ", gap) + SidebarMetaStyle.Render(meta)
		}

		itemStyle := SidebarItemStyle.Width(innerWidth)
		if idx == s.selectedIdx && s.focused {
			itemStyle = SidebarSelectedStyle.Width(innerWidth)
		}
		lines = append(lines, itemStyle.Render(label))
	}

	if len(s.conversations) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			PaddingLeft(1).
			Render("No conversations yet."))
	}

	end := min(len(lines), s.scrollOffset+innerHeight)
	content := strings.Join(lines[min(s.scrollOffset, end):end], "\n")

	return style.
		Width(s.width).
		Height(s.height).
		Render(content)
}
