package modals

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/keys"
)

const (
	searchMaxVisible   = 8
	searchSnippetWidth = 60
)

// SearchResult is one message containing the query
type SearchResult struct {
	MessageIndex int
	Role         string
	Content      string // Message flattened to a single line
	MatchStart   int    // Byte offsets of the match in Content
	MatchEnd     int
}

// =============================================================================
// SearchMessagesState - State for searching the active conversation
// =============================================================================

type SearchMessagesState struct {
	Input         textinput.Model
	Agent         string
	Messages      []conversation.Message
	Results       []SearchResult
	SelectedIndex int
	ScrollOffset  int
}

func (*SearchMessagesState) modalState() {}

func (s *SearchMessagesState) Title() string { return "Search Messages" }

func (s *SearchMessagesState) Help() string {
	if len(s.Results) == 0 && s.Input.Value() != "" {
		return "No matches found. Esc: close"
	}
	return "Type to search  up/down: navigate  Enter: go to message  Esc: close"
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// snippet cuts content around the match and highlights it
func (s *SearchMessagesState) snippet(r SearchResult) string {
	content := r.Content
	start, end := r.MatchStart, r.MatchEnd

	if len(content) > searchSnippetWidth {
		from := max(0, (start+end)/2-searchSnippetWidth/2)
		to := min(len(content), from+searchSnippetWidth)
		from = max(0, to-searchSnippetWidth)
		// Stay on rune boundaries
		for from > 0 && !utf8Start(content[from]) {
			from--
		}
		for to < len(content) && !utf8Start(content[to]) {
			to++
		}
		prefix, suffix := "", ""
		if from > 0 {
			prefix = "…"
		}
		if to < len(content) {
			suffix = "…"
		}
		content = content[from:to]
		start = max(0, start-from)
		end = min(len(content), end-from)
		return prefix + highlightRange(content, start, end) + suffix
	}
	return highlightRange(content, start, end)
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}

func highlightRange(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return text
	}
	style := lipgloss.NewStyle().
		Background(ColorWarning).
		Foreground(ColorTextInverse).
		Bold(true)
	return text[:start] + style.Render(text[start:end]) + text[end:]
}

func (s *SearchMessagesState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.Input.View())

	muted := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).MarginTop(1)
	var results string
	switch {
	case s.Input.Value() == "":
		results = muted.Render("Start typing to search through messages...")
	case len(s.Results) == 0:
		results = muted.Render("No matches found")
	default:
		results = lipgloss.NewStyle().Foreground(ColorSecondary).MarginTop(1).
			Render(fmt.Sprintf("%d match(es) found", len(s.Results)))

		end := min(len(s.Results), s.ScrollOffset+searchMaxVisible)
		for i := s.ScrollOffset; i < end; i++ {
			r := s.Results[i]
			roleStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
			roleText := s.Agent
			if r.Role == "user" {
				roleStyle = lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
				roleText = "You"
			}
			style := SidebarItemStyle
			prefix := "  "
			if i == s.SelectedIndex {
				style = SidebarSelectedStyle
				prefix = "> "
			}
			line := fmt.Sprintf("%s[%d] %s: %s", prefix, r.MessageIndex+1, roleStyle.Render(roleText), s.snippet(r))
			results += "\n" + style.Render(ansi.Truncate(line, ModalWidth, "…"))
		}
		if end < len(s.Results) {
			results += "\n" + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  down more below")
		}
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, inputView, results, help)
}

func (s *SearchMessagesState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, keys.CtrlP:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
				if s.SelectedIndex < s.ScrollOffset {
					s.ScrollOffset = s.SelectedIndex
				}
			}
			return s, nil
		case keys.Down, keys.CtrlN:
			if s.SelectedIndex < len(s.Results)-1 {
				s.SelectedIndex++
				if s.SelectedIndex >= s.ScrollOffset+searchMaxVisible {
					s.ScrollOffset = s.SelectedIndex - searchMaxVisible + 1
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	old := s.Input.Value()
	s.Input, cmd = s.Input.Update(msg)
	if s.Input.Value() != old {
		s.search()
	}
	return s, cmd
}

// search does a case-insensitive substring match over every message
func (s *SearchMessagesState) search() {
	s.Results = nil
	s.SelectedIndex = 0
	s.ScrollOffset = 0

	query := strings.ToLower(s.Input.Value())
	if query == "" {
		return
	}
	for i, m := range s.Messages {
		content := flatten(m.Message)
		// ToLower can change byte lengths for some scripts; match on the folded text only when it is safe
		lower := strings.ToLower(content)
		if len(lower) != len(content) {
			if strings.Contains(lower, query) {
				s.Results = append(s.Results, SearchResult{MessageIndex: i, Role: m.Role, Content: content})
			}
			continue
		}
		if idx := strings.Index(lower, query); idx >= 0 {
			s.Results = append(s.Results, SearchResult{
				MessageIndex: i,
				Role:         m.Role,
				Content:      content,
				MatchStart:   idx,
				MatchEnd:     idx + len(query),
			})
		}
	}
}

// GetSelectedResult returns the highlighted result, or nil
func (s *SearchMessagesState) GetSelectedResult() *SearchResult {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return nil
	}
	return &s.Results[s.SelectedIndex]
}

// NewSearchMessagesState creates a search over the given conversation
func NewSearchMessagesState(agent string, messages []conversation.Message) *SearchMessagesState {
	input := textinput.New()
	input.Placeholder = "Type to search..."
	input.CharLimit = ModalInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.Focus()

	return &SearchMessagesState{
		Input:    input,
		Agent:    agent,
		Messages: messages,
	}
}
