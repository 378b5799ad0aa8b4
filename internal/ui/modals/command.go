package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/Elun4705/Interactive/internal/keys"
)

// CommandItem is one entry of the command menu
type CommandItem struct {
	ID    string // Identifier the app dispatches on
	Label string
	Hint  string // Shortcut or detail shown muted on the right
}

// commandSource adapts a command list for fuzzy matching on labels
type commandSource []CommandItem

func (c commandSource) String(i int) string { return c[i].Label }
func (c commandSource) Len() int            { return len(c) }

// =============================================================================
// CommandMenuState - State for the fuzzy-filtered command menu
// =============================================================================

type CommandMenuState struct {
	Input         textinput.Model
	Items         []CommandItem
	Matches       fuzzy.Matches // nil when the query is empty
	SelectedIndex int
	ScrollOffset  int
	maxVisible    int
}

func (*CommandMenuState) modalState() {}

func (s *CommandMenuState) Title() string { return "Commands" }

func (s *CommandMenuState) Help() string {
	return "Type to filter  up/down: navigate  Enter: run  Esc: close"
}

// visible returns the commands currently listed, best match first
func (s *CommandMenuState) visible() []CommandItem {
	if strings.TrimSpace(s.Input.Value()) == "" {
		return s.Items
	}
	out := make([]CommandItem, len(s.Matches))
	for i, m := range s.Matches {
		out[i] = s.Items[m.Index]
	}
	return out
}

// highlight renders label with the matched runes emphasized
func highlight(label string, matched []int) string {
	if len(matched) == 0 {
		return label
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	matchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	var sb strings.Builder
	for i, r := range label {
		if hit[i] {
			sb.WriteString(matchStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (s *CommandMenuState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.Input.View())

	items := s.visible()
	var list string
	if len(items) == 0 {
		list = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("No matching commands")
	} else {
		end := min(len(items), s.ScrollOffset+s.maxVisible)
		var rows []string
		if s.ScrollOffset > 0 {
			rows = append(rows, lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  up more above"))
		}
		for i := s.ScrollOffset; i < end; i++ {
			item := items[i]
			var matched []int
			if s.Matches != nil && i < len(s.Matches) {
				matched = s.Matches[i].MatchedIndexes
			}
			style := SidebarItemStyle
			prefix := "  "
			if i == s.SelectedIndex {
				style = SidebarSelectedStyle
				prefix = "> "
			}
			line := style.Render(prefix + highlight(item.Label, matched))
			if item.Hint != "" {
				line += "  " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render(item.Hint)
			}
			rows = append(rows, line)
		}
		if end < len(items) {
			rows = append(rows, lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  down more below"))
		}
		list = lipgloss.NewStyle().MarginTop(1).Render(strings.Join(rows, "\n"))
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, inputView, list, help)
}

func (s *CommandMenuState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
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
			if s.SelectedIndex < len(s.visible())-1 {
				s.SelectedIndex++
				if s.SelectedIndex >= s.ScrollOffset+s.maxVisible {
					s.ScrollOffset = s.SelectedIndex - s.maxVisible + 1
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	oldQuery := s.Input.Value()
	s.Input, cmd = s.Input.Update(msg)
	if s.Input.Value() != oldQuery {
		s.filter()
	}
	return s, cmd
}

// filter recomputes matches for the current query
func (s *CommandMenuState) filter() {
	s.SelectedIndex = 0
	s.ScrollOffset = 0
	query := strings.TrimSpace(s.Input.Value())
	if query == "" {
		s.Matches = nil
		return
	}
	s.Matches = fuzzy.FindFrom(query, commandSource(s.Items))
	if s.Matches == nil {
		s.Matches = fuzzy.Matches{}
	}
}

// SetQuery replaces the filter text
func (s *CommandMenuState) SetQuery(q string) {
	s.Input.SetValue(q)
	s.filter()
}

// GetSelected returns the highlighted command, or nil when nothing matches
func (s *CommandMenuState) GetSelected() *CommandItem {
	items := s.visible()
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(items) {
		return nil
	}
	item := items[s.SelectedIndex]
	return &item
}

// NewCommandMenuState creates a command menu listing items in order
func NewCommandMenuState(items []CommandItem) *CommandMenuState {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	return &CommandMenuState{
		Input:      ti,
		Items:      items,
		maxVisible: CommandMenuMaxVisible,
	}
}
