package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// helpKeyWidth is the width of the key column
const helpKeyWidth = 16

// =============================================================================
// HelpState - Keyboard shortcut reference backed by a bubbles list
// =============================================================================

type shortcutItem struct {
	shortcut HelpShortcut
}

func (i shortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// sectionItem is a heading; it is skipped by filtering
type sectionItem struct {
	title string
}

func (i sectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (helpDelegate) Height() int                             { return 1 }
func (helpDelegate) Spacing() int                            { return 0 }
func (helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case sectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case shortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(helpKeyWidth)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: trigger  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list below the title and above the help line
func (s *HelpState) SetSize(width, height int) {
	s.list.SetSize(width, max(1, height-4))
}

// GetSelectedShortcut returns the highlighted shortcut, or nil on a heading
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(shortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering reports whether the filter is being typed
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections creates a HelpState listing sections in order
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, sectionItem{title: section.Title})
		for _, sc := range section.Shortcuts {
			items = append(items, shortcutItem{shortcut: sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(shortcutItem); ok {
			l.Select(i)
			break
		}
	}
	return &HelpState{list: l}
}
