package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elun4705/Interactive/internal/keys"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/overrides"
)

// =============================================================================
// OverridesState - State for the feature override switches
// =============================================================================

// OverrideChangedMsg reports a persisted change to one override
type OverrideChangedMsg struct {
	Feature string
	State   overrides.State
}

type OverridesState struct {
	Switches      []*overrides.Switch
	SelectedIndex int
	Err           string
}

func (*OverridesState) modalState() {}

func (s *OverridesState) Title() string { return "Feature Overrides" }

func (s *OverridesState) Help() string {
	return "up/down navigate  Space: use default  left/right: allow/never  Esc: close"
}

func (s *OverridesState) renderSwitch(sw *overrides.Switch, selected bool) string {
	box := "[ ]"
	if sw.UsesDefault() {
		box = "[x]"
	}
	checkbox := lipgloss.NewStyle().Foreground(ColorText).Render(box + " default")

	on := lipgloss.NewStyle().Foreground(ColorTextMuted)
	off := lipgloss.NewStyle().Foreground(ColorTextMuted)
	switch sw.State() {
	case overrides.Allowed:
		on = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	case overrides.Never:
		off = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	}
	toggle := on.Render("allow") + " / " + off.Render("never")
	if sw.UsesDefault() {
		toggle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("agent decides")
	}

	label := lipgloss.NewStyle().Width(OverridesKeyColumnSize).Render(sw.Feature.Label)
	style := SidebarItemStyle
	prefix := "  "
	if selected {
		style = SidebarSelectedStyle
		prefix = "> "
	}
	return style.Render(prefix+label) + " " + checkbox + "  " + toggle
}

func (s *OverridesState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	if len(s.Switches) == 0 {
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No overridable features are enabled.")
	} else {
		rows := make([]string, len(s.Switches))
		for i, sw := range s.Switches {
			rows[i] = s.renderSwitch(sw, i == s.SelectedIndex)
		}
		content = strings.Join(rows, "\n")
	}

	parts := []string{title, content}
	if s.Err != "" {
		parts = append(parts, StatusErrorStyle.Render(s.Err))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Selected returns the highlighted switch, or nil when there are none
func (s *OverridesState) Selected() *overrides.Switch {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Switches) {
		return nil
	}
	return s.Switches[s.SelectedIndex]
}

func (s *OverridesState) apply(change func(*overrides.Switch) error) tea.Cmd {
	sw := s.Selected()
	if sw == nil {
		return nil
	}
	before := sw.State()
	if err := change(sw); err != nil {
		logger.Error("Overrides: failed to persist %s: %v", sw.Feature.Name, err)
		s.Err = err.Error()
		return nil
	}
	s.Err = ""
	if sw.State() == before {
		return nil
	}
	msg := OverrideChangedMsg{Feature: sw.Feature.Name, State: sw.State()}
	return func() tea.Msg { return msg }
}

func (s *OverridesState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Up, "k":
		if s.SelectedIndex > 0 {
			s.SelectedIndex--
		}
	case keys.Down, "j":
		if s.SelectedIndex < len(s.Switches)-1 {
			s.SelectedIndex++
		}
	case keys.Space, "d":
		return s, s.apply((*overrides.Switch).ToggleDefault)
	case keys.Left, keys.Right, "s":
		return s, s.apply((*overrides.Switch).Flip)
	}
	return s, nil
}

// NewOverridesState creates an OverridesState over the given switches
func NewOverridesState(switches []*overrides.Switch) *OverridesState {
	return &OverridesState{Switches: switches}
}
