package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elun4705/Interactive/internal/upload"
)

// pathForm is a single-input huh form for entering a file path
type pathForm struct {
	path        string
	form        *huh.Form
	initialized bool
}

func newPathForm(title, description, placeholder string) *pathForm {
	p := &pathForm{}
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder(placeholder).
				CharLimit(ModalInputCharLimit).
				Value(&p.path),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)

	p.initialized = true
	initHuhForm(p.form)
	return p
}

func (p *pathForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.form, cmd = huhFormUpdate(p.form, &p.initialized, msg)
	return cmd
}

// value returns the entered path with surrounding quotes and space removed
func (p *pathForm) value() string {
	v := strings.TrimSpace(p.path)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return v
}

// =============================================================================
// ImportState - State for importing a conversation from a JSON file
// =============================================================================

type ImportState struct {
	input *pathForm
}

func (*ImportState) modalState() {}

func (s *ImportState) Title() string { return "Import Conversation" }

func (s *ImportState) Help() string {
	return "Enter: import  Esc: cancel"
}

func (s *ImportState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.input.form.View(), help)
}

func (s *ImportState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, s.input.update(msg)
}

// Path returns the entered file path
func (s *ImportState) Path() string {
	return s.input.value()
}

// NewImportState creates the import prompt
func NewImportState() *ImportState {
	return &ImportState{
		input: newPathForm("File", "Import a conversation from a JSON file.", "~/Downloads/conversation.json"),
	}
}

// =============================================================================
// AttachState - State for attaching a file to the next message
// =============================================================================

type AttachState struct {
	input *pathForm
}

func (*AttachState) modalState() {}

func (s *AttachState) Title() string { return "Attach File" }

func (s *AttachState) Help() string {
	return "Enter: attach  Esc: cancel"
}

func (s *AttachState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.input.form.View(), help)
}

func (s *AttachState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, s.input.update(msg)
}

// Paths returns the entered file paths
func (s *AttachState) Paths() []string {
	return upload.ParsePaths(s.input.path)
}

// NewAttachState creates the attach prompt
func NewAttachState() *AttachState {
	return &AttachState{
		input: newPathForm("File", "Several paths may be separated by spaces; quote paths that contain them.", "/path/to/file"),
	}
}
