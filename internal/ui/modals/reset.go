package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ResetConfirmText is the question asked before a conversation reset
const ResetConfirmText = "Are you sure you want to reset the conversation? This cannot be undone."

// =============================================================================
// ResetState - Confirmation before resetting the conversation
// =============================================================================

type ResetState struct {
	confirmed   bool
	form        *huh.Form
	initialized bool
}

func (*ResetState) modalState() {}

func (s *ResetState) Title() string { return "Reset Conversation" }

func (s *ResetState) Help() string {
	return "left/right: choose  Enter: confirm  Esc: cancel"
}

func (s *ResetState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ResetState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Confirmed reports whether "Reset" is the selected answer
func (s *ResetState) Confirmed() bool {
	return s.confirmed
}

// NewResetState creates the reset confirmation with "Cancel" preselected
func NewResetState() *ResetState {
	s := &ResetState{}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(ResetConfirmText).
				Affirmative("Reset").
				Negative("Cancel").
				Value(&s.confirmed),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)

	s.initialized = true
	initHuhForm(s.form)
	return s
}

// =============================================================================
// DeleteConversationState - Confirmation before deleting a conversation
// =============================================================================

type DeleteConversationState struct {
	ConversationID string
	Name           string
	confirmed      bool
	form           *huh.Form
	initialized    bool
}

func (*DeleteConversationState) modalState() {}

func (s *DeleteConversationState) Title() string { return "Delete Conversation" }

func (s *DeleteConversationState) Help() string {
	return "left/right: choose  Enter: confirm  Esc: cancel"
}

func (s *DeleteConversationState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *DeleteConversationState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Confirmed reports whether "Delete" is the selected answer
func (s *DeleteConversationState) Confirmed() bool {
	return s.confirmed
}

// NewDeleteConversationState asks before deleting the named conversation
func NewDeleteConversationState(id, name string) *DeleteConversationState {
	s := &DeleteConversationState{ConversationID: id, Name: name}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete \""+TruncateString(name, 40)+"\"?").
				Description("The conversation and its messages are removed from this machine.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&s.confirmed),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)

	s.initialized = true
	initHuhForm(s.form)
	return s
}
