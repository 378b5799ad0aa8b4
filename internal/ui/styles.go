package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, rebuilt from the active theme by buildStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAgent       color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarMetaStyle     lipgloss.Style
)

// Transcript and chat bar styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAgentStyle        lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	ChatPlaceholderStyle  lipgloss.Style
	ChatCounterStyle      lipgloss.Style
	ChatVoiceStyle        lipgloss.Style
	BadgeStyle            lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusDoneStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

// Markdown styles
var (
	MarkdownHeadingStyle    lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	buildStyles(currentTheme)
	RefreshModalStyles()
}

// buildStyles updates all style variables from t
func buildStyles(t Theme) {
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAgent = lipgloss.Color(t.Agent)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)
	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)
	SidebarMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)
	ChatAgentStyle = lipgloss.NewStyle().
		Foreground(ColorAgent).
		Bold(true)
	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)
	ChatPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)
	ChatCounterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	ChatVoiceStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(1, 4)
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Padding(0, 1).
		MarginRight(1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)
	StatusDoneStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	MarkdownHeadingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownHeading)).
		Bold(true)
	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true)
	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true)
	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode))
	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)
	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)
	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)
}
