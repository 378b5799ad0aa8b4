package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width            int
	title            string
	conversationName string
	agent            string
}

// NewHeader creates a new header showing title on the left
func NewHeader(title string) *Header {
	return &Header{title: title}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversationName sets the active conversation to display
func (h *Header) SetConversationName(name string) {
	h.conversationName = name
}

// SetAgent sets the agent shown after the conversation name
func (h *Header) SetAgent(agent string) {
	h.agent = agent
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.title
	var rightText string
	if h.conversationName != "" {
		rightText = h.conversationName
	}
	if h.agent != "" {
		if rightText != "" {
			rightText += " "
		}
		rightText += "(" + h.agent + ")"
	}
	if rightText != "" {
		rightText += " "
	}

	// Long conversation names give way to the title
	if room := h.width - ansi.StringWidth(titleText) - 1; ansi.StringWidth(rightText) > room && room > 0 {
		rightText = ansi.TruncateLeft(rightText, ansi.StringWidth(rightText)-room, "…")
	}

	padding := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if padding < 0 {
		padding = 0
	}

	content := titleText + strings.Repeat(" ", padding) + rightText
	return h.renderGradient(content, len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background. The first boldLen runes are bold, and
// the agent marker is muted.
func (h *Header) renderGradient(content string, boldLen int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	mutedStart := -1
	if h.agent != "" {
		if i := strings.LastIndex(content, "("+h.agent+")"); i >= 0 {
			mutedStart = len([]rune(content[:i]))
		}
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < boldLen)
		if mutedStart >= 0 && i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
