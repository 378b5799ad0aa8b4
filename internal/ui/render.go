package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^a-zA-Z0-9_])_([^_]+)_([^a-zA-Z0-9_]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	orderedItem       = regexp.MustCompile(`^(\d+)\. (.*)$`)
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Protect code spans from other formatting
	var spans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		spans = append(spans, MarkdownInlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00CODE%d\x00", len(spans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	// Word-boundary underscores only, so snake_case survives
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		m := underscoreItalic.FindStringSubmatch(match)
		return m[1] + MarkdownItalicStyle.Render(m[2]) + m[3]
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + MarkdownLinkStyle.Render(parts[2]) + ")"
	})

	for i, rendered := range spans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	for _, prefix := range []string{"#### ", "### ", "## ", "# "} {
		if strings.HasPrefix(trimmed, prefix) {
			return MarkdownHeadingStyle.Render(strings.TrimPrefix(trimmed, prefix))
		}
	}

	switch {
	case trimmed == "---" || trimmed == "***" || trimmed == "___":
		return MarkdownHRStyle.Render(strings.Repeat("─", min(width, 32)))
	case strings.HasPrefix(trimmed, "> "):
		content := strings.TrimPrefix(trimmed, "> ")
		return MarkdownBlockquoteStyle.Render(wrapText(renderInlineMarkdown(content), width-2))
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		indent := strings.Repeat(" ", len(line)-len(strings.TrimLeft(line, " ")))
		bullet := MarkdownListBulletStyle.Render("•")
		return indent + bullet + " " + wrapText(renderInlineMarkdown(trimmed[2:]), width-len(indent)-2)
	}

	if m := orderedItem.FindStringSubmatch(trimmed); m != nil {
		return MarkdownListBulletStyle.Render(m[1]+".") + " " + wrapText(renderInlineMarkdown(m[2]), width-len(m[1])-2)
	}

	return wrapText(renderInlineMarkdown(line), width)
}

// renderMarkdown renders message content, highlighting fenced code blocks.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	var code strings.Builder
	inCodeBlock := false
	lang := ""

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				lang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				code.Reset()
				continue
			}
			inCodeBlock = false
			result.WriteString(highlightCode(code.String(), lang))
			result.WriteString("\n")
			continue
		}

		if inCodeBlock {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// Unterminated block: show what we have
	if inCodeBlock {
		result.WriteString(highlightCode(code.String(), lang))
	}

	return strings.TrimRight(result.String(), "\n")
}
