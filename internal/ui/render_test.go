package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderInlineMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // After stripping ANSI
	}{
		{"plain", "hello world", "hello world"},
		{"bold", "a **bold** word", "a bold word"},
		{"italic", "an _italic_ word", "an italic word"},
		{"snake case survives", "call my_func_name now", "call my_func_name now"},
		{"inline code", "run `go test` please", "run go test please"},
		{"bold inside code untouched", "`**not bold**`", "**not bold**"},
		{"link", "see [docs](https://example.com)", "see docs (https://example.com)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripANSI(renderInlineMarkdown(tt.input)); got != tt.want {
				t.Errorf("renderInlineMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdownLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading", "## Title", "Title"},
		{"bullet", "- item", "• item"},
		{"star bullet", "* item", "• item"},
		{"nested bullet", "  - inner", "  • inner"},
		{"ordered", "3. third", "3. third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.TrimSpace(stripANSI(renderMarkdownLine(tt.input, 80)))
			if got != strings.TrimSpace(tt.want) {
				t.Errorf("renderMarkdownLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdownLine_HorizontalRule(t *testing.T) {
	got := stripANSI(renderMarkdownLine("---", 10))
	if got != strings.Repeat("─", 10) {
		t.Errorf("Expected rule clamped to width, got %q", got)
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	content := "Here:\n```go\nfunc main() {}\n```\nDone."
	got := stripANSI(renderMarkdown(content, 80))

	for _, want := range []string{"Here:", "func main() {}", "Done."} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "```") {
		t.Error("Fences should not be rendered")
	}
}

func TestRenderMarkdown_UnterminatedCodeBlock(t *testing.T) {
	got := stripANSI(renderMarkdown("```\nx := 1", 80))
	if !strings.Contains(got, "x := 1") {
		t.Errorf("Expected unterminated block content, got %q", got)
	}
}

func TestRenderMarkdown_Wraps(t *testing.T) {
	got := renderMarkdown(strings.Repeat("word ", 40), 20)
	for _, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("Line wider than 20: %d %q", w, stripANSI(line))
		}
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	got := stripANSI(highlightCode("plain text here", "no-such-language"))
	if got != "plain text here" {
		t.Errorf("Expected text preserved, got %q", got)
	}
}

func TestWrapText_ZeroWidth(t *testing.T) {
	if got := wrapText("unchanged", 0); got != "unchanged" {
		t.Errorf("wrapText with zero width = %q", got)
	}
}
