package ui

import (
	"sort"
)

// Theme defines the palette used by every style in the package.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for agent messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User    string // User message labels
	Agent   string // Agent message labels
	Warning string
	Error   string
	Success string
	Info    string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Markdown colors
	MarkdownHeading string
	MarkdownCode    string // Inline code
	MarkdownLink    string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:            "Dark Purple",
		Primary:         "#7C3AED",
		Secondary:       "#06B6D4",
		Bg:              "#1F2937",
		Text:            "#F9FAFB",
		TextMuted:       "#9CA3AF",
		TextInverse:     "#1F2937",
		User:            "#A78BFA",
		Agent:           "#22D3EE",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Success:         "#10B981",
		Info:            "#06B6D4",
		Border:          "#374151",
		MarkdownHeading: "#C4B5FD",
		MarkdownCode:    "#67E8F9",
		MarkdownLink:    "#67E8F9",
		CodeStyle:       "monokai",
	},
	ThemeNord: {
		Name:            "Nord",
		Primary:         "#88C0D0",
		Secondary:       "#81A1C1",
		Bg:              "#2E3440",
		Text:            "#ECEFF4",
		TextMuted:       "#D8DEE9",
		TextInverse:     "#2E3440",
		User:            "#A3BE8C",
		Agent:           "#88C0D0",
		Warning:         "#EBCB8B",
		Error:           "#BF616A",
		Success:         "#A3BE8C",
		Info:            "#81A1C1",
		Border:          "#4C566A",
		MarkdownHeading: "#8FBCBB",
		MarkdownCode:    "#EBCB8B",
		MarkdownLink:    "#88C0D0",
		CodeStyle:       "nord",
	},
	ThemeDracula: {
		Name:            "Dracula",
		Primary:         "#BD93F9",
		Secondary:       "#8BE9FD",
		Bg:              "#282A36",
		BgSelected:      "#44475A",
		Text:            "#F8F8F2",
		TextMuted:       "#6272A4",
		TextInverse:     "#282A36",
		User:            "#FF79C6",
		Agent:           "#8BE9FD",
		Warning:         "#FFB86C",
		Error:           "#FF5555",
		Success:         "#50FA7B",
		Info:            "#8BE9FD",
		Border:          "#44475A",
		MarkdownHeading: "#FF79C6",
		MarkdownCode:    "#50FA7B",
		MarkdownLink:    "#8BE9FD",
		CodeStyle:       "dracula",
	},
	ThemeGruvbox: {
		Name:            "Gruvbox",
		Primary:         "#D79921",
		Secondary:       "#689D6A",
		Bg:              "#282828",
		Text:            "#EBDBB2",
		TextMuted:       "#A89984",
		TextInverse:     "#282828",
		User:            "#B8BB26",
		Agent:           "#83A598",
		Warning:         "#FE8019",
		Error:           "#FB4934",
		Success:         "#B8BB26",
		Info:            "#83A598",
		Border:          "#504945",
		MarkdownHeading: "#FABD2F",
		MarkdownCode:    "#8EC07C",
		MarkdownLink:    "#83A598",
		CodeStyle:       "gruvbox",
	},
	ThemeTokyoNight: {
		Name:            "Tokyo Night",
		Primary:         "#7AA2F7",
		Secondary:       "#7DCFFF",
		Bg:              "#1A1B26",
		Text:            "#C0CAF5",
		TextMuted:       "#565F89",
		TextInverse:     "#1A1B26",
		User:            "#BB9AF7",
		Agent:           "#7DCFFF",
		Warning:         "#E0AF68",
		Error:           "#F7768E",
		Success:         "#9ECE6A",
		Info:            "#7DCFFF",
		Border:          "#3B4261",
		MarkdownHeading: "#BB9AF7",
		MarkdownCode:    "#9ECE6A",
		MarkdownLink:    "#7DCFFF",
		CodeStyle:       "tokyonight-night",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#6366F1",
		Secondary:       "#0891B2",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0E7FF",
		Text:            "#111827",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		User:            "#7C3AED",
		Agent:           "#0891B2",
		Warning:         "#D97706",
		Error:           "#DC2626",
		Success:         "#16A34A",
		Info:            "#0891B2",
		Border:          "#D1D5DB",
		MarkdownHeading: "#4F46E5",
		MarkdownCode:    "#059669",
		MarkdownLink:    "#0891B2",
		CodeStyle:       "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeLight,
	}
}

// IsThemeName reports whether name is a built-in theme.
func IsThemeName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// ThemeDisplayNames returns "name (Display Name)" labels sorted by name.
func ThemeDisplayNames() []string {
	names := make([]string, 0, len(BuiltinThemes))
	for name, t := range BuiltinThemes {
		names = append(names, string(name)+" ("+t.Name+")")
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	buildStyles(currentTheme)
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}
