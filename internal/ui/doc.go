// Package ui provides the user interface components for the Interactive TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Each component follows the
// Model-Update-View pattern and is owned by the app model, which decides
// focus and routes messages.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │ Transcript                        │
//	│   Sidebar       │                          ✓ 3.4s   │
//	│   (1/4 width)   ├───────────────────────────────────┤
//	│                 │ ChatBar (grows with the draft)    │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line, or a flash message)                 │
//	└─────────────────────────────────────────────────────┘
//
// The sidebar is hidden in child mode and on narrow terminals.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title plus the active conversation and agent, over a
// gradient background.
//
// Footer: Context-aware keybindings, replaced by transient flash messages.
//
// Sidebar: The "+ New conversation" row followed by saved conversations.
//
// Transcript: Scrollable message history rendered as markdown, with the
// interaction Timer underneath.
//
// ChatBar: The composer. Inactive until activated; grows with its content
// up to a configured number of lines; carries pending uploads as badges.
// In child mode it only offers voice input.
//
// Modal: Popup dialogs whose states live in the modals subpackage.
//
// # Styles
//
// Styles are rebuilt from the active Theme by SetTheme; see theme.go for the
// available palettes.
package ui
