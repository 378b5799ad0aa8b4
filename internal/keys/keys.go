// Package keys provides string constants for Bubble Tea v2 key press events.
//
// Each constant is built from the tea.KeyPressMsg it names, so it always
// matches the runtime value of msg.String(). Single-character keys like "i"
// or "?" are written inline at their call sites.
package keys

import tea "charm.land/bubbletea/v2"

func ctrl(r rune) string {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}.String()
}

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Editing keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	AltEnter   = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String()   // "alt+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Space      = tea.KeyPressMsg{Code: tea.KeySpace}.String()                      // "space"
	Backspace  = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                  // "backspace"
	Delete     = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                     // "delete"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Ctrl combinations
var (
	CtrlB = ctrl('b') // "ctrl+b"
	CtrlC = ctrl('c') // "ctrl+c"
	CtrlF = ctrl('f') // "ctrl+f"
	CtrlK = ctrl('k') // "ctrl+k"
	CtrlL = ctrl('l') // "ctrl+l"
	CtrlN = ctrl('n') // "ctrl+n"
	CtrlO = ctrl('o') // "ctrl+o"
	CtrlP = ctrl('p') // "ctrl+p"
	CtrlR = ctrl('r') // "ctrl+r"
	CtrlS = ctrl('s') // "ctrl+s"
	CtrlT = ctrl('t') // "ctrl+t"
	CtrlV = ctrl('v') // "ctrl+v"
	CtrlX = ctrl('x') // "ctrl+x"
)

// App bindings, named by what they do
var (
	Quit            = CtrlC
	Send            = CtrlS
	Record          = CtrlR
	Commands        = CtrlK
	Attach          = CtrlO
	PasteImage      = CtrlV
	Search          = CtrlF
	NewConversation = CtrlN
	ImportFile      = CtrlL
	ResetChat       = CtrlX
	Overrides       = CtrlT
	ToggleSidebar   = CtrlB
)
