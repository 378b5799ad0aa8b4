// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps conversation names readable on narrow terminals
	MinSidebarWidth = 20

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes the layout handles
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// MinInputLines is the intrinsic height of the chat bar textarea
	MinInputLines = 1

	// InputBorderHeight is the border size around the chat bar textarea
	InputBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// BadgeRowHeight is the height of the uploaded-files row above the input
	BadgeRowHeight = 1

	// MaxBadgeWidth is the widest a single upload badge may render
	MaxBadgeWidth = 24

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 1024

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
