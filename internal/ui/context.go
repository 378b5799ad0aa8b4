package ui

import (
	"sync"

	"github.com/Elun4705/Interactive/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	MainWidth     int
	SidebarHidden bool

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// hideSidebar collapses the conversation list so the main pane takes the
// whole width.
func (v *ViewContext) UpdateTerminalSize(width, height int, hideSidebar bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.SidebarHidden = hideSidebar

	if hideSidebar {
		v.SidebarWidth = 0
	} else {
		v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
	}
	v.MainWidth = width - v.SidebarWidth

	v.Log("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"mainWidth", v.MainWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
