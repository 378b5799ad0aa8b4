package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// TimerInterval is how often a running timer redraws.
const TimerInterval = 100 * time.Millisecond

// TimerTickMsg is sent to advance a running timer.
type TimerTickMsg time.Time

// TimerTick returns a command that sends a tick message after TimerInterval.
func TimerTick() tea.Cmd {
	return tea.Tick(TimerInterval, func(t time.Time) tea.Msg {
		return TimerTickMsg(t)
	})
}

// spinnerFrames are the characters cycled while a request is in flight
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const timerDoneMark = "✓"

// Timer shows how long the latest interaction has taken. While loading it
// counts up in tenths of a second; once stopped it keeps the final value.
type Timer struct {
	start   time.Time
	end     time.Time
	loading bool
	frame   int
	now     func() time.Time
}

// NewTimer creates an idle timer.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// SetClock replaces the time source. Used in tests.
func (t *Timer) SetClock(now func() time.Time) {
	t.now = now
}

// Start begins timing a new interaction and returns the first tick.
func (t *Timer) Start() tea.Cmd {
	t.start = t.now()
	t.end = time.Time{}
	t.loading = true
	t.frame = 0
	return TimerTick()
}

// Stop freezes the timer at the current elapsed value.
func (t *Timer) Stop() {
	if !t.loading {
		return
	}
	t.end = t.now()
	t.loading = false
}

// IsLoading reports whether an interaction is in flight.
func (t *Timer) IsLoading() bool {
	return t.loading
}

// HasRun reports whether the timer has ever been started.
func (t *Timer) HasRun() bool {
	return !t.start.IsZero()
}

// Elapsed returns the time taken so far, or the final duration once stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	if t.loading {
		return t.now().Sub(t.start)
	}
	return t.end.Sub(t.start)
}

// Seconds formats the elapsed time in tenths, e.g. "3.4".
func (t *Timer) Seconds() string {
	tenths := t.Elapsed() / (100 * time.Millisecond)
	return fmt.Sprintf("%.1f", float64(tenths)/10)
}

// Update advances the spinner and schedules the next tick while loading.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(TimerTickMsg); !ok || !t.loading {
		return nil
	}
	t.frame = (t.frame + 1) % len(spinnerFrames)
	return TimerTick()
}

// View renders the spinner or check mark followed by the elapsed seconds.
func (t *Timer) View() string {
	if !t.HasRun() {
		return ""
	}
	if t.loading {
		return StatusLoadingStyle.Render(spinnerFrames[t.frame] + " " + t.Seconds() + "s")
	}
	return StatusDoneStyle.Render(timerDoneMark + " " + t.Seconds() + "s")
}

// Tooltip describes the timer in a full sentence.
func (t *Timer) Tooltip() string {
	if t.loading {
		return fmt.Sprintf("Your most recent interaction has been underway (including all activities) for %s seconds.", t.Seconds())
	}
	return fmt.Sprintf("Your last interaction took %s seconds to completely resolve.", t.Seconds())
}
