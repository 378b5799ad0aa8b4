// Package task runs the client's asynchronous work (file reads, sends,
// imports, recordings) as Bubble Tea commands that can be canceled together.
package task

import (
	"context"
	"sync"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
)

// Group owns a context shared by every task started through it. Closing the
// group cancels that context and waits for running tasks to return.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	wg      sync.WaitGroup
	closed  bool
	pending atomic.Int32
}

// NewGroup creates a group whose context derives from parent.
func NewGroup(parent context.Context) *Group {
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// Context returns the group's context.
func (g *Group) Context() context.Context {
	return g.ctx
}

// Go wraps fn as a command. When the command runs, fn receives the group
// context. Its message is dropped (the command yields nil) if the group was
// closed before or while it ran.
func (g *Group) Go(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		g.mu.Lock()
		if g.closed {
			g.mu.Unlock()
			return nil
		}
		g.wg.Add(1)
		g.pending.Add(1)
		g.mu.Unlock()

		defer func() {
			g.pending.Add(-1)
			g.wg.Done()
		}()

		msg := fn(g.ctx)
		if g.ctx.Err() != nil {
			return nil
		}
		return msg
	}
}

// Pending returns the number of tasks currently running.
func (g *Group) Pending() int {
	return int(g.pending.Load())
}

// Closed reports whether Close has been called.
func (g *Group) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Close cancels every task and waits for them to return. It is safe to call
// more than once.
func (g *Group) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.mu.Unlock()

	g.cancel()
	g.wg.Wait()
}
