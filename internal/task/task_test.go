package task

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/goleak"
)

type doneMsg struct{ n int }

func TestGroup_RunsTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGroup(context.Background())
	defer g.Close()

	msg := g.Go(func(context.Context) tea.Msg { return doneMsg{n: 7} })()
	if got, ok := msg.(doneMsg); !ok || got.n != 7 {
		t.Errorf("msg = %#v, want doneMsg{7}", msg)
	}
}

func TestGroup_CloseCancelsAndWaits(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGroup(context.Background())
	started := make(chan struct{})
	results := make(chan tea.Msg, 1)

	cmd := g.Go(func(ctx context.Context) tea.Msg {
		close(started)
		<-ctx.Done()
		return doneMsg{n: 1}
	})
	go func() { results <- cmd() }()

	<-started
	if g.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", g.Pending())
	}

	g.Close()

	// Close waited for the task, so its result is already available.
	select {
	case msg := <-results:
		if msg != nil {
			t.Errorf("result after cancel = %#v, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("task did not return after Close")
	}
	if g.Pending() != 0 {
		t.Errorf("Pending() = %d after Close", g.Pending())
	}
}

func TestGroup_TasksAfterCloseAreDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGroup(context.Background())
	g.Close()

	ran := false
	msg := g.Go(func(context.Context) tea.Msg {
		ran = true
		return doneMsg{}
	})()

	if ran {
		t.Error("task should not run after Close")
	}
	if msg != nil {
		t.Errorf("msg = %#v, want nil", msg)
	}
	if !g.Closed() {
		t.Error("Closed() = false")
	}
}

func TestGroup_CloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGroup(context.Background())
	g.Close()
	g.Close()
}

func TestGroup_ManyTasksNoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGroup(context.Background())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		cmd := g.Go(func(ctx context.Context) tea.Msg {
			select {
			case <-ctx.Done():
			case <-time.After(time.Duration(i%5) * time.Millisecond):
			}
			return doneMsg{n: i}
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd()
		}()
	}

	g.Close()
	wg.Wait()
}

func TestGroup_ParentCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	parent, cancel := context.WithCancel(context.Background())
	g := NewGroup(parent)
	defer g.Close()
	cancel()

	msg := g.Go(func(ctx context.Context) tea.Msg {
		<-ctx.Done()
		return doneMsg{}
	})()
	if msg != nil {
		t.Errorf("msg = %#v, want nil after parent cancel", msg)
	}
}
