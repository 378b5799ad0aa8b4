package voice

import (
	"context"
	"encoding/base64"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestNewCommand_Empty(t *testing.T) {
	if NewCommand(nil) != nil {
		t.Error("NewCommand(nil) should be nil")
	}
	var c *Command
	if _, err := c.Record(context.Background()); !ierrors.Is(err, ierrors.KindUnavailable) {
		t.Errorf("Record() on nil recorder = %v, want unavailable", err)
	}
}

func TestRecord_ProgramExits(t *testing.T) {
	requireSh(t)
	c := NewCommand([]string{"sh", "-c", "printf RIFFdata"})

	got, err := c.Record(context.Background())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	prefix := "data:audio/wav;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("Record() = %q, want audio data URL", got)
	}
	payload := got[strings.Index(got, ",")+1:]
	if b, _ := base64.StdEncoding.DecodeString(payload); string(b) != "RIFFdata" {
		t.Errorf("payload = %q", b)
	}
}

func TestRecord_StopByCancel(t *testing.T) {
	requireSh(t)
	// Emits audio, then waits until interrupted.
	c := NewCommand([]string{"sh", "-c", "printf chunk; trap 'exit 0' INT; while :; do sleep 0.05; done"})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	got, err := c.Record(ctx)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if !strings.HasPrefix(got, "data:") {
		t.Errorf("Record() = %q", got)
	}
}

func TestRecord_Failure(t *testing.T) {
	requireSh(t)
	c := NewCommand([]string{"sh", "-c", "echo 'no microphone' >&2; exit 3"})

	_, err := c.Record(context.Background())
	if !ierrors.Is(err, ierrors.KindIO) {
		t.Fatalf("Record() error = %v, want I/O", err)
	}
	if !strings.Contains(err.Error(), "no microphone") {
		t.Errorf("error should carry stderr, got %v", err)
	}
}

func TestRecord_NothingCaptured(t *testing.T) {
	requireSh(t)
	c := NewCommand([]string{"sh", "-c", "true"})

	if _, err := c.Record(context.Background()); !ierrors.Is(err, ierrors.KindInvalid) {
		t.Errorf("Record() error = %v, want invalid", err)
	}
}
