// Package voice records short audio clips from the microphone by running an
// external capture command and collecting its standard output.
package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/upload"
)

// MediaType is the media type recorded clips are labeled with.
const MediaType = "audio/wav"

// Recorder captures audio until ctx is done and returns it as a data URL.
type Recorder interface {
	Record(ctx context.Context) (string, error)
}

// Command records by running an external program (for example
// "sox -d -t wav -" or "arecord -f cd -t wav -") that writes audio to stdout.
// Canceling the context interrupts the program, which is expected to flush
// what it captured and exit.
type Command struct {
	Args     []string
	MaxTime  time.Duration // Upper bound on a single recording; zero means none
	stopWait time.Duration
}

// NewCommand returns a recorder for args, or nil if args is empty.
func NewCommand(args []string) *Command {
	if len(args) == 0 {
		return nil
	}
	return &Command{Args: args, MaxTime: 2 * time.Minute, stopWait: 3 * time.Second}
}

// Record runs the capture program until ctx is canceled or MaxTime passes.
func (c *Command) Record(ctx context.Context) (string, error) {
	if c == nil || len(c.Args) == 0 {
		return "", ierrors.RecorderUnavailable()
	}
	if c.MaxTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.MaxTime)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = c.stopWait

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := logger.WithComponent("voice")
	log.Info("recording started", "command", strings.Join(c.Args, " "))
	err := cmd.Run()

	// Being interrupted is how a recording normally ends.
	if err != nil && ctx.Err() == nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		log.Error("recording failed", "error", err)
		return "", ierrors.E(ierrors.Op("voice.Record"), ierrors.KindIO, err)
	}
	if stdout.Len() == 0 {
		return "", ierrors.E(ierrors.Op("voice.Record"), ierrors.KindInvalid, "no audio captured")
	}

	log.Info("recording finished", "bytes", stdout.Len())
	return upload.EncodeAs(MediaType, stdout.Bytes()), nil
}
