package backend

import (
	"context"
	"sort"
	"strings"

	"github.com/Elun4705/Interactive/internal/conversation"
)

// Responder produces the agent's reply to a message.
type Responder interface {
	Respond(ctx context.Context, agent string, history []conversation.Message, files []string) (string, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, agent string, history []conversation.Message, files []string) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, agent string, history []conversation.Message, files []string) (string, error) {
	return f(ctx, agent, history, files)
}

// Echo is the offline responder: it acknowledges the last user message.
var Echo ResponderFunc = func(_ context.Context, agent string, history []conversation.Message, files []string) (string, error) {
	var b strings.Builder
	if n := len(history); n > 0 && strings.TrimSpace(history[n-1].Message) != "" {
		b.WriteString("You said:\n\n> ")
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(history[n-1].Message), "\n", "\n> "))
	} else {
		b.WriteString("Got it.")
	}
	if len(files) > 0 {
		sorted := append([]string(nil), files...)
		sort.Strings(sorted)
		b.WriteString("\n\nReceived ")
		b.WriteString(strings.Join(sorted, ", "))
		b.WriteString(".")
	}
	return b.String(), nil
}
