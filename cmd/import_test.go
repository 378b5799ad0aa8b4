package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Elun4705/Interactive/internal/session"
)

func TestImportConversation(t *testing.T) {
	cfg, svc := testEnv(t)
	path := filepath.Join(t.TempDir(), "trip.json")
	data := `[{"role": "user", "message": "hi"}, {"content": "yo"}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := importConversation(context.Background(), &out, cfg, svc, path); err != nil {
		t.Fatalf("importConversation() error = %v", err)
	}

	if !strings.Contains(out.String(), `Conversation "trip_imported_`) {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "2 message(s)") {
		t.Errorf("output = %q, want the message count", out.String())
	}

	active := session.New(svc.Store, cfg.StoreScope, cfg.GetAgentName()).Conversation()
	convs, err := svc.Client.Conversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 || convs[0].ID != active {
		t.Errorf("conversations = %+v, active = %q", convs, active)
	}
}

func TestImportConversation_Invalid(t *testing.T) {
	cfg, svc := testEnv(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := importConversation(context.Background(), &out, cfg, svc, path)
	if err == nil || !strings.Contains(err.Error(), "Failed to parse JSON file") {
		t.Errorf("error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
