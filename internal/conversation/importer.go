package conversation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

// NoConversationID is used when the backend does not report an id.
const NoConversationID = "-"

// Activator records which conversation is active.
type Activator interface {
	SetConversation(id string) error
}

// Importer creates conversations from exported files.
type Importer struct {
	SDK    SDK
	Agent  func() string // Active agent name
	Active Activator     // Optional; receives the new conversation id
	Now    func() time.Time
}

// Result describes a successful import.
type Result struct {
	ConversationID string
	Name           string
	Messages       int
}

// Import reads the file at path and imports it.
func (im *Importer) Import(ctx context.Context, path string) (Result, error) {
	if im == nil || im.SDK == nil {
		return Result{}, ierrors.SDKUnavailable()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("import: failed to read %s: %v", path, err)
		return Result{}, ierrors.ImportReadFailed(path, err)
	}
	return im.ImportData(ctx, data, filepath.Base(path))
}

// ImportData parses data as an exported conversation named fileName and
// creates it through the SDK. On success the conversation list cache is
// invalidated and the new conversation becomes active.
func (im *Importer) ImportData(ctx context.Context, data []byte, fileName string) (Result, error) {
	if im == nil || im.SDK == nil {
		return Result{}, ierrors.SDKUnavailable()
	}

	now := time.Now
	if im.Now != nil {
		now = im.Now
	}

	parsed, err := ParseImport(data, fileName, now())
	if err != nil {
		return Result{}, err
	}

	agent := ""
	if im.Agent != nil {
		agent = im.Agent()
	}

	conv, err := im.SDK.CreateConversation(ctx, agent, parsed.Name, parsed.Messages)
	if err != nil {
		return Result{}, ierrors.BackendFailed("conversation.Import", err)
	}
	id := conv.ID
	if id == "" {
		id = NoConversationID
	}
	log := logger.WithConversation(id)

	if err := im.SDK.InvalidateCache(ctx, ConversationsKey); err != nil {
		log.Warn("failed to invalidate conversation list", "error", err)
	}
	if im.Active != nil {
		if err := im.Active.SetConversation(id); err != nil {
			log.Warn("failed to activate imported conversation", "error", err)
		}
	}

	log.Info("conversation imported", "name", parsed.Name, "messages", len(parsed.Messages))
	return Result{ConversationID: id, Name: parsed.Name, Messages: len(parsed.Messages)}, nil
}

// SuccessMessage is the notification text for a completed import.
func (r Result) SuccessMessage() string {
	return fmt.Sprintf("Conversation \"%s\" imported successfully.", r.Name)
}

// Describe turns an import error into the text shown to the user.
func Describe(err error) string {
	switch ierrors.GetKind(err) {
	case ierrors.KindUnavailable:
		return "SDK not available."
	case ierrors.KindIO:
		return "Error reading file."
	case ierrors.KindParse:
		return "Failed to parse JSON file: " + ierrors.Cause(err).Error()
	}
	return "Failed to process file: " + ierrors.Cause(err).Error()
}
