// Package errors provides structured error types for the interactive client.
// These errors carry the operation that failed and a category that the UI
// uses to pick a notification style.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindParse
	KindIO
	KindNetwork
	KindConfig
	KindStorage
	KindUnavailable
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindParse:
		return "parse error"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindStorage:
		return "storage error"
	case KindUnavailable:
		return "unavailable"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Cause returns the innermost non-*Error error, which is what the user sees.
func Cause(err error) error {
	for {
		var e *Error
		if !errors.As(err, &e) || e.Err == nil {
			return err
		}
		err = e.Err
	}
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Store errors
func StoreFailed(op Op, key string, err error) error {
	return E(op, KindStorage, fmt.Sprintf("key %s", key), err)
}

// Upload errors
func FileReadFailed(path string, err error) error {
	return E(Op("upload.Read"), KindIO, fmt.Sprintf("failed to read %s", path), err)
}

// Import errors
func ImportReadFailed(path string, err error) error {
	return E(Op("conversation.Import"), KindIO, fmt.Sprintf("failed to read %s", path), err)
}

func ImportEmpty() error {
	return E(Op("conversation.ParseImport"), KindInvalid, "File content is empty or could not be read.")
}

func ImportParseFailed(err error) error {
	return E(Op("conversation.ParseImport"), KindParse, err)
}

func ImportNoMessages(reason string) error {
	return E(Op("conversation.ParseImport"), KindInvalid, reason)
}

// Backend errors
func SDKUnavailable() error {
	return E(Op("conversation.Import"), KindUnavailable, "SDK not available.")
}

func BackendFailed(op Op, err error) error {
	return E(op, KindNetwork, err)
}

func ConversationNotFound(id string) error {
	return E(Op("backend.Conversation"), KindNotFound, fmt.Sprintf("conversation %s not found", id))
}

// Voice errors
func RecorderUnavailable() error {
	return E(Op("voice.Record"), KindUnavailable, "no voice recorder configured")
}
