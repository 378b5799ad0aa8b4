package conversation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
)

// Import failure reasons.
const (
	reasonNoMessages      = "No valid conversation messages found in the imported file."
	reasonNoValidMessages = "No valid conversation messages after processing."
)

// nameStampFormat is the suffix layout of imported conversation names.
const nameStampFormat = "2006-01-02T15-04-05"

// Imported is a parsed conversation file, ready to be created.
type Imported struct {
	Name     string
	Messages []Message
}

// ParseImport normalizes an exported conversation file. The file may be a
// bare array of messages, or an object with an optional "name" and a
// "messages" (or, failing that, "conversation_history") array. Missing roles
// default to "user", message text falls back from "message" to "content",
// and missing timestamps are filled with now.
func ParseImport(data []byte, fileName string, now time.Time) (Imported, error) {
	if len(data) == 0 {
		return Imported{}, ierrors.ImportEmpty()
	}

	content, err := decodeJSON(data)
	if err != nil {
		return Imported{}, ierrors.ImportParseFailed(err)
	}

	base := BaseName(fileName)
	var candidates []any

	switch v := content.(type) {
	case []any:
		candidates = v
	case map[string]any:
		if truthy(v["name"]) {
			base = jsString(v["name"])
		}
		if msgs, ok := v["messages"].([]any); ok {
			candidates = msgs
		} else if hist, ok := v["conversation_history"].([]any); ok {
			candidates = hist
		}
	}

	if len(candidates) == 0 {
		return Imported{}, ierrors.ImportNoMessages(reasonNoMessages)
	}

	stamp := Stamp(now)
	msgs := make([]Message, 0, len(candidates))
	for _, c := range candidates {
		fields, ok := asObject(c)
		if !ok {
			continue
		}
		msgs = append(msgs, Message{
			Role:      firstTruthy("user", fields["role"]),
			Message:   firstTruthy("", fields["message"], fields["content"]),
			Timestamp: firstTruthy(stamp, fields["timestamp"]),
		})
	}

	if len(msgs) == 0 {
		return Imported{}, ierrors.ImportNoMessages(reasonNoValidMessages)
	}

	return Imported{
		Name:     base + "_imported_" + now.UTC().Format(nameStampFormat),
		Messages: msgs,
	}, nil
}

// BaseName strips the directory and the last extension from a file name.
func BaseName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// asObject returns the fields of an object entry. Arrays count as objects
// with no fields; every other value is not an object.
func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case []any:
		return map[string]any{}, true
	}
	return nil, false
}

// truthy follows the usual loose truthiness rules for JSON values: null,
// false, zero and the empty string are false, everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	return true
}

// firstTruthy returns the string form of the first truthy candidate, or
// fallback if none is.
func firstTruthy(fallback string, candidates ...any) string {
	for _, c := range candidates {
		if truthy(c) {
			return jsString(c)
		}
	}
	return fallback
}

// jsString renders a JSON value the way string concatenation would.
func jsString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return x.String()
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			if e != nil {
				parts[i] = jsString(e)
			}
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}
