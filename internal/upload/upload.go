// Package upload turns files the user attaches into data URLs and keeps the
// set of attachments queued for the next message.
package upload

import (
	"encoding/base64"
	"mime"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFileSize is the largest file that will be attached.
const MaxFileSize = 20 << 20

// File is an attachment ready to send.
type File struct {
	Name    string
	DataURL string
}

// Encode returns a data URL for data. The MIME type comes from the file
// extension, falling back to content sniffing.
func Encode(name string, data []byte) string {
	return EncodeAs(DetectMIME(name, data), data)
}

// EncodeAs returns a data URL for data with an explicit media type.
func EncodeAs(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectMIME returns the media type of a file without parameters.
func DetectMIME(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
		return t
	}
	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	mt, _, err := mime.ParseMediaType(http.DetectContentType(sniff))
	if err != nil {
		return "application/octet-stream"
	}
	return mt
}

// Files is the set of attachments queued for the next message, keyed by
// file name. Adding a name that is already present replaces it.
type Files struct {
	m map[string]string
}

// NewFiles returns an empty set.
func NewFiles() *Files {
	return &Files{m: make(map[string]string)}
}

// Add queues f, replacing any file with the same name.
func (fs *Files) Add(f File) {
	if fs.m == nil {
		fs.m = make(map[string]string)
	}
	fs.m[f.Name] = f.DataURL
}

// Remove drops the file with the given name.
func (fs *Files) Remove(name string) {
	delete(fs.m, name)
}

// Clear drops every file.
func (fs *Files) Clear() {
	fs.m = make(map[string]string)
}

// Len returns the number of queued files.
func (fs *Files) Len() int {
	return len(fs.m)
}

// Has reports whether a file with name is queued.
func (fs *Files) Has(name string) bool {
	_, ok := fs.m[name]
	return ok
}

// Names returns the queued file names in sorted order.
func (fs *Files) Names() []string {
	names := make([]string, 0, len(fs.m))
	for n := range fs.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the name to data URL map.
func (fs *Files) Snapshot() map[string]string {
	out := make(map[string]string, len(fs.m))
	for k, v := range fs.m {
		out[k] = v
	}
	return out
}
