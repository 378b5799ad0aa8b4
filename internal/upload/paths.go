package upload

import (
	"net/url"
	"os"
	"strings"
)

// ParsePaths splits pasted text into file paths the way terminals emit them
// when files are dropped: separated by whitespace, with spaces either
// backslash-escaped or quoted, optionally as file:// URLs.
func ParsePaths(s string) []string {
	var (
		paths []string
		cur   strings.Builder
		quote rune
		inTok bool
	)
	flush := func() {
		if inTok {
			paths = append(paths, fromURL(cur.String()))
		}
		cur.Reset()
		inTok = false
	}

	runes := []rune(strings.TrimSpace(s))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\' && i+1 < len(runes):
			i++
			cur.WriteRune(runes[i])
			inTok = true
		case r == '\'' || r == '"':
			quote = r
			inTok = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			inTok = true
		}
	}
	flush()
	return paths
}

func fromURL(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil {
		return p
	}
	return u.Path
}

// DroppedFiles returns the paths in a paste if every one of them is an
// existing regular file, and nil otherwise. A nil result means the paste
// should be treated as text.
func DroppedFiles(content string) []string {
	paths := ParsePaths(content)
	if len(paths) == 0 {
		return nil
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
	}
	return paths
}
