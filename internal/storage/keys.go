package storage

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// ObjectKey builds the storage key for an uploaded file:
// uploads/{yyyy}/{mm}/{id}_{sanitized name}.
func ObjectKey(name, id string, now time.Time) string {
	return path.Join("uploads", now.UTC().Format("2006"), now.UTC().Format("01"),
		fmt.Sprintf("%s_%s", id, SanitizeFileName(name)))
}

// SanitizeFileName keeps letters, digits, dot, dash and underscore and
// replaces everything else with '_'. Directory parts are dropped.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
