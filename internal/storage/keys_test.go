package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"cv.pdf":                "cv.pdf",
		"My CV (final).docx":    "My_CV__final_.docx",
		"../../etc/passwd":      "passwd",
		`C:\Users\ana\cv.pdf`:   "cv.pdf",
		"résumé.pdf":            "r_sum_.pdf",
		"":                      "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFileName(in), in)
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "uploads/2026/03/abc_cv.pdf", ObjectKey("cv.pdf", "abc", now))
}
