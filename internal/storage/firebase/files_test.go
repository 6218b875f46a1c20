package firebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadURL(t *testing.T) {
	got := DownloadURL("ep.appspot.com", "uploads/2026/03/abc_cv.pdf", "tok")
	assert.Equal(t,
		"https://firebasestorage.googleapis.com/v0/b/ep.appspot.com/o/uploads%2F2026%2F03%2Fabc_cv.pdf?alt=media&token=tok",
		got)
}
