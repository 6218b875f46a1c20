package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrolled(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{49.5, false},
		{50, false},
		{50.1, true},
		{800, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Scrolled(tt.offset), "offset %v", tt.offset)
	}
}

func TestNavigation(t *testing.T) {
	n := NewNavigation()
	assert.False(t, n.Scrolled)
	assert.False(t, n.MenuOpen)
	assert.Equal(t, "engineers", n.Apply)

	n.OnScroll(120)
	assert.True(t, n.Scrolled)
	n.OnScroll(10)
	assert.False(t, n.Scrolled)

	n.ToggleMenu()
	assert.True(t, n.MenuOpen)
	assert.Equal(t, "projects", n.Navigate("#projects"))
	assert.False(t, n.MenuOpen)

	// navigating with the menu closed leaves it closed
	assert.Equal(t, "about", n.Navigate("about"))
	assert.False(t, n.MenuOpen)
}

func TestNavLinksPointAtSections(t *testing.T) {
	for _, l := range NavLinks {
		assert.Contains(t, HomeSections, l.Anchor)
	}
}
