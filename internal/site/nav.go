package site

import "strings"

// ScrollThreshold is the vertical offset past which the header turns solid.
const ScrollThreshold = 50

type NavLink struct {
	Name   string
	Anchor string
}

// NavLinks are the header links, in display order.
var NavLinks = []NavLink{
	{Name: "About", Anchor: "about"},
	{Name: "For Companies", Anchor: "companies"},
	{Name: "For Engineers", Anchor: "engineers"},
	{Name: "Submit a Project", Anchor: "projects"},
}

// ApplyAnchor is where the header's "Apply Now" button scrolls to.
const ApplyAnchor = "engineers"

// Navigation holds the header's UI flags.
type Navigation struct {
	Scrolled   bool
	MenuOpen   bool
	Links      []NavLink
	ApplyLabel string
	Apply      string
}

func NewNavigation() *Navigation {
	return &Navigation{Links: NavLinks, ApplyLabel: "Apply Now", Apply: ApplyAnchor}
}

// Scrolled reports whether offset is past ScrollThreshold.
func Scrolled(offset float64) bool {
	return offset > ScrollThreshold
}

// OnScroll updates the scrolled flag.
func (n *Navigation) OnScroll(offset float64) {
	n.Scrolled = Scrolled(offset)
}

func (n *Navigation) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// Navigate closes the mobile menu and returns the anchor id to scroll to.
// href may be given with or without the leading '#'.
func (n *Navigation) Navigate(href string) string {
	n.MenuOpen = false
	return strings.TrimPrefix(href, "#")
}
