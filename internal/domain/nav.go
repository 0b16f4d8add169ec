package domain

import "time"

const (
	// DefaultScrollOffset compensates for the fixed nav height, in pixels.
	DefaultScrollOffset = 80

	NavScrollDuration  = 500 * time.Millisecond
	HeroScrollDuration = 1000 * time.Millisecond
)

// NavItem is one scroll-to-section link.
type NavItem struct {
	Anchor string
	Label  string
}

// NavItems returns one item per category, in display order.
func (c *Catalog) NavItems() []NavItem {
	items := make([]NavItem, 0, len(c.Categories))
	for _, cat := range c.Categories {
		items = append(items, NavItem{Anchor: cat.Slug, Label: cat.NavLabel})
	}
	return items
}

// ScrollSpec describes an animated jump to a section anchor.
type ScrollSpec struct {
	Offset   int
	Duration time.Duration
}

// NewScrollSpec returns a spec with the given offset; negative offsets are clamped to zero.
func NewScrollSpec(offset int, duration time.Duration) ScrollSpec {
	if offset < 0 {
		offset = 0
	}
	return ScrollSpec{Offset: offset, Duration: duration}
}

// Target returns the scroll position that puts a section whose top is at
// sectionTop just below the fixed nav.
func (s ScrollSpec) Target(sectionTop int) int {
	return sectionTop - s.Offset
}

// DurationMillis is the animation duration as the script expects it.
func (s ScrollSpec) DurationMillis() int64 {
	return s.Duration.Milliseconds()
}
