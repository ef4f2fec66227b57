// Package viewport derives scroll-driven page state: navbar styling,
// scroll-to-top visibility and the active navigation section.
package viewport

// Section is a page section in document coordinates (pixels).
type Section struct {
	ID     string
	Top    int
	Height int
}

// Contains reports whether y falls inside the section.
func (s Section) Contains(y int) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Tracker holds the page thresholds.
type Tracker struct {
	NavbarThreshold    int // navbar is "scrolled" past this offset
	ScrollTopThreshold int // scroll-to-top button shows past this offset
	SectionOffset      int // added to the scroll offset when probing sections
	NavbarHeight       int // subtracted from a section top when scrolling to it
	Sections           []Section
}

// DefaultTracker returns a tracker with the standard thresholds and no sections.
func DefaultTracker() Tracker {
	return Tracker{
		NavbarThreshold:    50,
		ScrollTopThreshold: 500,
		SectionOffset:      150,
		NavbarHeight:       80,
	}
}

// State is the derived page state at one scroll offset.
type State struct {
	ScrollY          int
	NavbarScrolled   bool
	ScrollTopVisible bool
	ActiveSection    string // empty when no section contains the probe
}

// NavbarScrolled reports whether the navbar should use its scrolled style.
func (t Tracker) NavbarScrolled(y int) bool {
	return y > t.NavbarThreshold
}

// ScrollTopVisible reports whether the scroll-to-top button should show.
func (t Tracker) ScrollTopVisible(y int) bool {
	return y > t.ScrollTopThreshold
}

// ActiveSection returns the section highlighted at scroll offset y.
// When sections overlap the last one in document order wins.
func (t Tracker) ActiveSection(y int) (string, bool) {
	probe := y + t.SectionOffset

	var (
		id    string
		found bool
	)
	for _, s := range t.Sections {
		if s.Contains(probe) {
			id, found = s.ID, true
		}
	}
	return id, found
}

// ScrollTarget returns the offset to scroll to so section id sits below the
// navbar. ok is false for an unknown id.
func (t Tracker) ScrollTarget(id string) (int, bool) {
	for _, s := range t.Sections {
		if s.ID == id {
			return max(s.Top-t.NavbarHeight, 0), true
		}
	}
	return 0, false
}

// At derives the full page state at scroll offset y.
func (t Tracker) At(y int) State {
	active, _ := t.ActiveSection(y)
	return State{
		ScrollY:          y,
		NavbarScrolled:   t.NavbarScrolled(y),
		ScrollTopVisible: t.ScrollTopVisible(y),
		ActiveSection:    active,
	}
}
