package page

const (
	// ScrollThreshold is the vertical offset in px past which the navbar
	// gets the scrolled class.
	ScrollThreshold = 50

	// HeaderOffset is the fixed header allowance in px kept above a
	// smooth-scroll target.
	HeaderOffset = 70
)

// Behaviors are the incidental UI affordances installed on every page. The
// layout emits them as an inline script; a bare "#" anchor and fragments
// with no matching element are left to the browser.
type Behaviors struct {
	ScrollThreshold int
	HeaderOffset    int
}

// DefaultBehaviors returns the fixed thresholds.
func DefaultBehaviors() Behaviors {
	return Behaviors{ScrollThreshold: ScrollThreshold, HeaderOffset: HeaderOffset}
}

// InstallBehaviors attaches b to the document. Installing again keeps the
// first installation.
func (d *Document) InstallBehaviors(b Behaviors) {
	if d.behaviors != nil {
		return
	}
	d.behaviors = &b
}

// Behaviors returns the installed behaviors, or nil.
func (d *Document) Behaviors() *Behaviors { return d.behaviors }
