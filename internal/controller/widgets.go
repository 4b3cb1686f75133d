package controller

import "github.com/ziadkadry99/homepage/internal/page"

// TwitterWidgetsScript is the platform script that upgrades follow links
// into Twitter buttons.
const TwitterWidgetsScript = "https://platform.twitter.com/widgets.js"

// Widget is a third-party embed that has to rescan the page after content
// has been inserted.
type Widget interface {
	Reload(doc *page.Document)
}

// TwitterWidget loads the Twitter platform script so follow links render
// as buttons.
type TwitterWidget struct{}

// Reload adds the platform script to doc once.
func (TwitterWidget) Reload(doc *page.Document) {
	doc.AddScript(TwitterWidgetsScript)
}
