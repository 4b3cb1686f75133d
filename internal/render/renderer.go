package render

import (
	"path"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

// DefaultIconDir is where publication and award icons live on the site.
const DefaultIconDir = "images/icon"

// Options configure a Renderer.
type Options struct {
	// Markup handles fields that carry markup. Nil means verbatim HTML.
	Markup Markup

	// HighlightAuthor is the author name emphasized in publication lists.
	// Empty disables highlighting.
	HighlightAuthor string

	// IconDir is the site path holding link and award icons.
	IconDir string
}

// Renderer maps a content document onto the hook elements of a page.
// Every section method replaces its targets wholesale, so running a
// section twice leaves the same page as running it once.
type Renderer struct {
	markup          Markup
	highlightAuthor string
	iconDir         string
}

// New creates a Renderer, filling unset options with defaults.
func New(opts Options) *Renderer {
	r := &Renderer{
		markup:          opts.Markup,
		highlightAuthor: opts.HighlightAuthor,
		iconDir:         opts.IconDir,
	}
	if r.markup == nil {
		r.markup = rawMarkup{}
	}
	if r.iconDir == "" {
		r.iconDir = DefaultIconDir
	}
	return r
}

// Section is one named renderer.
type Section struct {
	Name   string
	Render func(*page.Document, *content.SiteContent) error
}

// Sections returns the section renderers in the order a page load runs
// them.
func (r *Renderer) Sections() []Section {
	return []Section{
		{Name: "about", Render: r.About},
		{Name: "news", Render: r.News},
		{Name: "awards", Render: r.Awards},
		{Name: "publications", Render: r.Publications},
		{Name: "sidebar", Render: r.Sidebar},
		{Name: "footer", Render: r.Footer},
	}
}

func (r *Renderer) icon(file string) string {
	return path.Join(r.iconDir, file)
}

// HighlightAuthor returns the author name emphasized in publication lists.
func (r *Renderer) HighlightAuthor() string { return r.highlightAuthor }

// WithHighlightAuthor returns a copy of r that emphasizes name.
func (r *Renderer) WithHighlightAuthor(name string) *Renderer {
	cp := *r
	cp.highlightAuthor = name
	return &cp
}
