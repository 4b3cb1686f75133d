package render

import (
	"bytes"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkupMode selects how content fields that carry markup (bio, photo
// caption, news bodies, publication notes and awards) reach the page.
type MarkupMode string

const (
	// MarkupHTML inserts the fields verbatim. The content document is
	// trusted: whoever edits it can put any HTML on the page.
	MarkupHTML MarkupMode = "html"

	// MarkupSanitized strips scripts, handlers and unsafe URLs but keeps
	// ordinary formatting and links.
	MarkupSanitized MarkupMode = "sanitized"

	// MarkupMarkdown treats the fields as Markdown. Inline HTML is passed
	// through so auto-links survive.
	MarkupMarkdown MarkupMode = "markdown"
)

// MarkupModes lists every accepted mode.
var MarkupModes = []MarkupMode{MarkupHTML, MarkupSanitized, MarkupMarkdown}

// Validate returns an error unless m is empty or one of MarkupModes.
func (m MarkupMode) Validate() error {
	if m == "" || slices.Contains(MarkupModes, m) {
		return nil
	}
	names := make([]string, len(MarkupModes))
	for i, mode := range MarkupModes {
		names[i] = string(mode)
	}
	return fmt.Errorf("unknown markup mode %q: must be one of %s", m, strings.Join(names, ", "))
}

// Markup turns a markup-carrying field into HTML for the page.
type Markup interface {
	Trusted(s string) template.HTML
}

// NewMarkup returns the Markup for mode. The empty mode means MarkupHTML.
func NewMarkup(mode MarkupMode) (Markup, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	switch mode {
	case MarkupSanitized:
		return newSanitizedMarkup(), nil
	case MarkupMarkdown:
		return newMarkdownMarkup(), nil
	}
	return rawMarkup{}, nil
}

type rawMarkup struct{}

func (rawMarkup) Trusted(s string) template.HTML { return template.HTML(s) }

type sanitizedMarkup struct {
	policy *bluemonday.Policy
}

func newSanitizedMarkup() *sanitizedMarkup {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	return &sanitizedMarkup{policy: p}
}

func (m *sanitizedMarkup) Trusted(s string) template.HTML {
	return template.HTML(m.policy.Sanitize(s))
}

type markdownMarkup struct {
	md goldmark.Markdown
}

func newMarkdownMarkup() *markdownMarkup {
	return &markdownMarkup{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Trusted converts s. A result that is a single paragraph is unwrapped,
// since every field lands inside an element that already is a block.
func (m *markdownMarkup) Trusted(s string) template.HTML {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
