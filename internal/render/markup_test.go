package render

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

func TestNewMarkupUnknownMode(t *testing.T) {
	if _, err := NewMarkup("wiki"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	for _, mode := range []MarkupMode{"", MarkupHTML, MarkupSanitized, MarkupMarkdown} {
		if _, err := NewMarkup(mode); err != nil {
			t.Errorf("NewMarkup(%q): %v", mode, err)
		}
	}
}

func TestMarkupHTMLVerbatim(t *testing.T) {
	m, _ := NewMarkup(MarkupHTML)
	in := `<b>bold</b><script>x()</script>`
	if got := string(m.Trusted(in)); got != in {
		t.Errorf("html mode changed input: %q", got)
	}
}

func TestMarkupSanitized(t *testing.T) {
	m, _ := NewMarkup(MarkupSanitized)
	got := string(m.Trusted(`<b>ok</b><script>alert(1)</script><a href="javascript:x()">bad</a>`))
	if strings.Contains(got, "<script") || strings.Contains(got, "javascript:") {
		t.Errorf("unsafe markup survived: %q", got)
	}
	if !strings.Contains(got, "<b>ok</b>") {
		t.Errorf("formatting lost: %q", got)
	}

	link := string(m.Trusted(`<a href="https://stanford.edu">Stanford</a>`))
	if !strings.Contains(link, `target="_blank"`) || !strings.Contains(link, "noreferrer") {
		t.Errorf("external link not hardened: %q", link)
	}
}

func TestMarkupMarkdown(t *testing.T) {
	m, _ := NewMarkup(MarkupMarkdown)
	if got := string(m.Trusted("a **x** b")); got != "a <strong>x</strong> b" {
		t.Errorf("single paragraph = %q", got)
	}
	if got := string(m.Trusted("one\n\ntwo")); strings.Count(got, "<p>") != 2 {
		t.Errorf("two paragraphs should keep their wrappers: %q", got)
	}
	auto := FormatTextWithLinks("at Stanford", links("Stanford", "https://stanford.edu"))
	if got := string(m.Trusted(auto)); !strings.Contains(got, `<a href="https://stanford.edu"`) {
		t.Errorf("inline anchors should pass through: %q", got)
	}
}

func TestMarkupFlowsThroughNews(t *testing.T) {
	m, _ := NewMarkup(MarkupSanitized)
	doc := newsDoc(t, New(Options{Markup: m}), "hi<script>x</script>")
	if strings.Contains(doc, "<script") {
		t.Errorf("sanitized news kept script: %s", doc)
	}
}

func newsDoc(t *testing.T, r *Renderer, text string) string {
	t.Helper()
	doc := page.NewDefault()
	if err := r.News(doc, &content.SiteContent{News: []content.NewsItem{{Text: text}}}); err != nil {
		t.Fatal(err)
	}
	return hookHTML(t, doc, page.NewsList)
}
