package render

import (
	"html"
	"regexp"

	"github.com/ziadkadry99/homepage/internal/content"
)

// FormatTextWithLinks wraps every whole-word, case-sensitive occurrence of
// each phrase in links with an anchor to its URL. Phrases are applied in
// document order; when one phrase contains another, later replacements can
// land inside earlier anchors.
func FormatTextWithLinks(text string, links *content.Links) string {
	formatted := text
	for pair := links.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(pair.Key) + `\b`)
		if err != nil {
			continue
		}
		anchor := `<a href="` + html.EscapeString(pair.Value) + `" target="_blank" rel="noopener noreferrer">` + pair.Key + `</a>`
		formatted = re.ReplaceAllLiteralString(formatted, anchor)
	}
	return formatted
}
