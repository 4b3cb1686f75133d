package render

import (
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

// Icon files for publication links and award badges.
const (
	IconGitHub = "github_square.png"
	IconVideo  = "video.png"
	IconDemo   = "video_new.png"
	IconLink   = "link.png"
	IconAward  = "award.png"
)

// YearGroup is the publications sharing one year label, in document order.
type YearGroup struct {
	Label        string
	Publications []content.Publication
}

// GroupByYear groups publications by year label. Numeric years come first,
// newest first; other labels follow in first-seen order; BeforeSentinel is
// always last.
func GroupByYear(pubs []content.Publication) []YearGroup {
	var groups []YearGroup
	index := make(map[string]int)
	for _, pub := range pubs {
		label := pub.GroupLabel()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, YearGroup{Label: label})
		}
		groups[i].Publications = append(groups[i].Publications, pub)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return yearBefore(groups[i].Label, groups[j].Label)
	})
	return groups
}

func yearBefore(a, b string) bool {
	if a == content.BeforeSentinel {
		return false
	}
	if b == content.BeforeSentinel {
		return true
	}
	na, aNum := parseYear(a)
	nb, bNum := parseYear(b)
	switch {
	case aNum && bNum:
		return na > nb
	case aNum:
		return true
	default:
		return false
	}
}

func parseYear(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}

// LinkIcon picks the icon file for a publication link label. Keywords are
// matched case-insensitively with precedence github, video, demo.
func LinkIcon(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "github"):
		return IconGitHub
	case strings.Contains(l, "video"):
		return IconVideo
	case strings.Contains(l, "demo"):
		return IconDemo
	default:
		return IconLink
	}
}

type yearView struct {
	Label string
	Items []template.HTML
}

// Publications replaces the publication list with every year group, or
// hides the publication section when the list is empty.
func (r *Renderer) Publications(doc *page.Document, c *content.SiteContent) error {
	el, ok := doc.Hook(page.IncludedPubs)
	if !ok {
		return nil
	}
	if len(c.Publications) == 0 {
		if section, ok := doc.Hook(page.PublicationSection); ok {
			section.Hide()
		}
		return nil
	}

	groups := GroupByYear(c.Publications)
	views := make([]yearView, 0, len(groups))
	for _, g := range groups {
		v := yearView{Label: g.Label}
		for _, pub := range g.Publications {
			item, err := r.PublicationItem(pub)
			if err != nil {
				return err
			}
			v.Items = append(v.Items, item)
		}
		views = append(views, v)
	}

	html, err := execute("publications", views)
	if err != nil {
		return err
	}
	el.SetHTML(html)
	return nil
}

type linkView struct {
	Label string
	URL   string
	Icon  string
}

// PublicationItem renders one publication entry.
func (r *Renderer) PublicationItem(pub content.Publication) (template.HTML, error) {
	switch {
	case pub.Authors == nil:
		return "", &MalformedError{Section: "publications", Field: fmt.Sprintf("authors of %q", pub.Title)}
	case pub.Title == "":
		return "", &MalformedError{Section: "publications", Field: "title"}
	case pub.Venue == "":
		return "", &MalformedError{Section: "publications", Field: fmt.Sprintf("venue of %q", pub.Title)}
	}

	var links []linkView
	for pair := pub.Links.Oldest(); pair != nil; pair = pair.Next() {
		links = append(links, linkView{
			Label: pair.Key,
			URL:   pair.Value,
			Icon:  r.icon(LinkIcon(pair.Key)),
		})
	}

	url := pub.URL
	if url == "" {
		url = "#"
	}

	return execute("publication-item", struct {
		Venue      string
		VenueClass string
		Authors    template.HTML
		Title      string
		URL        string
		HasTags    bool
		Tags       string
		Note       template.HTML
		Award      template.HTML
		AwardIcon  string
		HasLinks   bool
		Links      []linkView
	}{
		Venue:      pub.Venue,
		VenueClass: pub.VenueClass,
		Authors:    r.authors(pub.Authors),
		Title:      pub.Title,
		URL:        url,
		HasTags:    pub.Tags != nil,
		Tags:       strings.Join(pub.Tags, ", "),
		Note:       r.markup.Trusted(pub.Note),
		Award:      r.markup.Trusted(pub.Award),
		AwardIcon:  r.icon(IconAward),
		HasLinks:   pub.Links != nil,
		Links:      links,
	})
}

// authors joins author names with ", ", emphasizing the highlighted one.
func (r *Renderer) authors(names []string) template.HTML {
	parts := make([]string, len(names))
	for i, name := range names {
		escaped := template.HTMLEscapeString(name)
		if r.highlightAuthor != "" && strings.Contains(name, r.highlightAuthor) {
			escaped = "<strong>" + escaped + "</strong>"
		}
		parts[i] = escaped
	}
	return template.HTML(strings.Join(parts, ", "))
}
