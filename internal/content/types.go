package content

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BeforeSentinel is the publication year label that always sorts after
// every numeric year.
const BeforeSentinel = "Before 2021"

// UnknownYear labels publications that carry no year at all.
const UnknownYear = "Unknown"

// Links maps a literal phrase (or link label) to a URL, keeping the order
// the keys appear in the source document.
type Links = orderedmap.OrderedMap[string, string]

// SiteContent is the single document that drives the whole homepage.
// It is decoded once per page load and never mutated afterwards.
type SiteContent struct {
	Personal     *Personal     `json:"personal,omitempty" yaml:"personal,omitempty"`
	Bio          *Bio          `json:"bio,omitempty" yaml:"bio,omitempty"`
	Sidebar      *Sidebar      `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	News         []NewsItem    `json:"news,omitempty" yaml:"news,omitempty"`
	Awards       []Award       `json:"awards,omitempty" yaml:"awards,omitempty"`
	Publications []Publication `json:"publications,omitempty" yaml:"publications,omitempty"`
	LastUpdate   string        `json:"lastUpdate,omitempty" yaml:"lastUpdate,omitempty"`
}

// Personal holds the profile block shown at the top of the page.
type Personal struct {
	Name            string  `json:"name,omitempty" yaml:"name,omitempty"`
	Title           string  `json:"title,omitempty" yaml:"title,omitempty"`
	Photo           string  `json:"photo,omitempty" yaml:"photo,omitempty"`
	PhotoCaption    string  `json:"photoCaption,omitempty" yaml:"photoCaption,omitempty"`
	PhotoCredit     string  `json:"photoCredit,omitempty" yaml:"photoCredit,omitempty"`
	PhotoCreditLink string  `json:"photoCreditLink,omitempty" yaml:"photoCreditLink,omitempty"`
	PhotoCreditName string  `json:"photoCreditName,omitempty" yaml:"photoCreditName,omitempty"`
	Email           string  `json:"email,omitempty" yaml:"email,omitempty"`
	Social          *Social `json:"social,omitempty" yaml:"social,omitempty"`
}

// HasCaption reports whether any part of the photo caption is set.
func (p *Personal) HasCaption() bool {
	return p.PhotoCaption != "" || p.PhotoCredit != "" || p.PhotoCreditName != ""
}

// Social lists the four outbound profiles rendered next to the name.
// When the block is present, all four entries are required.
type Social struct {
	Twitter  *SocialLink `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Scholar  *SocialLink `json:"scholar,omitempty" yaml:"scholar,omitempty"`
	LinkedIn *SocialLink `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub   *SocialLink `json:"github,omitempty" yaml:"github,omitempty"`
}

// SocialLink is a single profile URL with an optional handle or icon.
type SocialLink struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Handle string `json:"handle,omitempty" yaml:"handle,omitempty"`
	Icon   string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Bio is either one text blob or an ordered list of paragraphs, plus the
// phrases that get auto-linked inside it.
type Bio struct {
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Links      *Links   `json:"links,omitempty" yaml:"links,omitempty"`
}

// Sidebar carries the side panel data. Only Interests is rendered today.
type Sidebar struct {
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty"`
	Education []string `json:"education,omitempty" yaml:"education,omitempty"`
	Hobbies   []string `json:"hobbies,omitempty" yaml:"hobbies,omitempty"`
}

// NewsItem is one entry of the news list. Text is trusted markup.
type NewsItem struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	Important bool   `json:"important,omitempty" yaml:"important,omitempty"`
}

// Award is one entry of the honors list.
type Award struct {
	Year  Year   `json:"year,omitempty" yaml:"year,omitempty"`
	Award string `json:"award,omitempty" yaml:"award,omitempty"`
	Paper string `json:"paper,omitempty" yaml:"paper,omitempty"`
}

// Publication is one paper. Authors, Venue and Title are required.
type Publication struct {
	Year       Year     `json:"year,omitempty" yaml:"year,omitempty"`
	Venue      string   `json:"venue,omitempty" yaml:"venue,omitempty"`
	VenueClass string   `json:"venueClass,omitempty" yaml:"venueClass,omitempty"`
	Authors    []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	URL        string   `json:"url,omitempty" yaml:"url,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Note       string   `json:"note,omitempty" yaml:"note,omitempty"`
	Award      string   `json:"award,omitempty" yaml:"award,omitempty"`
	Links      *Links   `json:"links,omitempty" yaml:"links,omitempty"`
}

// GroupLabel returns the heading this publication is grouped under. A missing
// or zero year groups under UnknownYear.
func (p Publication) GroupLabel() string {
	if p.Year == "" || p.Year == "0" {
		return UnknownYear
	}
	return string(p.Year)
}
