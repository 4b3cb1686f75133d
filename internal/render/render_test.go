package render

import (
	"errors"
	"strings"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

func links(kv ...string) *content.Links {
	m := orderedmap.New[string, string]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

func fullSocial() *content.Social {
	return &content.Social{
		Twitter:  &content.SocialLink{URL: "https://x.com/ada", Handle: "@ada"},
		Scholar:  &content.SocialLink{URL: "https://scholar.example/ada", Icon: "images/icon/scholar.png"},
		LinkedIn: &content.SocialLink{URL: "https://linkedin.example/ada", Icon: "images/icon/linkedin.png"},
		GitHub:   &content.SocialLink{URL: "https://github.com/ada", Icon: "images/icon/github.png"},
	}
}

func sampleContent() *content.SiteContent {
	return &content.SiteContent{
		Personal: &content.Personal{
			Name:            "Ada Lovelace",
			Title:           "PhD Student <CS>",
			Photo:           "images/ada.jpg",
			PhotoCaption:    "At the <em>lab</em>",
			PhotoCredit:     "Photo by",
			PhotoCreditLink: "https://photos.example",
			PhotoCreditName: "Charles",
			Email:           "ada@example.com",
			Social:          fullSocial(),
		},
		Bio: &content.Bio{
			Paragraphs: []string{"I study at Stanford daily.", "Formerly at MIT."},
			Links:      links("Stanford", "https://stanford.edu", "MIT", "https://mit.edu"),
		},
		Sidebar: &content.Sidebar{Interests: []string{"NLP", "Fairness"}},
		News: []content.NewsItem{
			{Text: "Paper <b>accepted</b>", Date: "2025-05", Important: true},
			{Text: "Gave a talk"},
		},
		Awards: []content.Award{
			{Year: "2024", Award: "Best Paper", Paper: "On Things"},
			{Year: "2022", Award: "Fellowship"},
		},
		Publications: []content.Publication{
			{Year: "2023", Venue: "ACL", Authors: []string{"Ada Lovelace", "Alan Turing"}, Title: "A"},
			{Year: content.BeforeSentinel, Venue: "EMNLP", Authors: []string{"Ada Lovelace"}, Title: "Old"},
			{Year: "2025", Venue: "NAACL", VenueClass: "badge-oral", Authors: []string{"Grace Hopper"}, Title: "B",
				Links: links("GitHub Code", "https://github.com/x", "Video Demo", "https://v.example")},
			{Year: "2023", Venue: "ACL", Authors: []string{"Ada Lovelace"}, Title: "C", Tags: []string{"nlp", "ethics"}},
		},
		LastUpdate: "June 2025",
	}
}

func hookHTML(t *testing.T, doc *page.Document, h page.Hook) string {
	t.Helper()
	el, ok := doc.Hook(h)
	if !ok {
		t.Fatalf("hook %s missing", h)
	}
	return string(el.HTML())
}

func TestFormatTextWithLinks(t *testing.T) {
	got := FormatTextWithLinks("I study at Stanford daily", links("Stanford", "https://stanford.edu"))
	want := `I study at <a href="https://stanford.edu" target="_blank" rel="noopener noreferrer">Stanford</a> daily`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestFormatTextWithLinksWholeWordOnly(t *testing.T) {
	l := links("MIT", "https://mit.edu")
	tests := []struct {
		in   string
		want int
	}{
		{"MIT and MIT again", 2},
		{"SMITH is not MITx", 0},
		{"mit lower case", 0},
		{"(MIT)", 1},
	}
	for _, tt := range tests {
		got := strings.Count(FormatTextWithLinks(tt.in, l), "<a ")
		if got != tt.want {
			t.Errorf("FormatTextWithLinks(%q) made %d links, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatTextWithLinksNoLinks(t *testing.T) {
	if got := FormatTextWithLinks("plain text", nil); got != "plain text" {
		t.Errorf("nil links should leave text untouched, got %q", got)
	}
}

func TestFormatTextWithLinksPhraseWithMetacharacters(t *testing.T) {
	got := FormatTextWithLinks("I like C.S. a lot", links("C.S", "https://cs.example"))
	if !strings.Contains(got, `>C.S</a>`) {
		t.Errorf("phrase with dots should be matched literally: %s", got)
	}
	if strings.Contains(FormatTextWithLinks("I like CxS", links("C.S", "https://cs.example")), "<a") {
		t.Error("dot in a phrase must not act as a wildcard")
	}
}

func TestLinkIconPrecedence(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"GitHub", IconGitHub},
		{"Code (github)", IconGitHub},
		{"Video", IconVideo},
		{"Video Demo", IconVideo},
		{"Demo Video", IconVideo},
		{"GitHub Video Demo", IconGitHub},
		{"Live DEMO", IconDemo},
		{"Paper", IconLink},
		{"", IconLink},
	}
	for _, tt := range tests {
		if got := LinkIcon(tt.label); got != tt.want {
			t.Errorf("LinkIcon(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSidebar(t *testing.T) {
	doc := page.NewDefault()
	r := New(Options{})
	if err := r.Sidebar(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	out := hookHTML(t, doc, page.SidebarContent)
	if strings.Count(out, `class="interest-tag"`) != 2 {
		t.Errorf("want exactly two tags:\n%s", out)
	}
	if !strings.Contains(out, "Research Interests") {
		t.Error("missing Research Interests heading")
	}
	if strings.Index(out, ">NLP<") > strings.Index(out, ">Fairness<") {
		t.Error("interests out of order")
	}
}

func TestSidebarAbsent(t *testing.T) {
	doc := page.NewDefault()
	if err := New(Options{}).Sidebar(doc, &content.SiteContent{}); err != nil {
		t.Fatal(err)
	}
	if hookHTML(t, doc, page.SidebarContent) != "" {
		t.Error("absent sidebar should leave the hook untouched")
	}
	// Disabled hook with data present: nothing happens, nothing fails.
	if err := New(Options{}).Sidebar(page.New(), sampleContent()); err != nil {
		t.Fatal(err)
	}
}

func TestNews(t *testing.T) {
	doc := page.NewDefault()
	if err := New(Options{}).News(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	out := hookHTML(t, doc, page.NewsList)
	if !strings.Contains(out, `<li class="news-item important"><span class="news-date">2025-05</span>Paper <b>accepted</b></li>`) {
		t.Errorf("important item wrong:\n%s", out)
	}
	if !strings.Contains(out, `<li class="news-item">Gave a talk</li>`) {
		t.Errorf("plain item wrong:\n%s", out)
	}
}

func TestAwardsVisibility(t *testing.T) {
	tests := []struct {
		name   string
		awards []content.Award
		hidden bool
	}{
		{"absent", nil, true},
		{"empty", []content.Award{}, true},
		{"present", []content.Award{{Year: "2024", Award: "Best Paper"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := page.NewDefault()
			if err := New(Options{}).Awards(doc, &content.SiteContent{Awards: tt.awards}); err != nil {
				t.Fatal(err)
			}
			section, _ := doc.Hook(page.AwardsSection)
			if section.Hidden() != tt.hidden {
				t.Errorf("hidden = %v, want %v", section.Hidden(), tt.hidden)
			}
		})
	}
}

func TestAwardsContent(t *testing.T) {
	doc := page.NewDefault()
	if err := New(Options{}).Awards(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	out := hookHTML(t, doc, page.AwardsList)
	if strings.Count(out, `class="work-block"`) != 2 {
		t.Errorf("want two award blocks:\n%s", out)
	}
	if strings.Count(out, "<p>") != 1 || !strings.Contains(out, "<p>On Things</p>") {
		t.Errorf("paper line should appear only for the award that has one:\n%s", out)
	}
}

func TestNumericYearsRender(t *testing.T) {
	src := `{
  "awards": [{"year": 0, "award": "Founders Prize"}],
  "publications": [
    {"year": 2024.0, "venue": "ACL", "authors": ["A"], "title": "One"},
    {"year": 2023, "venue": "ACL", "authors": ["B"], "title": "Two"},
    {"year": 2024, "venue": "EMNLP", "authors": ["C"], "title": "Three"}
  ]
}`
	c, err := content.Decode(strings.NewReader(src), content.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	r := New(Options{})
	doc := page.NewDefault()
	if err := r.Awards(doc, c); err != nil {
		t.Fatal(err)
	}
	if err := r.Publications(doc, c); err != nil {
		t.Fatal(err)
	}

	if awards := hookHTML(t, doc, page.AwardsList); !strings.Contains(awards, `<div class="work-period">0</div>`) {
		t.Errorf("zero award year should print as 0:\n%s", awards)
	}
	pubs := hookHTML(t, doc, page.IncludedPubs)
	if strings.Contains(pubs, "2024.0") {
		t.Errorf("2024.0 should merge into the 2024 group:\n%s", pubs)
	}
	if n := strings.Count(pubs, `<h3 class="subsection-title">2024</h3>`); n != 1 {
		t.Errorf("2024 heading appears %d times, want 1", n)
	}
}

func TestPublicationsVisibility(t *testing.T) {
	for _, pubs := range [][]content.Publication{nil, {}} {
		doc := page.NewDefault()
		if err := New(Options{}).Publications(doc, &content.SiteContent{Publications: pubs}); err != nil {
			t.Fatal(err)
		}
		section, _ := doc.Hook(page.PublicationSection)
		if !section.Hidden() {
			t.Errorf("publications %v: section should be hidden", pubs)
		}
	}

	doc := page.NewDefault()
	if err := New(Options{}).Publications(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	section, _ := doc.Hook(page.PublicationSection)
	if section.Hidden() {
		t.Error("section should be visible with publications")
	}
}

func TestPublicationsYearOrder(t *testing.T) {
	doc := page.NewDefault()
	if err := New(Options{}).Publications(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	out := hookHTML(t, doc, page.IncludedPubs)

	headings := []string{
		`<h3 class="subsection-title">2025</h3>`,
		`<h3 class="subsection-title">2023</h3>`,
		`<h3 class="subsection-title">Before 2021</h3>`,
	}
	last := -1
	for _, h := range headings {
		if strings.Count(out, h) != 1 {
			t.Fatalf("heading %s should appear once:\n%s", h, out)
		}
		idx := strings.Index(out, h)
		if idx < last {
			t.Errorf("heading %s out of order", h)
		}
		last = idx
	}
	if strings.Count(out, `class="subsection-title"`) != 3 {
		t.Error("want one subheading per distinct year")
	}
	// Items keep their relative order inside a year.
	if strings.Index(out, ">A</a>") > strings.Index(out, ">C</a>") {
		t.Error("2023 items out of document order")
	}
}

func TestGroupByYear(t *testing.T) {
	pubs := []content.Publication{
		{Year: content.BeforeSentinel, Title: "s"},
		{Year: "2019", Title: "a"},
		{Title: "unknown"},
		{Year: "2024", Title: "b"},
		{Year: "Workshop", Title: "w"},
		{Year: "2021", Title: "c"},
	}
	var labels []string
	for _, g := range GroupByYear(pubs) {
		labels = append(labels, g.Label)
	}
	want := "2024,2021,2019,Unknown,Workshop,Before 2021"
	if got := strings.Join(labels, ","); got != want {
		t.Errorf("group order = %s, want %s", got, want)
	}
}

func TestPublicationItem(t *testing.T) {
	r := New(Options{HighlightAuthor: "Ada Lovelace", IconDir: "static/icons"})
	pub := sampleContent().Publications[2]
	pub.Authors = []string{"Grace Hopper", "Ada Lovelace*"}
	pub.Award = "Outstanding Paper"
	pub.Note = "Oral"

	out, err := r.PublicationItem(pub)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	for _, want := range []string{
		`<span class="badge badge-oral">NAACL</span>`,
		`Grace Hopper, <strong>Ada Lovelace*</strong>`,
		`href="#"`,
		`<img src="static/icons/github_square.png" alt="GitHub Code"`,
		`<img src="static/icons/video.png" alt="Video Demo"`,
		`<img src="static/icons/award.png" alt="Award"> Outstanding Paper`,
		`<div class="publication-note">Oral</div>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in:\n%s", want, s)
		}
	}
	if strings.Index(s, "github_square.png") > strings.Index(s, "video.png") {
		t.Error("links out of document order")
	}
	if strings.Contains(s, "publication-tags") {
		t.Error("tag line should be omitted without tags")
	}
}

func TestPublicationItemNoHighlightConfigured(t *testing.T) {
	out, err := New(Options{}).PublicationItem(sampleContent().Publications[0])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<strong>") {
		t.Error("no author should be emphasized without a highlight name")
	}
}

func TestPublicationItemMalformed(t *testing.T) {
	r := New(Options{})
	for _, pub := range []content.Publication{
		{Venue: "ACL", Title: "No authors"},
		{Venue: "ACL", Authors: []string{"A"}},
		{Title: "No venue", Authors: []string{"A"}},
	} {
		_, err := r.PublicationItem(pub)
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Errorf("%+v: expected MalformedError, got %v", pub, err)
		}
	}
}

func TestAbout(t *testing.T) {
	doc := page.NewDefault()
	if err := New(Options{}).About(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}

	img, _ := doc.Hook(page.ProfileImage)
	if img.Attr("src") != "images/ada.jpg" || img.Attr("alt") != "Ada Lovelace" {
		t.Errorf("profile image attrs = %q %q", img.Attr("src"), img.Attr("alt"))
	}

	caption := hookHTML(t, doc, page.PhotoCaption)
	if !strings.Contains(caption, "At the <em>lab</em><br>") || !strings.Contains(caption, `Photo by <a href="https://photos.example">Charles</a>`) {
		t.Errorf("caption = %s", caption)
	}

	name := hookHTML(t, doc, page.ProfileName)
	if !strings.HasPrefix(name, "Ada Lovelace") || !strings.Contains(name, "Follow @ada") {
		t.Errorf("profile name = %s", name)
	}
	order := []string{"twitter-follow-button", "Google Scholar", "LinkedIn", "GitHub"}
	last := -1
	for _, o := range order {
		idx := strings.Index(name, o)
		if idx < last {
			t.Errorf("social link %s out of order", o)
		}
		last = idx
	}

	if got := hookHTML(t, doc, page.ProfileTitle); got != "PhD Student &lt;CS&gt;" {
		t.Errorf("title should be plain text, got %q", got)
	}

	bio := hookHTML(t, doc, page.BioText)
	if strings.Count(bio, "<p>") != 2 || !strings.Contains(bio, `<a href="https://mit.edu"`) {
		t.Errorf("bio = %s", bio)
	}

	email, _ := doc.Hook(page.ContactEmail)
	if email.Attr("href") != "mailto:ada@example.com" || string(email.HTML()) != "ada@example.com" {
		t.Errorf("contact email = %q / %q", email.Attr("href"), email.HTML())
	}
}

func TestAboutBioText(t *testing.T) {
	doc := page.NewDefault()
	c := &content.SiteContent{Bio: &content.Bio{
		Text:  "I study at Stanford daily",
		Links: links("Stanford", "https://stanford.edu"),
	}}
	if err := New(Options{}).About(doc, c); err != nil {
		t.Fatal(err)
	}
	bio := hookHTML(t, doc, page.BioText)
	if strings.Contains(bio, "<p>") || !strings.Contains(bio, ">Stanford</a> daily") {
		t.Errorf("bio text = %s", bio)
	}
	// No personal block: profile hooks stay untouched.
	if hookHTML(t, doc, page.ProfileName) != "" {
		t.Error("profile name should stay empty without personal data")
	}
}

func TestAboutPartialHooks(t *testing.T) {
	doc := page.New(page.ProfileTitle)
	if err := New(Options{}).About(doc, sampleContent()); err != nil {
		t.Fatal(err)
	}
	if hookHTML(t, doc, page.ProfileTitle) == "" {
		t.Error("a missing hook must not stop the other updates")
	}
}

func TestSocialLinksIncomplete(t *testing.T) {
	social := fullSocial()
	social.LinkedIn = nil
	_, err := SocialLinks(social)
	var me *MalformedError
	if !errors.As(err, &me) || me.Field != "personal.social.linkedin" {
		t.Fatalf("expected MalformedError for linkedin, got %v", err)
	}

	out, err := SocialLinks(nil)
	if err != nil || out != "" {
		t.Errorf("nil social should render nothing, got %q, %v", out, err)
	}
}

func TestFooter(t *testing.T) {
	doc := page.NewDefault()
	c := &content.SiteContent{LastUpdate: "June <2025>"}
	if err := New(Options{}).Footer(doc, c); err != nil {
		t.Fatal(err)
	}
	if got := hookHTML(t, doc, page.FooterDate); got != "June &lt;2025&gt;" {
		t.Errorf("footer = %q", got)
	}
}

func TestSectionsIdempotent(t *testing.T) {
	r := New(Options{HighlightAuthor: "Ada Lovelace"})
	c := sampleContent()

	for _, sec := range r.Sections() {
		doc := page.NewDefault()
		if err := sec.Render(doc, c); err != nil {
			t.Fatalf("%s: %v", sec.Name, err)
		}
		first := snapshot(doc)
		if err := sec.Render(doc, c); err != nil {
			t.Fatalf("%s second run: %v", sec.Name, err)
		}
		if second := snapshot(doc); second != first {
			t.Errorf("%s is not idempotent", sec.Name)
		}
	}
}

func TestSectionsOrder(t *testing.T) {
	var names []string
	for _, sec := range New(Options{}).Sections() {
		names = append(names, sec.Name)
	}
	if got := strings.Join(names, ","); got != "about,news,awards,publications,sidebar,footer" {
		t.Errorf("section order = %s", got)
	}
}

func snapshot(doc *page.Document) string {
	var b strings.Builder
	for _, h := range page.AllHooks {
		el, _ := doc.Hook(h)
		b.WriteString(string(h) + "|" + string(el.HTML()) + "|" + el.Attr("src") + el.Attr("href") + "|")
		if el.Hidden() {
			b.WriteString("hidden")
		}
		b.WriteString("\n")
	}
	return b.String()
}
