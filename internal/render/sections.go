package render

import (
	"html/template"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

// Sidebar renders the research interests block.
func (r *Renderer) Sidebar(doc *page.Document, c *content.SiteContent) error {
	el, ok := doc.Hook(page.SidebarContent)
	if !ok || c.Sidebar == nil {
		return nil
	}
	if c.Sidebar.Interests == nil {
		el.SetHTML("")
		return nil
	}
	html, err := execute("sidebar", c.Sidebar.Interests)
	if err != nil {
		return err
	}
	el.SetHTML(html)
	return nil
}

type newsView struct {
	Date      string
	Important bool
	Body      template.HTML
}

// News renders the news list. Item bodies go through the markup policy.
func (r *Renderer) News(doc *page.Document, c *content.SiteContent) error {
	el, ok := doc.Hook(page.NewsList)
	if !ok || c.News == nil {
		return nil
	}
	items := make([]newsView, len(c.News))
	for i, n := range c.News {
		items[i] = newsView{
			Date:      n.Date,
			Important: n.Important,
			Body:      r.markup.Trusted(n.Text),
		}
	}
	html, err := execute("news", items)
	if err != nil {
		return err
	}
	el.SetHTML(html)
	return nil
}

// Awards renders the honors list, or hides the whole awards section when
// there is nothing to show.
func (r *Renderer) Awards(doc *page.Document, c *content.SiteContent) error {
	el, ok := doc.Hook(page.AwardsList)
	if !ok {
		return nil
	}
	if len(c.Awards) == 0 {
		if section, ok := doc.Hook(page.AwardsSection); ok {
			section.Hide()
		}
		return nil
	}
	html, err := execute("awards", c.Awards)
	if err != nil {
		return err
	}
	el.SetHTML(html)
	return nil
}

// Footer writes the last-update string as plain text.
func (r *Renderer) Footer(doc *page.Document, c *content.SiteContent) error {
	if el, ok := doc.Hook(page.FooterDate); ok {
		el.SetText(c.LastUpdate)
	}
	return nil
}
