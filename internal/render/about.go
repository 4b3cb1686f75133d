package render

import (
	"html/template"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
)

// About fills the profile block: photo, caption, name with social links,
// title, bio and contact email. Each target is updated only when both its
// hook and its data exist.
func (r *Renderer) About(doc *page.Document, c *content.SiteContent) error {
	p := c.Personal

	if el, ok := doc.Hook(page.ProfileImage); ok && p != nil && p.Photo != "" {
		el.SetAttr("src", p.Photo)
		el.SetAttr("alt", p.Name)
	}

	if el, ok := doc.Hook(page.PhotoCaption); ok && p != nil && p.HasCaption() {
		html, err := execute("caption", struct {
			Caption    template.HTML
			Credit     template.HTML
			CreditLink string
			CreditName string
		}{
			Caption:    r.markup.Trusted(p.PhotoCaption),
			Credit:     r.markup.Trusted(p.PhotoCredit),
			CreditLink: p.PhotoCreditLink,
			CreditName: p.PhotoCreditName,
		})
		if err != nil {
			return err
		}
		el.SetHTML(html)
	}

	if el, ok := doc.Hook(page.ProfileName); ok && p != nil {
		social, err := SocialLinks(p.Social)
		if err != nil {
			return err
		}
		html, err := execute("profile-name", struct {
			Name   string
			Social template.HTML
		}{Name: p.Name, Social: social})
		if err != nil {
			return err
		}
		el.SetHTML(html)
	}

	if el, ok := doc.Hook(page.ProfileTitle); ok && p != nil {
		el.SetText(p.Title)
	}

	if el, ok := doc.Hook(page.BioText); ok && c.Bio != nil {
		html, err := r.bio(c.Bio)
		if err != nil {
			return err
		}
		if html != "" {
			el.SetHTML(html)
		}
	}

	if el, ok := doc.Hook(page.ContactEmail); ok && p != nil && p.Email != "" {
		el.SetAttr("href", "mailto:"+p.Email)
		el.SetText(p.Email)
	}

	return nil
}

func (r *Renderer) bio(b *content.Bio) (template.HTML, error) {
	switch {
	case b.Paragraphs != nil:
		paras := make([]template.HTML, len(b.Paragraphs))
		for i, p := range b.Paragraphs {
			paras[i] = r.markup.Trusted(FormatTextWithLinks(p, b.Links))
		}
		return execute("paragraphs", paras)
	case b.Text != "":
		return r.markup.Trusted(FormatTextWithLinks(b.Text, b.Links)), nil
	}
	return "", nil
}

// SocialLinks renders the follow link and the three icon links, always in
// the same order. A nil block renders nothing; a present block must carry
// all four entries.
func SocialLinks(s *content.Social) (template.HTML, error) {
	if s == nil {
		return "", nil
	}
	required := []struct {
		field string
		link  *content.SocialLink
	}{
		{"personal.social.twitter", s.Twitter},
		{"personal.social.scholar", s.Scholar},
		{"personal.social.linkedin", s.LinkedIn},
		{"personal.social.github", s.GitHub},
	}
	for _, req := range required {
		if req.link == nil {
			return "", &MalformedError{Section: "about", Field: req.field}
		}
	}
	return execute("social", s)
}
