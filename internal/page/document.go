package page

import (
	"html/template"
	"slices"
)

// Hook names a pre-existing element of the host page by the selector the
// renderers target.
type Hook string

const (
	ProfileImage       Hook = ".profile-image"
	PhotoCaption       Hook = ".photo-caption"
	ProfileName        Hook = ".profile-name"
	ProfileTitle       Hook = ".profile-title"
	BioText            Hook = ".bio-text"
	ContactEmail       Hook = ".contact-email"
	SidebarContent     Hook = ".sidebar-content"
	NewsList           Hook = ".news-list"
	AwardsSection      Hook = "#awards"
	AwardsList         Hook = "#awards .awards-list"
	PublicationSection Hook = "#publication"
	IncludedPubs       Hook = "#includedPubs"
	FooterDate         Hook = ".footer-date"
	Navbar             Hook = ".navbar"
)

// AllHooks is every hook the default layout provides.
var AllHooks = []Hook{
	ProfileImage, PhotoCaption, ProfileName, ProfileTitle, BioText, ContactEmail,
	SidebarContent, NewsList, AwardsSection, AwardsList, PublicationSection,
	IncludedPubs, FooterDate, Navbar,
}

// Element is the mutable state of one hook element.
type Element struct {
	hook   Hook
	inner  template.HTML
	attrs  map[string]string
	hidden bool
}

// Hook returns the selector this element answers to.
func (e *Element) Hook() Hook { return e.hook }

// SetHTML replaces the element's children with trusted markup.
func (e *Element) SetHTML(h template.HTML) { e.inner = h }

// SetText replaces the element's children with escaped text.
func (e *Element) SetText(s string) { e.inner = template.HTML(template.HTMLEscapeString(s)) }

// HTML returns the element's current children.
func (e *Element) HTML() template.HTML { return e.inner }

// SetAttr sets an attribute such as src, alt or href.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns an attribute value, or "" when unset.
func (e *Element) Attr(name string) string { return e.attrs[name] }

// Hide removes the element from the visible page.
func (e *Element) Hide() { e.hidden = true }

// Hidden reports whether the element is hidden.
func (e *Element) Hidden() bool { return e.hidden }

// Document is the host page: the set of hook elements it defines, plus the
// page-level state the controller manipulates. A hook that is not part of
// the document is a disabled section; renderers skip it.
type Document struct {
	Title       string
	Stylesheets []string

	elements  map[Hook]*Element
	body      template.HTML
	replaced  bool
	scripts   []string
	behaviors *Behaviors
}

// New creates a document that provides exactly the given hooks.
func New(hooks ...Hook) *Document {
	d := &Document{elements: make(map[Hook]*Element, len(hooks))}
	for _, h := range hooks {
		d.elements[h] = &Element{hook: h}
	}
	return d
}

// NewDefault creates a document with every hook of the default layout.
func NewDefault() *Document {
	return New(AllHooks...)
}

// Hook looks up a hook element. ok is false when the section is disabled.
func (d *Document) Hook(h Hook) (el *Element, ok bool) {
	el, ok = d.elements[h]
	return el, ok
}

// Get is Hook for templates: it returns nil for disabled sections.
func (d *Document) Get(h Hook) *Element {
	return d.elements[h]
}

// ReplaceBody discards the whole page body in favor of the given markup.
func (d *Document) ReplaceBody(body template.HTML) {
	d.body = body
	d.replaced = true
}

// Replaced reports whether the body was replaced.
func (d *Document) Replaced() bool { return d.replaced }

// Body returns the replacement body, if any.
func (d *Document) Body() template.HTML { return d.body }

// AddScript appends an external script once. It reports whether the script
// was newly added.
func (d *Document) AddScript(src string) bool {
	if slices.Contains(d.scripts, src) {
		return false
	}
	d.scripts = append(d.scripts, src)
	return true
}

// Scripts returns the external scripts in insertion order.
func (d *Document) Scripts() []string { return d.scripts }
