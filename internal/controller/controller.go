package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/homepage/internal/content"
	"github.com/ziadkadry99/homepage/internal/page"
	"github.com/ziadkadry99/homepage/internal/render"
	"github.com/ziadkadry99/homepage/internal/store"
)

// ErrAlreadyLoaded is returned by a second call to Load.
var ErrAlreadyLoaded = errors.New("controller: page already loaded")

// Fetcher retrieves the content document.
type Fetcher interface {
	Fetch(ctx context.Context) (*content.SiteContent, error)
}

// Controller drives a single page load: fetch, store, render every section
// in order, then reload the embedded widgets.
type Controller struct {
	fetcher  Fetcher
	store    *store.Store
	renderer *render.Renderer
	widgets  []Widget
	logger   *slog.Logger

	once sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithWidgets registers embed widgets reloaded after a successful render.
// Nil entries are skipped.
func WithWidgets(w ...Widget) Option {
	return func(c *Controller) { c.widgets = append(c.widgets, w...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller. A nil store gets a fresh one; a nil renderer
// gets the defaults.
func New(f Fetcher, s *store.Store, r *render.Renderer, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  f,
		store:    s,
		renderer: r,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	if c.store == nil {
		c.store = store.New()
	}
	if c.renderer == nil {
		c.renderer = render.New(render.Options{})
	}
	return c
}

// Load performs the page load into doc. When fetching or rendering fails the
// document body is replaced by the error view and the error is returned.
// Load runs at most once per controller.
func (c *Controller) Load(ctx context.Context, doc *page.Document) error {
	err := ErrAlreadyLoaded
	c.once.Do(func() {
		err = c.load(ctx, doc)
	})
	return err
}

func (c *Controller) load(ctx context.Context, doc *page.Document) error {
	logger := c.logger.With("load_id", uuid.NewString())

	sc, err := c.fetcher.Fetch(ctx)
	if err != nil {
		logger.Error("error loading website data", "error", err)
		doc.ReplaceBody(page.ErrorView(err.Error()))
		return fmt.Errorf("loading content: %w", err)
	}
	c.store.Put(sc)

	r := c.renderer
	if r.HighlightAuthor() == "" && sc.Personal != nil {
		r = r.WithHighlightAuthor(sc.Personal.Name)
	}

	for _, sec := range r.Sections() {
		if err := sec.Render(doc, sc); err != nil {
			logger.Error("error rendering section", "section", sec.Name, "error", err)
			doc.ReplaceBody(page.ErrorView(err.Error()))
			return fmt.Errorf("rendering %s: %w", sec.Name, err)
		}
	}

	if doc.Title == "" && sc.Personal != nil {
		doc.Title = sc.Personal.Name
	}

	for _, w := range c.widgets {
		if w == nil {
			continue
		}
		w.Reload(doc)
	}

	logger.Debug("page loaded", "sections", len(r.Sections()), "widgets", len(c.widgets))
	return nil
}

// InstallBehaviors attaches the navbar and smooth-scroll behaviors with
// their default offsets. It is safe to call more than once.
func InstallBehaviors(doc *page.Document) {
	doc.InstallBehaviors(page.DefaultBehaviors())
}
