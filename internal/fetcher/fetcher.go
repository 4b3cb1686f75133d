package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ziadkadry99/homepage/internal/content"
)

// LoadError is the single failure kind of a content fetch. Status is set
// when the server answered with a non-success code; otherwise Err holds the
// transport or decode failure.
type LoadError struct {
	Source string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "loading " + e.Source + " failed"
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err is (or wraps) a LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Fetcher loads the content document from an http(s) URL or a local path.
// It makes exactly one attempt per call: no retries, no timeout, no cache.
type Fetcher struct {
	source string
	client *http.Client
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New creates a Fetcher for source.
func New(source string, opts ...Option) *Fetcher {
	f := &Fetcher{
		source: source,
		client: &http.Client{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Source returns the configured document location.
func (f *Fetcher) Source() string { return f.source }

// Fetch retrieves and decodes the document. Every failure is a *LoadError.
func (f *Fetcher) Fetch(ctx context.Context) (*content.SiteContent, error) {
	var (
		doc *content.SiteContent
		err error
	)
	if isRemote(f.source) {
		doc, err = f.fetchHTTP(ctx)
	} else {
		doc, err = f.fetchFile()
	}
	if err != nil {
		f.logger.Error("error loading content", "source", f.source, "error", err)
		return nil, err
	}
	f.logger.Debug("content loaded", "source", f.source)
	return doc, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context) (*content.SiteContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.source, nil)
	if err != nil {
		return nil, &LoadError{Source: f.source, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: f.source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: f.source, Status: resp.StatusCode}
	}

	doc, err := content.Decode(resp.Body, content.FormatFor(req.URL.Path, resp.Header.Get("Content-Type")))
	if err != nil {
		return nil, &LoadError{Source: f.source, Err: err}
	}
	return doc, nil
}

func (f *Fetcher) fetchFile() (*content.SiteContent, error) {
	path := strings.TrimPrefix(f.source, "file://")
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: f.source, Err: err}
	}
	defer file.Close()

	doc, err := content.Decode(file, content.FormatFor(path, ""))
	if err != nil {
		return nil, &LoadError{Source: f.source, Err: err}
	}
	return doc, nil
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
