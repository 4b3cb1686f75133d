package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ziadkadry99/homepage/internal/config"
	"github.com/ziadkadry99/homepage/internal/controller"
	"github.com/ziadkadry99/homepage/internal/fetcher"
	"github.com/ziadkadry99/homepage/internal/page"
	"github.com/ziadkadry99/homepage/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `homepage init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the slog logger for cfg. --verbose forces debug level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newRenderer creates the section renderer configured by cfg.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	markup, err := render.NewMarkup(cfg.Markup)
	if err != nil {
		return nil, err
	}
	return render.New(render.Options{
		Markup:          markup,
		HighlightAuthor: cfg.HighlightAuthor,
		IconDir:         cfg.IconDir,
	}), nil
}

func newFetcher(cfg *config.Config, logger *slog.Logger) *fetcher.Fetcher {
	return fetcher.New(cfg.Source, fetcher.WithLogger(logger))
}

func newWidgets(cfg *config.Config) []controller.Widget {
	var widgets []controller.Widget
	if cfg.Widgets.Twitter {
		widgets = append(widgets, controller.TwitterWidget{})
	}
	return widgets
}

// documentFactory returns a constructor for the host page described by cfg.
func documentFactory(cfg *config.Config) func() *page.Document {
	return func() *page.Document {
		doc := page.NewDefault()
		doc.Title = cfg.Title
		doc.Stylesheets = append([]string(nil), cfg.Stylesheets...)
		return doc
	}
}
