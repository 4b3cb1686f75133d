package config

import "github.com/ziadkadry99/homepage/internal/render"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".homepage.yml"

// DefaultExcludes are glob patterns never copied into the build output.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"**/*.md",
	DefaultPath,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:      "data/content.json",
		OutputDir:   "public",
		StaticDir:   "static",
		Include:     []string{"**"},
		Exclude:     append([]string(nil), DefaultExcludes...),
		Stylesheets: []string{"css/style.css"},
		IconDir:     "images/icon",
		Markup:      render.MarkupHTML,
		Widgets: WidgetsConfig{
			Twitter: true,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		LogLevel:  "info",
		LogFormat: LogFormatText,
	}
}
