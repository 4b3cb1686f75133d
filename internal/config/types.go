package config

import "github.com/ziadkadry99/homepage/internal/render"

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level homepage configuration, corresponding to .homepage.yml.
type Config struct {
	Source          string            `yaml:"source" koanf:"source"`
	OutputDir       string            `yaml:"output_dir" koanf:"output_dir"`
	StaticDir       string            `yaml:"static_dir" koanf:"static_dir"`
	Include         []string          `yaml:"include" koanf:"include"`
	Exclude         []string          `yaml:"exclude" koanf:"exclude"`
	Title           string            `yaml:"title" koanf:"title"`
	Stylesheets     []string          `yaml:"stylesheets" koanf:"stylesheets"`
	HighlightAuthor string            `yaml:"highlight_author" koanf:"highlight_author"`
	IconDir         string            `yaml:"icon_dir" koanf:"icon_dir"`
	Markup          render.MarkupMode `yaml:"markup" koanf:"markup"`
	Widgets         WidgetsConfig     `yaml:"widgets" koanf:"widgets"`
	Server          ServerConfig      `yaml:"server" koanf:"server"`
	LogLevel        string            `yaml:"log_level" koanf:"log_level"`
	LogFormat       LogFormat         `yaml:"log_format" koanf:"log_format"`
}

// WidgetsConfig toggles third-party embeds.
type WidgetsConfig struct {
	Twitter bool `yaml:"twitter" koanf:"twitter"`
}

// ServerConfig holds settings for `homepage serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
