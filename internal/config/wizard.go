package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/homepage/internal/render"
)

// contentCandidates are the content documents the wizard looks for.
var contentCandidates = []string{
	"data/content.json",
	"data/content.yaml",
	"data/content.yml",
	"content.json",
	"content.yaml",
}

// detectSource returns the first content document present in the current
// directory.
func detectSource() string {
	for _, candidate := range contentCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to homepage! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	source := detectSource()
	if source != "" {
		fmt.Printf("Found content document: %s\n\n", source)
	} else {
		source = cfg.Source
	}

	// 1. Content source.
	sourcePrompt := promptui.Prompt{
		Label:   "Content document (path or URL)",
		Default: source,
	}
	sourceStr, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}

	// 2. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title (leave blank to use your name)",
		Default: "",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page title: %w", err)
	}

	// 3. Markup policy.
	markupPrompt := promptui.Select{
		Label: "How should bio, news and notes be interpreted",
		// One item per render.MarkupModes entry, in the same order.
		Items: []string{
			"html      - inserted as written",
			"sanitized - HTML with scripts and unsafe links removed",
			"markdown  - Markdown, inline HTML allowed",
		},
	}
	markupIdx, _, err := markupPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("markup selection: %w", err)
	}

	// 4. Highlighted author.
	authorPrompt := promptui.Prompt{
		Label:   "Author name to highlight in publications (blank = your name)",
		Default: "",
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight author: %w", err)
	}

	// 5. Static assets and output.
	staticPrompt := promptui.Prompt{
		Label:   "Static assets directory",
		Default: cfg.StaticDir,
	}
	staticDir, err := staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	// 7. Twitter widget.
	twitterPrompt := promptui.Select{
		Label: "Load the Twitter widget for the follow button",
		Items: []string{"yes", "no"},
	}
	twitterIdx, _, err := twitterPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("twitter widget: %w", err)
	}

	cfg.Source = sourceStr
	cfg.Title = title
	cfg.Markup = render.MarkupModes[markupIdx]
	cfg.HighlightAuthor = author
	cfg.StaticDir = staticDir
	cfg.OutputDir = outputDir
	cfg.Widgets.Twitter = twitterIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
