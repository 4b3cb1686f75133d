package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/homepage/internal/assets"
	"github.com/ziadkadry99/homepage/internal/controller"
	"github.com/ziadkadry99/homepage/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the homepage into a static site",
	Long: `Fetches the content document once, renders index.html and copies the
static assets into the output directory. A failed load aborts the build and
leaves any previously built page in place.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("skip-assets", false, "only write index.html")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	skipAssets, _ := cmd.Flags().GetBool("skip-assets")

	logger := newLogger(cfg, cmd.ErrOrStderr())

	renderer, err := newRenderer(cfg)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	doc := documentFactory(cfg)()
	controller.InstallBehaviors(doc)

	f := newFetcher(cfg, logger)
	c := controller.New(f, nil, renderer,
		controller.WithWidgets(newWidgets(cfg)...),
		controller.WithLogger(logger),
	)
	if err := c.Load(ctx, doc); err != nil {
		return fmt.Errorf("building page from %s: %w", f.Source(), err)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	indexPath := filepath.Join(cfg.OutputDir, "index.html")
	if err := os.WriteFile(indexPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", indexPath, err)
	}

	var res assets.CopyResult
	if !skipAssets && cfg.StaticDir != "" {
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Scanning assets in %s...\n", cfg.StaticDir)
		}
		files, err := assets.Walk(assets.WalkConfig{
			RootDir:   cfg.StaticDir,
			Include:   cfg.Include,
			Exclude:   cfg.Exclude,
			SkipPaths: []string{cfg.OutputDir},
		})
		if err != nil {
			return fmt.Errorf("scanning assets: %w", err)
		}
		res, err = assets.Copy(ctx, files, cfg.OutputDir, progress.NewReporter("Copying assets"))
		if err != nil {
			return fmt.Errorf("copying assets: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Site built: %s (%d assets copied, %d unchanged) in %s\n",
		indexPath, res.Copied, res.Unchanged, time.Since(start).Round(time.Millisecond))
	return nil
}
