package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/homepage/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Render an academic homepage from a single content document",
	Long: `Homepage renders a personal academic site (profile, bio, news, awards,
publications) from one JSON or YAML content document. Build a static
index.html with its assets, or serve the page and reload the content on
every request.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
