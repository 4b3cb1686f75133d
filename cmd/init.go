package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/homepage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize homepage configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the config file (.homepage.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
