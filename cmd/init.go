package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gridguard/landing/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gridguard configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the landing site and writes the config file (default .gridguard.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
