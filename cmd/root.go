package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gridguard/landing/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gridguard",
	Short: "Serve and export the GridGuard landing page",
	Long: `gridguard renders the GridGuard landing page from its content registry.
It serves the page with live scroll reveal, FAQ and notify form sessions,
or exports it as a static site that works without a server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
