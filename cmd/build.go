package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridguard/landing/internal/progress"
	"github.com/gridguard/landing/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the landing page as a static site",
	Long: `Renders the landing page once and writes index.html, the static assets and
content.json to the output directory. The exported page shows every section
and FAQ answer without a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}

		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		exporter := site.NewExporter(store.Current(), cfg.OutputDir, progress.NewReporter())
		n, err := exporter.Export()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Wrote %d files to %s\n", n, cfg.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output directory (default from config)")
	rootCmd.AddCommand(buildCmd)
}
