package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "CLI client for the shelfd media catalog",
	Long: `shelf - CLI client for the shelfd media catalog

Scans library roots, inspects catalog contents, and tests
filename parsing without a running daemon.

Run 'shelfd' to start the scanning daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("shelf {{.Version}}\n")
}
