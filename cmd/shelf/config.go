package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the daemon.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Println("Validation errors:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("configuration invalid")
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Database:   %s\n", cfg.Database.Path)
	fmt.Printf("  Assets:     %s\n", cfg.Assets.Dir)
	fmt.Printf("  Scan:       every %s, %d workers\n", cfg.Scan.Interval, cfg.Scan.Workers)

	libs := make([]string, 0, len(cfg.Libraries))
	for _, lib := range cfg.Libraries {
		libs = append(libs, fmt.Sprintf("%s (%s)", lib.Name, lib.Type))
	}
	fmt.Printf("  Libraries:  %s\n", strings.Join(libs, ", "))

	providers := []string{"deezer"}
	if cfg.Providers.TMDB != nil && cfg.Providers.TMDB.APIKey != "" {
		providers = append(providers, "tmdb")
	}
	if cfg.Providers.IGDB != nil {
		providers = append(providers, "igdb")
	}
	fmt.Printf("  Providers:  %s\n", strings.Join(providers, ", "))
}
