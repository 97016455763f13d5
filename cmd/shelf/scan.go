package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfd/internal/assets"
	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/deezer"
	"github.com/vmunix/shelfd/internal/igdb"
	"github.com/vmunix/shelfd/internal/scan"
	"github.com/vmunix/shelfd/internal/tmdb"
)

var scanCmd = &cobra.Command{
	Use:   "scan [library]",
	Short: "Run a reconciliation pass",
	Long: `Walks the configured library roots, resolves new files against the
catalog providers, and prunes records whose files are gone.

With no argument every configured library is scanned.

Examples:
  shelf scan            # scan everything
  shelf scan films      # scan one library`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("configuration invalid:\n  - %s", strings.Join(errs, "\n  - "))
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	pipeline, err := assets.New(cfg.Assets.Dir, cfg.Assets.Placeholder, logger.With("component", "assets"))
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}

	engine := scan.New(store, pipeline, scan.Config{
		Workers:  cfg.Scan.Workers,
		AutoPick: cfg.Scan.AutoPick,
	}, logger)

	if cfg.Providers.TMDB != nil && cfg.Providers.TMDB.APIKey != "" {
		tmdbClient := tmdb.NewClient(cfg.Providers.TMDB.APIKey)
		engine.WithMovieProvider(tmdbClient).WithTVProvider(tmdbClient)
	}
	engine.WithMusicProvider(deezer.NewClient())
	if cfg.Providers.IGDB != nil {
		engine.WithGameProvider(igdb.NewClient(cfg.Providers.IGDB.ClientID, cfg.Providers.IGDB.ClientSecret))
	}

	for _, lc := range cfg.Libraries {
		lib := &catalog.Library{
			Name:      lc.Name,
			MediaType: catalog.MediaType(lc.Type),
			RootPath:  lc.Root,
		}
		if err := store.UpsertLibrary(lib); err != nil {
			return fmt.Errorf("register library %s: %w", lc.Name, err)
		}
	}

	ctx := cmd.Context()

	if len(args) == 1 {
		lib, err := store.GetLibrary(args[0])
		if err != nil {
			return fmt.Errorf("library %q not found", args[0])
		}
		if err := engine.Scan(ctx, lib); err != nil {
			return err
		}
		fmt.Printf("Scanned library %s.\n", lib.Name)
		return nil
	}

	if err := engine.ScanAll(ctx); err != nil {
		return err
	}
	fmt.Printf("Scanned %d libraries.\n", len(cfg.Libraries))
	return nil
}
