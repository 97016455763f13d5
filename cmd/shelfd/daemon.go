package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfd/internal/assets"
	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/config"
	"github.com/vmunix/shelfd/internal/deezer"
	"github.com/vmunix/shelfd/internal/igdb"
	"github.com/vmunix/shelfd/internal/migrations"
	"github.com/vmunix/shelfd/internal/scan"
	"github.com/vmunix/shelfd/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runDaemon(configPath string) error {
	if configPath == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = discovered
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: configPath, Errors: errs}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store := catalog.NewStore(db)

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

	// Register configured libraries before the first pass
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("daemon starting",
		"config", configPath,
		"database", cfg.Database.Path,
		"libraries", len(cfg.Libraries),
		"interval", cfg.Scan.Interval.String(),
		"tmdb", cfg.Providers.TMDB != nil,
		"igdb", cfg.Providers.IGDB != nil,
		"log_level", cfg.Server.LogLevel,
	)

	if err := engine.ScanAll(ctx); err != nil {
		logger.Error("scan pass failed", "error", err)
	}

	ticker := time.NewTicker(cfg.Scan.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("daemon stopped")
			return nil
		case <-ticker.C:
			if err := engine.ScanAll(ctx); err != nil {
				logger.Error("scan pass failed", "error", err)
			}
		}
	}
}
