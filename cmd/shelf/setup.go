package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/config"
	"github.com/vmunix/shelfd/internal/migrations"
)

// loadConfig resolves the config path (flag or discovery) and loads it.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, "", err
		}
		path = discovered
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, path, nil
}

// openStore opens the catalog database and applies migrations.
// The caller owns closing the returned *sql.DB.
func openStore(cfg *config.Config) (*catalog.Store, *sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return catalog.NewStore(db), db, nil
}
