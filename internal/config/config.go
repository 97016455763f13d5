// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Assets    AssetsConfig    `toml:"assets"`
	Scan      ScanConfig      `toml:"scan"`
	Providers ProvidersConfig `toml:"providers"`
	Libraries []LibraryConfig `toml:"libraries"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type AssetsConfig struct {
	Dir         string `toml:"dir"`
	Placeholder string `toml:"placeholder"`
}

type ScanConfig struct {
	Interval time.Duration `toml:"interval"`
	Workers  int           `toml:"workers"`
	AutoPick bool          `toml:"auto_pick"`
}

type ProvidersConfig struct {
	TMDB *TMDBConfig `toml:"tmdb"`
	IGDB *IGDBConfig `toml:"igdb"`
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
}

type IGDBConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

type LibraryConfig struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	Root string `toml:"root"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/shelfd.db"
	}
	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = "./data/assets"
	}
	if cfg.Scan.Interval == 0 {
		cfg.Scan.Interval = time.Hour
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 4
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
