package config

import (
	"fmt"
	"os"

	"github.com/vmunix/shelfd/internal/catalog"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if len(c.Libraries) == 0 {
		errs = append(errs, "libraries: at least one library must be configured")
	}

	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Scan.Workers < 0 {
		errs = append(errs, fmt.Sprintf("scan.workers: must be positive, got %d", c.Scan.Workers))
	}

	seen := make(map[string]bool)
	for i, lib := range c.Libraries {
		if lib.Name == "" {
			errs = append(errs, fmt.Sprintf("libraries[%d].name: required", i))
		} else if seen[lib.Name] {
			errs = append(errs, fmt.Sprintf("libraries[%d].name: duplicate library %q", i, lib.Name))
		}
		seen[lib.Name] = true

		if !catalog.MediaType(lib.Type).Valid() {
			errs = append(errs, fmt.Sprintf("libraries[%d].type: unknown media type %q", i, lib.Type))
		}
		if lib.Root == "" {
			errs = append(errs, fmt.Sprintf("libraries[%d].root: required", i))
		} else if _, err := os.Stat(lib.Root); os.IsNotExist(err) {
			// Non-fatal but surfaced: a missing root means the scan skips the library.
			errs = append(errs, fmt.Sprintf("libraries[%d].root: warning: directory %q does not exist", i, lib.Root))
		}
	}

	// IGDB needs both halves of the Twitch credential pair
	if c.Providers.IGDB != nil {
		if c.Providers.IGDB.ClientID == "" {
			errs = append(errs, "providers.igdb.client_id: required when igdb is configured")
		}
		if c.Providers.IGDB.ClientSecret == "" {
			errs = append(errs, "providers.igdb.client_secret: required when igdb is configured")
		}
	}

	return errs
}
