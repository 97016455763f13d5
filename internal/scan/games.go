package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/pkg/guess"
)

// supportedConsoles are the console folder names a game library may use.
var supportedConsoles = []string{
	"3DO", "Amiga", "Atari 2600", "Atari 5200", "Atari 7800",
	"Atari Jaguar", "Atari Lynx", "GB", "GBA", "GBC", "N64", "NDS",
	"NES", "SNES", "Neo Geo Pocket", "PSX", "Sega 32X", "Sega CD",
	"Sega Game Gear", "Sega Master System", "Sega Mega Drive",
	"Sega Saturn", "PS1",
}

// romExtensions are the game file types the scan recognizes.
var romExtensions = map[string]bool{
	".zip": true, ".adf": true, ".adz": true, ".dms": true, ".fdi": true,
	".ipf": true, ".hdf": true, ".lha": true, ".slave": true, ".info": true,
	".cdd": true, ".nrg": true, ".mds": true, ".chd": true, ".uae": true,
	".m3u": true, ".a26": true, ".a52": true, ".a78": true, ".j64": true,
	".lnx": true, ".gb": true, ".gba": true, ".gbc": true, ".n64": true,
	".nds": true, ".nes": true, ".ngp": true, ".psx": true, ".sfc": true,
	".smc": true, ".smd": true, ".32x": true, ".cd": true, ".gg": true,
	".md": true, ".sat": true, ".sms": true,
}

func isROMFile(name string) bool {
	return romExtensions[strings.ToLower(filepath.Ext(name))]
}

func consoleSupported(name string) bool {
	for _, c := range supportedConsoles {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Engine) scanGames(ctx context.Context, lib *catalog.Library) error {
	entries, err := os.ReadDir(lib.RootPath)
	if err != nil {
		return fmt.Errorf("read root: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for _, entry := range entries {
		if !entry.IsDir() || isPartialFile(entry.Name()) {
			continue
		}
		console := entry.Name()
		if !consoleSupported(console) {
			e.log.Warn("unknown console folder", "dir", console, "library", lib.Name)
			continue
		}

		files, err := os.ReadDir(filepath.Join(lib.RootPath, console))
		if err != nil {
			e.log.Error("read console dir failed", "console", console, "error", err)
			continue
		}
		for _, f := range files {
			if f.IsDir() || !isROMFile(f.Name()) {
				continue
			}
			name := f.Name()
			g.Go(func() error {
				if err := e.reconcileGame(gctx, lib, console, name); err != nil {
					e.log.Warn("game skipped", "file", name, "error", err)
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	return e.pruneItems(lib)
}

func (e *Engine) reconcileGame(ctx context.Context, lib *catalog.Library, console, name string) error {
	consoleDir := filepath.Join(lib.RootPath, console)

	// ROM sets carry collection indexes like "0042 - Title.gba"; strip
	// them on disk before matching so the title survives the round trip
	if stripped := guess.StripNumericPrefix(name); stripped != name {
		if err := os.Rename(filepath.Join(consoleDir, name), filepath.Join(consoleDir, stripped)); err != nil {
			return fmt.Errorf("rename: %w", err)
		}
		name = stripped
	}
	slug := filepath.Join(consoleDir, name)

	exists, err := e.store.ItemExistsBySlug(lib.Name, slug)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	title := stem(name)
	if e.games == nil || !e.games.Configured() {
		return e.persistFallbackItem(lib, title, slug, console)
	}

	game, err := e.games.SearchGame(ctx, title, console)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if game == nil {
		return e.persistFallbackItem(lib, title, slug, console)
	}

	id := strconv.FormatInt(game.ID, 10)
	cover, err := e.assets.FetchImage(ctx, game.CoverURL, e.assets.Path("Game", id, "Cover"))
	if err != nil {
		cover = e.assets.Placeholder()
	}

	item := &catalog.Item{
		MediaType:   catalog.MediaTypeGame,
		ExternalID:  id,
		Title:       game.Title,
		RealTitle:   title,
		Overview:    game.Summary,
		Rating:      game.Rating,
		ReleaseDate: game.ReleaseDate,
		Genres:      strings.Join(game.Genres, ","),
		CoverPath:   cover,
		BannerPath:  e.assets.Placeholder(),
		Console:     console,
		Slug:        slug,
		FileMtime:   mtimeOf(slug),
		LibraryName: lib.Name,
	}
	return e.persist(func() error { return e.store.AddItem(item) })
}
