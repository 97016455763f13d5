// Package scan implements the library reconciliation engine: it walks a
// library root, identifies what each file is via the catalog providers,
// fetches cover art, and keeps the persisted catalog in sync with disk.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/resolve"
	"github.com/vmunix/shelfd/pkg/guess"
)

// Config tunes a scan pass.
type Config struct {
	Workers  int  // bounded pool for resolve+fetch, min 1
	AutoPick bool // pick the best candidate without confirmation
}

// Engine reconciles library roots against the persisted catalog.
// Provider fields may be nil; leaves of an unconfigured provider's media
// type fall back to synthesized identities.
type Engine struct {
	store  *catalog.Store
	movies MovieProvider
	tv     TVProvider
	music  MusicProvider
	games  GameProvider
	assets AssetStore
	cfg    Config

	// serializes catalog writes within a scan pass
	mu  sync.Mutex
	log *slog.Logger
}

// New creates an engine.
func New(store *catalog.Store, assets AssetStore, cfg Config, log *slog.Logger) *Engine {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Engine{
		store:  store,
		assets: assets,
		cfg:    cfg,
		log:    log.With("component", "scan"),
	}
}

// WithMovieProvider sets the movie catalog provider.
func (e *Engine) WithMovieProvider(p MovieProvider) *Engine { e.movies = p; return e }

// WithTVProvider sets the series catalog provider.
func (e *Engine) WithTVProvider(p TVProvider) *Engine { e.tv = p; return e }

// WithMusicProvider sets the music catalog provider.
func (e *Engine) WithMusicProvider(p MusicProvider) *Engine { e.music = p; return e }

// WithGameProvider sets the game catalog provider.
func (e *Engine) WithGameProvider(p GameProvider) *Engine { e.games = p; return e }

// Scan reconciles one library. An unreachable root aborts only this
// library; per-leaf failures are logged and skipped.
func (e *Engine) Scan(ctx context.Context, lib *catalog.Library) error {
	if _, err := os.Stat(lib.RootPath); err != nil {
		return fmt.Errorf("library %s: root unreachable: %w", lib.Name, err)
	}

	e.log.Info("scan started", "library", lib.Name, "type", lib.MediaType, "root", lib.RootPath)

	var err error
	switch lib.MediaType {
	case catalog.MediaTypeMovie:
		err = e.scanMovies(ctx, lib)
	case catalog.MediaTypeSeries:
		err = e.scanSeries(ctx, lib)
	case catalog.MediaTypeMusic:
		err = e.scanMusic(ctx, lib)
	case catalog.MediaTypeGame:
		err = e.scanGames(ctx, lib)
	case catalog.MediaTypeVideo:
		err = e.scanVideos(ctx, lib)
	case catalog.MediaTypeBook:
		err = e.scanBooks(ctx, lib)
	default:
		err = fmt.Errorf("library %s: unknown media type %q", lib.Name, lib.MediaType)
	}

	if err != nil {
		return err
	}
	e.log.Info("scan complete", "library", lib.Name)
	return nil
}

// ScanAll reconciles every library in the catalog. A failing library is
// logged and does not stop the others.
func (e *Engine) ScanAll(ctx context.Context) error {
	libs, err := e.store.ListLibraries()
	if err != nil {
		return fmt.Errorf("list libraries: %w", err)
	}

	var failed int
	for _, lib := range libs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := e.Scan(ctx, lib); err != nil {
			e.log.Error("library scan failed", "library", lib.Name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d library scans failed", failed, len(libs))
	}
	return nil
}

// persist runs fn under the writer lock, retrying once on failure.
// A duplicate natural key is an idempotent no-op, not an error.
func (e *Engine) persist(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := fn()
	if err == nil || errors.Is(err, catalog.ErrDuplicate) {
		return nil
	}
	e.log.Warn("persist failed, retrying", "error", err)
	err = fn()
	if err == nil || errors.Is(err, catalog.ErrDuplicate) {
		return nil
	}
	return err
}

// claimSet tracks candidate titles already taken by other leaves in the
// same pass, so two files never resolve to the same candidate.
type claimSet struct {
	mu     sync.Mutex
	titles map[string]bool
}

func newClaimSet() *claimSet {
	return &claimSet{titles: make(map[string]bool)}
}

func (c *claimSet) claim(title string) {
	c.mu.Lock()
	c.titles[title] = true
	c.mu.Unlock()
}

// resolveAndClaim picks the candidate index for hint and marks that
// title taken, under one lock so concurrent leaves cannot settle on the
// same candidate between resolving and claiming.
func (c *claimSet) resolveAndClaim(hint string, titles []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := resolveIndex(hint, titles, c.titles)
	c.titles[titles[idx]] = true
	return idx
}

// resolveIndex runs the distance walk over normalized forms, so provider
// casing, accents and leading articles stay out of the comparison. The
// claimed set is keyed by raw titles and normalized the same way.
func resolveIndex(hint string, titles []string, claimed map[string]bool) int {
	cleaned := make([]string, len(titles))
	for i, t := range titles {
		cleaned[i] = guess.CleanTitle(t)
	}
	var claimedClean map[string]bool
	if len(claimed) > 0 {
		claimedClean = make(map[string]bool, len(claimed))
		for t := range claimed {
			claimedClean[guess.CleanTitle(t)] = true
		}
	}
	return resolve.Resolve(guess.CleanTitle(hint), cleaned, claimedClean)
}

// skippedSuffixes are partial or archive-in-progress files that never
// enter the catalog.
var skippedSuffixes = []string{".part", ".rar", ".zip"}

func isPartialFile(name string) bool {
	for _, s := range skippedSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".webm": true, ".wmv": true,
	".mov": true, ".m4v": true, ".flv": true, ".mpg": true, ".mpeg": true,
	".ts": true, ".ogv": true, ".3gp": true,
}

func isVideoFile(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

var audioExtensions = map[string]bool{
	".mp3": true, ".flac": true, ".ogg": true, ".wav": true, ".m4a": true,
	".aac": true, ".opus": true, ".wma": true, ".alac": true, ".aif": true,
}

func isAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// stem strips the extension from a file name.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// mtimeOf returns the unix mtime of path, or 0 when it cannot be read.
func mtimeOf(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}
