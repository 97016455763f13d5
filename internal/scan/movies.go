package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/tmdb"
	"github.com/vmunix/shelfd/pkg/guess"
)

// trailerSites maps a provider video host to its embed URL prefix.
var trailerSites = map[string]string{
	"YouTube":     "https://www.youtube.com/embed/",
	"Dailymotion": "https://www.dailymotion.com/video/",
	"Vimeo":       "https://vimeo.com/",
}

// trailerURL picks the first Trailer-typed video on a known host.
func trailerURL(videos []tmdb.Video) string {
	for _, v := range videos {
		if v.Type != "Trailer" {
			continue
		}
		if prefix, ok := trailerSites[v.Site]; ok {
			return prefix + v.Key
		}
	}
	return ""
}

// topCastIDs joins the first five credited cast ids.
func topCastIDs(cast []tmdb.CastMember) string {
	var ids []string
	for i, c := range cast {
		if i == 5 {
			break
		}
		ids = append(ids, strconv.FormatInt(c.ID, 10))
	}
	return strings.Join(ids, ",")
}

type movieLeaf struct {
	name string // display name, extension stripped
	slug string
}

// enumerateMovies lists candidate leaves under the root: plain files,
// and directories descended one level to their first file.
func enumerateMovies(root string) ([]movieLeaf, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root: %w", err)
	}

	var leaves []movieLeaf
	for _, entry := range entries {
		name := entry.Name()
		if isPartialFile(name) {
			continue
		}
		slug := filepath.Join(root, name)
		if entry.IsDir() {
			inner, err := os.ReadDir(slug)
			if err != nil || len(inner) == 0 {
				continue
			}
			slug = filepath.Join(slug, inner[0].Name())
		} else {
			name = stem(name)
		}
		leaves = append(leaves, movieLeaf{name: name, slug: slug})
	}
	return leaves, nil
}

func (e *Engine) scanMovies(ctx context.Context, lib *catalog.Library) error {
	leaves, err := enumerateMovies(lib.RootPath)
	if err != nil {
		return err
	}

	claimed := newClaimSet()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for _, leaf := range leaves {
		exists, err := e.store.ItemExistsBySlug(lib.Name, leaf.slug)
		if err != nil {
			e.log.Error("existence check failed", "slug", leaf.slug, "error", err)
			continue
		}
		if exists {
			continue
		}

		g.Go(func() error {
			if err := e.reconcileMovie(gctx, lib, leaf, claimed); err != nil {
				e.log.Warn("movie skipped", "file", leaf.name, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return e.pruneItems(lib)
}

func (e *Engine) reconcileMovie(ctx context.Context, lib *catalog.Library, leaf movieLeaf, claimed *claimSet) error {
	hints := guess.Parse(leaf.name)
	query := hints.SearchTitle(leaf.name)

	var results []tmdb.MovieResult
	if e.movies != nil {
		var err error
		results, err = e.movies.SearchMovies(ctx, query, hints.Year)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
	}
	if len(results) == 0 {
		return e.persistFallbackItem(lib, leaf.name, leaf.slug, "")
	}

	idx := 0
	if e.cfg.AutoPick || len(results) == 1 {
		titles := make([]string, len(results))
		for i, r := range results {
			titles[i] = r.Title
		}
		idx = claimed.resolveAndClaim(query, titles)
	} else {
		claimed.claim(results[0].Title)
	}
	best := results[idx]

	// Details enrich the record; a failure here degrades, not aborts.
	var details *tmdb.MovieDetails
	if d, err := e.movies.GetMovie(ctx, best.ID); err != nil {
		e.log.Debug("movie details unavailable", "id", best.ID, "error", err)
	} else {
		details = d
	}

	id := strconv.FormatInt(best.ID, 10)
	cover, err := e.assets.FetchImage(ctx, tmdb.ImageURL(best.PosterPath), e.assets.Path("Movie", id, "Cover"))
	if err != nil {
		cover = e.assets.Placeholder()
	}
	backdrop := best.BackdropPath
	if backdrop == "" && details != nil {
		backdrop = details.BackdropPath
	}
	banner, err := e.assets.FetchImage(ctx, tmdb.ImageURL(backdrop), e.assets.Path("Movie", id, "Banner"))
	if err != nil {
		banner = e.assets.Placeholder()
	}

	var castIDs, trailer string
	if details != nil {
		castIDs = topCastIDs(details.Credits.Cast)
		trailer = trailerURL(details.Videos.Results)
	}

	item := &catalog.Item{
		MediaType:   catalog.MediaTypeMovie,
		ExternalID:  id,
		Title:       best.Title,
		RealTitle:   leaf.name,
		Overview:    best.Overview,
		Rating:      best.VoteAverage,
		ReleaseDate: best.ReleaseDate,
		Genres:      strings.Join(tmdb.GenreNames(best.GenreIDs), ","),
		CastIDs:     castIDs,
		TrailerURL:  trailer,
		CoverPath:   cover,
		BannerPath:  banner,
		Duration:    videoDuration(ctx, leaf.slug),
		Slug:        leaf.slug,
		FileMtime:   mtimeOf(leaf.slug),
		LibraryName: lib.Name,
	}
	return e.persist(func() error { return e.store.AddItem(item) })
}

// persistFallbackItem records a leaf that no provider could identify,
// under a synthesized identity with placeholder art.
func (e *Engine) persistFallbackItem(lib *catalog.Library, title, slug, console string) error {
	item := &catalog.Item{
		MediaType:   lib.MediaType,
		ExternalID:  uuid.NewString(),
		Title:       title,
		RealTitle:   title,
		CoverPath:   e.assets.Placeholder(),
		BannerPath:  e.assets.Placeholder(),
		Console:     console,
		Slug:        slug,
		FileMtime:   mtimeOf(slug),
		LibraryName: lib.Name,
	}
	return e.persist(func() error { return e.store.AddItem(item) })
}

// pruneItems deletes flat-type records whose backing file is gone.
func (e *Engine) pruneItems(lib *catalog.Library) error {
	items, err := e.store.ListItems(catalog.ItemFilter{Library: &lib.Name, MediaType: &lib.MediaType})
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	for _, it := range items {
		if _, err := os.Stat(it.Slug); err == nil {
			continue
		}
		if err := e.store.DeleteItemBySlug(lib.Name, it.Slug); err != nil {
			e.log.Error("prune failed", "slug", it.Slug, "error", err)
			continue
		}
		e.log.Info("pruned", "type", it.MediaType, "slug", it.Slug)
	}
	return nil
}
