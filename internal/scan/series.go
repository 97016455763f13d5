package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/tmdb"
	"github.com/vmunix/shelfd/pkg/guess"
)

var digitsRe = regexp.MustCompile(`\d+`)

// folderNumber extracts the season number from a folder name like
// "Season 2" or "S02". Returns 0 when the name carries no digits.
func folderNumber(name string) int {
	m := digitsRe.FindString(name)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// episodeIndexStrategies derive an episode's number from filename hints,
// tried in order until one yields a value.
var episodeIndexStrategies = []func(h *guess.Hints) (int, bool){
	func(h *guess.Hints) (int, bool) { return h.Episode, h.Episode != 0 },
	func(h *guess.Hints) (int, bool) {
		n, err := strconv.Atoi(h.EpisodeTitle)
		return n, err == nil && n > 0
	},
	func(h *guess.Hints) (int, bool) { return h.SecondSeason, h.SecondSeason != 0 },
	func(h *guess.Hints) (int, bool) { return h.Season, h.Season != 0 },
	func(h *guess.Hints) (int, bool) {
		n, err := strconv.Atoi(h.Title)
		return n, err == nil && n > 0
	},
}

func episodeIndex(h *guess.Hints) (int, bool) {
	for _, strategy := range episodeIndexStrategies {
		if n, ok := strategy(h); ok {
			return n, true
		}
	}
	return 0, false
}

// seasonPlan is one season of the layout chosen for a series: either the
// provider's default season list, or an alternate episode-group layout
// when the disk census exceeds the default.
type seasonPlan struct {
	externalID   string
	number       int
	name         string
	overview     string
	episodeCount int
	airDate      string
	posterPath   string
	episodes     []tmdb.EpisodeDetails // set for group layouts only
}

func defaultLayout(details *tmdb.TVDetails) []seasonPlan {
	plans := make([]seasonPlan, 0, len(details.Seasons))
	for _, s := range details.Seasons {
		plans = append(plans, seasonPlan{
			externalID:   strconv.FormatInt(s.ID, 10),
			number:       s.SeasonNumber,
			name:         s.Name,
			overview:     s.Overview,
			episodeCount: s.EpisodeCount,
			airDate:      s.AirDate,
			posterPath:   s.PosterPath,
		})
	}
	return plans
}

func groupLayout(gd *tmdb.EpisodeGroupDetails) []seasonPlan {
	var plans []seasonPlan
	for _, g := range gd.Groups {
		if len(g.Episodes) == 0 {
			continue
		}
		plans = append(plans, seasonPlan{
			externalID:   g.ID,
			number:       g.Order,
			name:         g.Name,
			episodeCount: len(g.Episodes),
			airDate:      g.Episodes[0].AirDate,
			posterPath:   g.Episodes[0].StillPath,
			episodes:     g.Episodes,
		})
	}
	return plans
}

// chooseSeasonLayout picks the season layout for a series. The default
// layout wins unless the disk census exceeds it, in which case the
// provider's episode groups are tried: first a near-count match
// (episodes on disk >= 95% of the group's, equal season count), then an
// exact count match, then the first group. Ambiguous matches are logged
// and the first in provider order is taken.
func (e *Engine) chooseSeasonLayout(ctx context.Context, tvID int64, details *tmdb.TVDetails, nbSeasons, nbEpisodes int) []seasonPlan {
	if nbEpisodes <= details.NumberOfEpisodes && nbSeasons <= details.NumberOfSeasons {
		return defaultLayout(details)
	}

	groups, err := e.tv.GetEpisodeGroups(ctx, tvID)
	if err != nil || len(groups) == 0 {
		return defaultLayout(details)
	}

	var picked []tmdb.EpisodeGroup
	for _, gr := range groups {
		if float64(nbEpisodes) >= float64(gr.EpisodeCount)*0.95 && nbSeasons == gr.GroupCount {
			picked = append(picked, gr)
		}
	}
	if len(picked) > 1 {
		e.log.Warn("multiple episode groups match disk layout",
			"series", details.Name, "picked", picked[0].ID, "also", picked[1].ID)
	}
	if len(picked) == 0 {
		for _, gr := range groups {
			if nbEpisodes == gr.EpisodeCount && nbSeasons == gr.GroupCount {
				picked = append(picked, gr)
				break
			}
		}
	}
	if len(picked) == 0 {
		picked = groups[:1]
	}

	gd, err := e.tv.GetEpisodeGroup(ctx, picked[0].ID)
	if err != nil {
		e.log.Warn("episode group fetch failed", "group", picked[0].ID, "error", err)
		return defaultLayout(details)
	}
	return groupLayout(gd)
}

func (e *Engine) scanSeries(ctx context.Context, lib *catalog.Library) error {
	entries, err := os.ReadDir(lib.RootPath)
	if err != nil {
		return fmt.Errorf("read root: %w", err)
	}

	claimed := newClaimSet()
	var dirs, looseFiles []string
	for _, entry := range entries {
		if isPartialFile(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(lib.RootPath, entry.Name()))
		} else {
			looseFiles = append(looseFiles, entry.Name())
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for _, dir := range dirs {
		g.Go(func() error {
			if err := e.reconcileSeriesDir(gctx, lib, dir, claimed); err != nil {
				e.log.Warn("series skipped", "dir", dir, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	e.reconcileLooseEpisodes(ctx, lib, looseFiles)

	return e.pruneSeriesTree(lib)
}

// censusSeries counts season folders and episode files under a series dir.
func censusSeries(dir string) (seasons, episodes int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if folderNumber(entry.Name()) > 0 {
			seasons++
		}
		files, err := os.ReadDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if !f.IsDir() {
				episodes++
			}
		}
	}
	return seasons, episodes
}

func (e *Engine) reconcileSeriesDir(ctx context.Context, lib *catalog.Library, dir string, claimed *claimSet) error {
	folderName := filepath.Base(dir)
	hints := guess.Parse(folderName)
	title := hints.Title
	if title == "" {
		title = folderName
	}
	if hints.AlternativeTitle != "" {
		title = fmt.Sprintf("%s - %s", title, hints.AlternativeTitle)
	}

	// A rename of the folder must not re-create the series: the original
	// folder name is a secondary key.
	if existing, err := e.store.GetSeriesByOriginalTitle(lib.Name, folderName); err != nil {
		return err
	} else if existing != nil {
		if tvID, err := strconv.ParseInt(existing.ExternalID, 10, 64); err == nil && e.tv != nil {
			return e.syncSeriesChildren(ctx, lib, existing, tvID, dir)
		}
		return e.syncSynthesizedSeries(lib, existing, dir)
	}

	if e.tv == nil {
		return e.persistFallbackSeries(lib, folderName, title, dir)
	}

	results, err := e.tv.SearchTV(ctx, title, hints.Year)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(results) == 0 {
		return e.persistFallbackSeries(lib, folderName, title, dir)
	}

	idx := 0
	if e.cfg.AutoPick || len(results) == 1 {
		names := make([]string, len(results))
		for i, r := range results {
			names[i] = r.Name
		}
		idx = claimed.resolveAndClaim(title, names)
	} else {
		claimed.claim(results[0].Name)
	}
	best := results[idx]
	externalID := strconv.FormatInt(best.ID, 10)

	series, err := e.store.GetSeriesByExternalID(lib.Name, externalID)
	if err != nil {
		return err
	}
	if series == nil {
		details, err := e.tv.GetTV(ctx, best.ID)
		if err != nil {
			return fmt.Errorf("details: %w", err)
		}
		series, err = e.createSeries(ctx, lib, folderName, dir, best, details)
		if err != nil {
			return err
		}
	}
	return e.syncSeriesChildren(ctx, lib, series, best.ID, dir)
}

// createSeries persists the series root record with its art and metadata.
func (e *Engine) createSeries(ctx context.Context, lib *catalog.Library, folderName, dir string, best tmdb.TVResult, details *tmdb.TVDetails) (*catalog.Series, error) {
	externalID := strconv.FormatInt(best.ID, 10)

	cover, err := e.assets.FetchImage(ctx, tmdb.ImageURL(best.PosterPath), e.assets.Path("Series", externalID, "Cover"))
	if err != nil {
		cover = e.assets.Placeholder()
	}
	banner, err := e.assets.FetchImage(ctx, tmdb.ImageURL(best.BackdropPath), e.assets.Path("Series", externalID, "Banner"))
	if err != nil {
		banner = e.assets.Placeholder()
	}

	var genres []string
	for _, g := range details.Genres {
		genres = append(genres, g.Name)
	}
	var runTimes []string
	for _, rt := range details.EpisodeRunTime {
		runTimes = append(runTimes, strconv.Itoa(rt))
	}

	series := &catalog.Series{
		ExternalID:     externalID,
		Title:          best.Name,
		OriginalTitle:  folderName,
		Overview:       best.Overview,
		Rating:         best.VoteAverage,
		FirstAirDate:   best.FirstAirDate,
		Genres:         strings.Join(genres, ","),
		CastIDs:        topCastIDs(details.Credits.Cast),
		TrailerURL:     trailerURL(details.Videos.Results),
		CoverPath:      cover,
		BannerPath:     banner,
		EpisodeRunTime: strings.Join(runTimes, ":"),
		SeasonCount:    details.NumberOfSeasons,
		FolderMtime:    mtimeOf(dir),
		LibraryName:    lib.Name,
	}
	if err := e.persist(func() error { return e.store.AddSeries(series) }); err != nil {
		return nil, fmt.Errorf("add series: %w", err)
	}
	if series.ID == 0 {
		// duplicate insert was a no-op; fetch the committed row
		existing, err := e.store.GetSeriesByExternalID(lib.Name, externalID)
		if err != nil || existing == nil {
			return nil, fmt.Errorf("series row missing after insert: %w", err)
		}
		series = existing
	}
	return series, nil
}

// seriesUnchanged reports whether every season folder under dir already
// has a season row with a matching mtime, meaning the previous pass
// converged and there is nothing to ask the provider about.
func (e *Engine) seriesUnchanged(series *catalog.Series, dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		number := folderNumber(entry.Name())
		if number == 0 {
			continue
		}
		season, err := e.store.GetSeason(series.ID, number)
		if err != nil || season == nil {
			return false
		}
		if season.FolderMtime != mtimeOf(filepath.Join(dir, entry.Name())) {
			return false
		}
	}
	return true
}

// syncSeriesChildren reconciles the seasons and episodes of a committed
// series against its folder. An unchanged folder tree returns before any
// provider call.
func (e *Engine) syncSeriesChildren(ctx context.Context, lib *catalog.Library, series *catalog.Series, tvID int64, dir string) error {
	if e.seriesUnchanged(series, dir) {
		return nil
	}

	details, err := e.tv.GetTV(ctx, tvID)
	if err != nil {
		return fmt.Errorf("details: %w", err)
	}

	nbSeasons, nbEpisodes := censusSeries(dir)
	layout := e.chooseSeasonLayout(ctx, tvID, details, nbSeasons, nbEpisodes)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read series dir: %w", err)
	}

	for _, plan := range layout {
		var seasonDir string
		for _, entry := range entries {
			if entry.IsDir() && folderNumber(entry.Name()) == plan.number {
				seasonDir = filepath.Join(dir, entry.Name())
				break
			}
		}
		if seasonDir == "" {
			continue
		}
		if err := e.syncSeason(ctx, lib, series, tvID, plan, seasonDir); err != nil {
			e.log.Warn("season skipped", "series", series.Title, "season", plan.number, "error", err)
		}
	}
	return nil
}

func (e *Engine) syncSeason(ctx context.Context, lib *catalog.Library, series *catalog.Series, tvID int64, plan seasonPlan, seasonDir string) error {
	dirMtime := mtimeOf(seasonDir)

	season, err := e.store.GetSeason(series.ID, plan.number)
	if err != nil {
		return err
	}
	if season != nil && season.FolderMtime == dirMtime {
		// unchanged since last pass
		return nil
	}

	files, err := os.ReadDir(seasonDir)
	if err != nil {
		return fmt.Errorf("read season dir: %w", err)
	}
	var episodeFiles []string
	for _, f := range files {
		if !f.IsDir() && !isPartialFile(f.Name()) {
			episodeFiles = append(episodeFiles, f.Name())
		}
	}

	if season == nil {
		cover, err := e.assets.FetchImage(ctx, tmdb.ImageURL(plan.posterPath), e.assets.Path("Season", plan.externalID, "Cover"))
		if err != nil {
			cover = e.assets.Placeholder()
		}
		season = &catalog.Season{
			SeriesID:       series.ID,
			ExternalID:     plan.externalID,
			SeasonNumber:   plan.number,
			Title:          plan.name,
			Overview:       plan.overview,
			EpisodeCount:   plan.episodeCount,
			EpisodesOnDisk: len(episodeFiles),
			AirDate:        plan.airDate,
			CoverPath:      cover,
			FolderMtime:    dirMtime,
		}
		if err := e.persist(func() error { return e.store.AddSeason(season) }); err != nil {
			return fmt.Errorf("add season: %w", err)
		}
		if season.ID == 0 {
			committed, err := e.store.GetSeason(series.ID, plan.number)
			if err != nil || committed == nil {
				return fmt.Errorf("season row missing after insert: %w", err)
			}
			season = committed
		}
	}

	for _, name := range episodeFiles {
		index, ok := episodeIndex(guess.Parse(stem(name)))
		if !ok {
			e.log.Warn("episode skipped", "file", name, "error", fmt.Sprintf("no episode index in %q", name))
			continue
		}
		slug := filepath.Join(seasonDir, name)
		if err := e.reconcileEpisode(ctx, lib, tvID, season, plan, name, slug, index); err != nil {
			e.log.Warn("episode skipped", "file", name, "error", err)
		}
	}

	if err := e.persist(func() error {
		return e.store.UpdateSeasonDiskState(season.ID, dirMtime, len(episodeFiles))
	}); err != nil {
		e.log.Warn("season disk state update failed", "season", season.ID, "error", err)
	}
	return nil
}

func (e *Engine) reconcileEpisode(ctx context.Context, lib *catalog.Library, tvID int64, season *catalog.Season, plan seasonPlan, name, slug string, index int) error {
	exists, err := e.store.EpisodeExistsBySlug(lib.Name, slug)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	taken, err := e.store.EpisodeExists(season.ID, index)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}

	// Identity: group layouts carry their own episode list; the default
	// layout asks the provider by (season, episode) number.
	var info *tmdb.EpisodeDetails
	if plan.episodes != nil {
		if index >= 1 && index <= len(plan.episodes) {
			info = &plan.episodes[index-1]
		}
	} else if e.tv != nil {
		d, err := e.tv.GetEpisode(ctx, tvID, plan.number, index)
		if err != nil {
			e.log.Debug("episode details unavailable", "series", tvID, "season", plan.number, "episode", index, "error", err)
		} else {
			info = d
		}
	}

	episode := &catalog.Episode{
		SeasonID:      season.ID,
		EpisodeNumber: index,
		Slug:          slug,
		LibraryName:   lib.Name,
	}
	if info != nil {
		externalID := strconv.FormatInt(info.ID, 10)
		cover, err := e.assets.FetchImage(ctx, tmdb.ImageURL(info.StillPath), e.assets.Path("Episode", externalID, "Cover"))
		if err != nil {
			cover = e.assets.Placeholder()
		}
		episode.ExternalID = externalID
		episode.Title = info.Name
		episode.Overview = info.Overview
		episode.AirDate = info.AirDate
		episode.CoverPath = cover
	} else {
		episode.ExternalID = uuid.NewString()
		episode.Title = stem(name)
		episode.CoverPath = e.assets.Placeholder()
	}
	return e.persist(func() error { return e.store.AddEpisode(episode) })
}

// persistFallbackSeries records a series no provider could identify: the
// whole disk tree is cataloged under synthesized identities.
func (e *Engine) persistFallbackSeries(lib *catalog.Library, folderName, title string, dir string) error {
	series := &catalog.Series{
		ExternalID:    uuid.NewString(),
		Title:         title,
		OriginalTitle: folderName,
		CoverPath:     e.assets.Placeholder(),
		BannerPath:    e.assets.Placeholder(),
		FolderMtime:   mtimeOf(dir),
		LibraryName:   lib.Name,
	}
	if err := e.persist(func() error { return e.store.AddSeries(series) }); err != nil {
		return fmt.Errorf("add series: %w", err)
	}
	if series.ID == 0 {
		existing, err := e.store.GetSeriesByOriginalTitle(lib.Name, folderName)
		if err != nil || existing == nil {
			return fmt.Errorf("series row missing after insert: %w", err)
		}
		series = existing
	}
	return e.syncSynthesizedSeries(lib, series, dir)
}

// syncSynthesizedSeries censuses the disk tree of a series without a
// provider identity and mirrors it into the catalog.
func (e *Engine) syncSynthesizedSeries(lib *catalog.Library, series *catalog.Series, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read series dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		number := folderNumber(entry.Name())
		if number == 0 {
			continue
		}
		seasonDir := filepath.Join(dir, entry.Name())

		files, err := os.ReadDir(seasonDir)
		if err != nil {
			continue
		}
		var episodeFiles []string
		for _, f := range files {
			if !f.IsDir() && !isPartialFile(f.Name()) {
				episodeFiles = append(episodeFiles, f.Name())
			}
		}

		season, err := e.store.GetSeason(series.ID, number)
		if err != nil {
			return err
		}
		if season == nil {
			season = &catalog.Season{
				SeriesID:       series.ID,
				ExternalID:     uuid.NewString(),
				SeasonNumber:   number,
				Title:          entry.Name(),
				EpisodesOnDisk: len(episodeFiles),
				CoverPath:      e.assets.Placeholder(),
				FolderMtime:    mtimeOf(seasonDir),
			}
			if err := e.persist(func() error { return e.store.AddSeason(season) }); err != nil {
				return fmt.Errorf("add season: %w", err)
			}
			if season.ID == 0 {
				committed, err := e.store.GetSeason(series.ID, number)
				if err != nil || committed == nil {
					return fmt.Errorf("season row missing after insert: %w", err)
				}
				season = committed
			}
		}

		for i, name := range episodeFiles {
			slug := filepath.Join(seasonDir, name)
			exists, err := e.store.EpisodeExistsBySlug(lib.Name, slug)
			if err != nil || exists {
				continue
			}
			hints := guess.Parse(stem(name))
			index, ok := episodeIndex(hints)
			if !ok {
				index = i + 1 // ordinal fallback
			}
			episode := &catalog.Episode{
				SeasonID:      season.ID,
				ExternalID:    uuid.NewString(),
				EpisodeNumber: index,
				Title:         stem(name),
				CoverPath:     e.assets.Placeholder(),
				Slug:          slug,
				LibraryName:   lib.Name,
			}
			if err := e.persist(func() error { return e.store.AddEpisode(episode) }); err != nil {
				e.log.Warn("episode persist failed", "slug", slug, "error", err)
			}
		}
	}
	return nil
}

// reconcileLooseEpisodes catalogs episode files sitting directly in the
// library root: each derives its series from its own filename, with the
// sibling files of the same show forming the census for layout choice.
func (e *Engine) reconcileLooseEpisodes(ctx context.Context, lib *catalog.Library, files []string) {
	if e.tv == nil || len(files) == 0 {
		return
	}

	for _, name := range files {
		slug := filepath.Join(lib.RootPath, name)
		exists, err := e.store.EpisodeExistsBySlug(lib.Name, slug)
		if err != nil || exists {
			continue
		}
		if err := e.reconcileLooseEpisode(ctx, lib, name, slug, files); err != nil {
			e.log.Warn("loose episode skipped", "file", name, "error", err)
		}
	}
}

func (e *Engine) reconcileLooseEpisode(ctx context.Context, lib *catalog.Library, name, slug string, siblings []string) error {
	hints := guess.Parse(stem(name))
	if hints.Title == "" {
		return fmt.Errorf("no title in %q", name)
	}
	seasonIndex := hints.Season
	if seasonIndex == 0 {
		seasonIndex = 1
	}
	epIndex, ok := episodeIndex(hints)
	if !ok {
		return fmt.Errorf("no episode index in %q", name)
	}

	results, err := e.tv.SearchTV(ctx, hints.Title, 0)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no match for %q", hints.Title)
	}
	best := results[0]
	details, err := e.tv.GetTV(ctx, best.ID)
	if err != nil {
		return fmt.Errorf("details: %w", err)
	}

	// Census across sibling files of the same show.
	seasonSet := map[int]bool{}
	nbEpisodes := 0
	for _, sibling := range siblings {
		sh := guess.Parse(stem(sibling))
		if sh.Title != hints.Title {
			continue
		}
		nbEpisodes++
		sn := sh.Season
		if sn == 0 {
			sn = 1
		}
		seasonSet[sn] = true
	}
	layout := e.chooseSeasonLayout(ctx, best.ID, details, len(seasonSet), nbEpisodes)

	var plan *seasonPlan
	for i := range layout {
		if layout[i].number == seasonIndex {
			plan = &layout[i]
			break
		}
	}
	if plan == nil {
		return fmt.Errorf("season %d not in layout of %q", seasonIndex, best.Name)
	}

	externalID := strconv.FormatInt(best.ID, 10)
	series, err := e.store.GetSeriesByExternalID(lib.Name, externalID)
	if err != nil {
		return err
	}
	if series == nil {
		series, err = e.createSeries(ctx, lib, stem(name), lib.RootPath, best, details)
		if err != nil {
			return err
		}
	}

	season, err := e.store.GetSeason(series.ID, plan.number)
	if err != nil {
		return err
	}
	if season == nil {
		cover, err := e.assets.FetchImage(ctx, tmdb.ImageURL(plan.posterPath), e.assets.Path("Season", plan.externalID, "Cover"))
		if err != nil {
			cover = e.assets.Placeholder()
		}
		season = &catalog.Season{
			SeriesID:     series.ID,
			ExternalID:   plan.externalID,
			SeasonNumber: plan.number,
			Title:        plan.name,
			Overview:     plan.overview,
			EpisodeCount: plan.episodeCount,
			AirDate:      plan.airDate,
			CoverPath:    cover,
		}
		if err := e.persist(func() error { return e.store.AddSeason(season) }); err != nil {
			return fmt.Errorf("add season: %w", err)
		}
		if season.ID == 0 {
			committed, err := e.store.GetSeason(series.ID, plan.number)
			if err != nil || committed == nil {
				return fmt.Errorf("season row missing after insert: %w", err)
			}
			season = committed
		}
	}

	return e.reconcileEpisode(ctx, lib, best.ID, season, *plan, name, slug, epIndex)
}

// pruneSeriesTree removes episodes whose file is gone, then empty
// seasons, then season-less series. Strictly bottom-up.
func (e *Engine) pruneSeriesTree(lib *catalog.Library) error {
	series, err := e.store.ListSeries(lib.Name)
	if err != nil {
		return fmt.Errorf("list series: %w", err)
	}

	for _, sr := range series {
		seasons, err := e.store.ListSeasons(sr.ID)
		if err != nil {
			e.log.Error("list seasons failed", "series", sr.ID, "error", err)
			continue
		}
		for _, sn := range seasons {
			episodes, err := e.store.ListEpisodes(sn.ID)
			if err != nil {
				e.log.Error("list episodes failed", "season", sn.ID, "error", err)
				continue
			}
			for _, ep := range episodes {
				if _, err := os.Stat(ep.Slug); err == nil {
					continue
				}
				if err := e.store.DeleteEpisodeBySlug(lib.Name, ep.Slug); err != nil {
					e.log.Error("prune episode failed", "slug", ep.Slug, "error", err)
					continue
				}
				e.log.Info("pruned", "type", "episode", "slug", ep.Slug)
			}

			n, err := e.store.CountEpisodes(sn.ID)
			if err != nil {
				continue
			}
			if n == 0 {
				if err := e.store.DeleteSeason(sn.ID); err != nil {
					e.log.Error("prune season failed", "season", sn.ID, "error", err)
					continue
				}
				e.log.Info("pruned", "type", "season", "series", sr.Title, "season", sn.SeasonNumber)
			}
		}

		remaining, err := e.store.ListSeasons(sr.ID)
		if err != nil {
			continue
		}
		if len(remaining) == 0 {
			if err := e.store.DeleteSeries(sr.ID); err != nil {
				e.log.Error("prune series failed", "series", sr.ID, "error", err)
				continue
			}
			e.log.Info("pruned", "type", "series", "title", sr.Title)
		}
	}
	return nil
}
