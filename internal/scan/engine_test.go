package scan

import (
	"archive/zip"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/internal/deezer"
	"github.com/vmunix/shelfd/internal/igdb"
	"github.com/vmunix/shelfd/internal/migrations"
	"github.com/vmunix/shelfd/internal/scan/mocks"
	"github.com/vmunix/shelfd/internal/tmdb"
)

const placeholder = "/assets/placeholder.png"

type engineMocks struct {
	movies *mocks.MockMovieProvider
	tv     *mocks.MockTVProvider
	music  *mocks.MockMusicProvider
	games  *mocks.MockGameProvider
	assets *mocks.MockAssetStore
}

// newTestEngine builds an engine over a real on-disk catalog with mocked
// providers. Providers are not wired; each test attaches what it needs.
func newTestEngine(t *testing.T) (*Engine, *catalog.Store, *engineMocks) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)
	store := catalog.NewStore(db)

	ctrl := gomock.NewController(t)
	m := &engineMocks{
		movies: mocks.NewMockMovieProvider(ctrl),
		tv:     mocks.NewMockTVProvider(ctrl),
		music:  mocks.NewMockMusicProvider(ctrl),
		games:  mocks.NewMockGameProvider(ctrl),
		assets: mocks.NewMockAssetStore(ctrl),
	}
	m.assets.EXPECT().Placeholder().Return(placeholder).AnyTimes()
	m.assets.EXPECT().Exists(gomock.Any()).Return(false).AnyTimes()
	m.assets.EXPECT().Path(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(entity, id, kind string) string {
			return "/assets/" + entity + "_" + id + "_" + kind
		}).AnyTimes()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := New(store, m.assets, Config{Workers: 1, AutoPick: true}, log)
	return engine, store, m
}

func testLibrary(t *testing.T, store *catalog.Store, name string, mt catalog.MediaType) *catalog.Library {
	t.Helper()
	lib := &catalog.Library{Name: name, MediaType: mt, RootPath: t.TempDir()}
	require.NoError(t, store.UpsertLibrary(lib))
	return lib
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("test media bytes"), 0644))
}

func TestScan_Movies(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithMovieProvider(m.movies)
	lib := testLibrary(t, store, "films", catalog.MediaTypeMovie)
	writeFile(t, filepath.Join(lib.RootPath, "The Matrix (1999).mkv"))

	m.movies.EXPECT().SearchMovies(gomock.Any(), "The Matrix", 1999).Return([]tmdb.MovieResult{
		{
			ID: 603, Title: "The Matrix", Overview: "Welcome to the desert of the real.",
			ReleaseDate: "1999-03-30", PosterPath: "/matrix.jpg", BackdropPath: "/matrix-bd.jpg",
			VoteAverage: 8.2, GenreIDs: []int{28, 878},
		},
	}, nil).Times(1)
	m.movies.EXPECT().GetMovie(gomock.Any(), int64(603)).Return(&tmdb.MovieDetails{
		ID: 603,
		Credits: tmdb.Credits{Cast: []tmdb.CastMember{
			{ID: 6384}, {ID: 2975}, {ID: 530}, {ID: 9376}, {ID: 1331}, {ID: 9999},
		}},
		Videos: tmdb.VideoList{Results: []tmdb.Video{{Site: "YouTube", Type: "Trailer", Key: "m8e9"}}},
	}, nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), tmdb.ImageURL("/matrix.jpg"), gomock.Any()).
		Return("/assets/Movie_603_Cover.avif", nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), tmdb.ImageURL("/matrix-bd.jpg"), gomock.Any()).
		Return("/assets/Movie_603_Banner.avif", nil).Times(1)

	require.NoError(t, engine.Scan(context.Background(), lib))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "603", it.ExternalID)
	assert.Equal(t, "The Matrix", it.Title)
	assert.Equal(t, "The Matrix (1999)", it.RealTitle)
	assert.Equal(t, "Action,Science Fiction", it.Genres)
	assert.Equal(t, "6384,2975,530,9376,1331", it.CastIDs)
	assert.Equal(t, "https://www.youtube.com/embed/m8e9", it.TrailerURL)
	assert.Equal(t, "/assets/Movie_603_Cover.avif", it.CoverPath)
	assert.Equal(t, "/assets/Movie_603_Banner.avif", it.BannerPath)

	// second pass converges without touching the provider again
	require.NoError(t, engine.Scan(context.Background(), lib))
	items, err = store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestScan_Movies_FallbackWhenUnmatched(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithMovieProvider(m.movies)
	lib := testLibrary(t, store, "films", catalog.MediaTypeMovie)
	writeFile(t, filepath.Join(lib.RootPath, "Home Footage.mkv"))

	m.movies.EXPECT().SearchMovies(gomock.Any(), "Home Footage", 0).Return(nil, nil).Times(1)

	require.NoError(t, engine.Scan(context.Background(), lib))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Home Footage", items[0].Title)
	assert.Equal(t, placeholder, items[0].CoverPath)
	assert.Len(t, items[0].ExternalID, 36) // synthesized uuid
}

func TestScan_Movies_PrunesDeletedFiles(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithMovieProvider(m.movies)
	lib := testLibrary(t, store, "films", catalog.MediaTypeMovie)
	slug := filepath.Join(lib.RootPath, "Gone.mkv")
	writeFile(t, slug)

	m.movies.EXPECT().SearchMovies(gomock.Any(), "Gone", 0).Return(nil, nil).Times(1)
	require.NoError(t, engine.Scan(context.Background(), lib))

	require.NoError(t, os.Remove(slug))
	require.NoError(t, engine.Scan(context.Background(), lib))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScan_UnreachableRoot(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	lib := &catalog.Library{
		Name: "films", MediaType: catalog.MediaTypeMovie,
		RootPath: filepath.Join(t.TempDir(), "unmounted"),
	}
	require.NoError(t, store.UpsertLibrary(lib))

	err := engine.Scan(context.Background(), lib)
	assert.ErrorContains(t, err, "root unreachable")
}

func TestScanAll_IsolatesFailures(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	testLibrary(t, store, "good", catalog.MediaTypeMovie)
	bad := &catalog.Library{
		Name: "bad", MediaType: catalog.MediaTypeMovie,
		RootPath: filepath.Join(t.TempDir(), "unmounted"),
	}
	require.NoError(t, store.UpsertLibrary(bad))

	err := engine.ScanAll(context.Background())
	assert.ErrorContains(t, err, "1 of 2 library scans failed")
}

func TestScan_Games_StripsNumericPrefix(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithGameProvider(m.games)
	lib := testLibrary(t, store, "roms", catalog.MediaTypeGame)
	writeFile(t, filepath.Join(lib.RootPath, "GBA", "0042 - Tetris.gba"))

	m.games.EXPECT().Configured().Return(false).AnyTimes()

	require.NoError(t, engine.Scan(context.Background(), lib))

	// the collection index is stripped on disk, not just in the title
	assert.FileExists(t, filepath.Join(lib.RootPath, "GBA", "Tetris.gba"))
	assert.NoFileExists(t, filepath.Join(lib.RootPath, "GBA", "0042 - Tetris.gba"))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tetris", items[0].Title)
	assert.Equal(t, "GBA", items[0].Console)
	assert.Len(t, items[0].ExternalID, 36)
}

func TestScan_Games_Identified(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithGameProvider(m.games)
	lib := testLibrary(t, store, "roms", catalog.MediaTypeGame)
	writeFile(t, filepath.Join(lib.RootPath, "SNES", "Chrono Trigger.sfc"))

	m.games.EXPECT().Configured().Return(true).AnyTimes()
	m.games.EXPECT().SearchGame(gomock.Any(), "Chrono Trigger", "SNES").Return(&igdb.Game{
		ID: 1045, Title: "Chrono Trigger", Summary: "Time travel RPG.",
		Rating: 94.1, ReleaseDate: "1995-03-11", Genres: []string{"Role-playing (RPG)"},
		CoverURL: "https://images.igdb.com/ct.jpg",
	}, nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), "https://images.igdb.com/ct.jpg", gomock.Any()).
		Return("/assets/Game_1045_Cover.avif", nil).Times(1)

	require.NoError(t, engine.Scan(context.Background(), lib))
	require.NoError(t, engine.Scan(context.Background(), lib))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1045", items[0].ExternalID)
	assert.Equal(t, "1995-03-11", items[0].ReleaseDate)
	assert.Equal(t, "/assets/Game_1045_Cover.avif", items[0].CoverPath)
}

func TestScan_Series_Identified(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithTVProvider(m.tv)
	lib := testLibrary(t, store, "shows", catalog.MediaTypeSeries)
	epSlug := filepath.Join(lib.RootPath, "Breaking Bad", "Season 1", "Breaking Bad S01E01.mkv")
	writeFile(t, epSlug)

	details := &tmdb.TVDetails{
		ID: 1396, Name: "Breaking Bad",
		NumberOfSeasons: 1, NumberOfEpisodes: 7,
		Seasons: []tmdb.SeasonInfo{
			{ID: 3572, SeasonNumber: 1, Name: "Season 1", EpisodeCount: 7, PosterPath: "/s1.jpg"},
		},
	}

	m.tv.EXPECT().SearchTV(gomock.Any(), "Breaking Bad", 0).Return([]tmdb.TVResult{
		{ID: 1396, Name: "Breaking Bad", PosterPath: "/bb.jpg", BackdropPath: "/bb-bd.jpg", VoteAverage: 8.9},
	}, nil).Times(1)
	// create pass fetches details once for the series record and once for
	// the children sync; the second scan sees unchanged folder mtimes and
	// never reaches the provider
	m.tv.EXPECT().GetTV(gomock.Any(), int64(1396)).Return(details, nil).Times(2)
	m.tv.EXPECT().GetEpisode(gomock.Any(), int64(1396), 1, 1).Return(&tmdb.EpisodeDetails{
		ID: 62085, Name: "Pilot", EpisodeNumber: 1, AirDate: "2008-01-20", StillPath: "/pilot.jpg",
	}, nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("/assets/series-art.avif", nil).AnyTimes()

	require.NoError(t, engine.Scan(context.Background(), lib))
	require.NoError(t, engine.Scan(context.Background(), lib))

	series, err := store.GetSeriesByExternalID(lib.Name, "1396")
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.Equal(t, "Breaking Bad", series.Title)
	assert.Equal(t, "Breaking Bad", series.OriginalTitle)

	season, err := store.GetSeason(series.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, season)
	assert.Equal(t, "3572", season.ExternalID)
	assert.Equal(t, 1, season.EpisodesOnDisk)

	episodes, err := store.ListEpisodes(season.ID)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Pilot", episodes[0].Title)
	assert.Equal(t, epSlug, episodes[0].Slug)
}

func TestScan_Series_LooseEpisode(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithTVProvider(m.tv)
	lib := testLibrary(t, store, "shows", catalog.MediaTypeSeries)
	epSlug := filepath.Join(lib.RootPath, "Firefly S01E02.mkv")
	writeFile(t, epSlug)

	details := &tmdb.TVDetails{
		ID: 1437, Name: "Firefly",
		NumberOfSeasons: 1, NumberOfEpisodes: 14,
		Seasons: []tmdb.SeasonInfo{
			{ID: 4204, SeasonNumber: 1, Name: "Season 1", EpisodeCount: 14, PosterPath: "/ff-s1.jpg"},
		},
	}

	m.tv.EXPECT().SearchTV(gomock.Any(), "Firefly", 0).Return([]tmdb.TVResult{
		{ID: 1437, Name: "Firefly", PosterPath: "/ff.jpg"},
	}, nil).Times(1)
	m.tv.EXPECT().GetTV(gomock.Any(), int64(1437)).Return(details, nil).Times(1)
	m.tv.EXPECT().GetEpisode(gomock.Any(), int64(1437), 1, 2).Return(&tmdb.EpisodeDetails{
		ID: 52492, Name: "The Train Job", EpisodeNumber: 2, AirDate: "2002-09-20", StillPath: "/train.jpg",
	}, nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("/assets/series-art.avif", nil).AnyTimes()

	require.NoError(t, engine.Scan(context.Background(), lib))
	// the file is already cataloged by slug, so the second pass never
	// reaches the provider
	require.NoError(t, engine.Scan(context.Background(), lib))

	series, err := store.GetSeriesByExternalID(lib.Name, "1437")
	require.NoError(t, err)
	require.NotNil(t, series)

	season, err := store.GetSeason(series.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, season)
	assert.Equal(t, "4204", season.ExternalID)

	episodes, err := store.ListEpisodes(season.ID)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 2, episodes[0].EpisodeNumber)
	assert.Equal(t, "The Train Job", episodes[0].Title)
	assert.Equal(t, epSlug, episodes[0].Slug)
}

func TestScan_Series_SynthesizedAndPruned(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	lib := testLibrary(t, store, "shows", catalog.MediaTypeSeries)
	seriesDir := filepath.Join(lib.RootPath, "Holiday Recordings")
	first := filepath.Join(seriesDir, "Season 1", "beach.mkv")
	second := filepath.Join(seriesDir, "Season 1", "cabin.mkv")
	writeFile(t, first)
	writeFile(t, second)

	require.NoError(t, engine.Scan(context.Background(), lib))

	series, err := store.GetSeriesByOriginalTitle(lib.Name, "Holiday Recordings")
	require.NoError(t, err)
	require.NotNil(t, series)
	season, err := store.GetSeason(series.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, season)
	n, err := store.CountEpisodes(season.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// a deleted file prunes its episode, but the rest of the tree stays
	require.NoError(t, os.Remove(second))
	require.NoError(t, engine.Scan(context.Background(), lib))
	n, err = store.CountEpisodes(season.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// removing the whole folder collapses the tree bottom-up
	require.NoError(t, os.RemoveAll(seriesDir))
	require.NoError(t, engine.Scan(context.Background(), lib))
	all, err := store.ListSeries(lib.Name)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestScan_Music_Identified(t *testing.T) {
	engine, store, m := newTestEngine(t)
	engine.WithMusicProvider(m.music)
	lib := testLibrary(t, store, "tunes", catalog.MediaTypeMusic)
	writeFile(t, filepath.Join(lib.RootPath, "Daft Punk", "Discovery", "01 - One More Time.mp3"))
	writeFile(t, filepath.Join(lib.RootPath, "Daft Punk", "loose demo.mp3"))

	m.music.EXPECT().SearchArtists(gomock.Any(), "Daft Punk").Return([]deezer.Artist{
		{ID: 27, Name: "Daft Punk", PictureBig: "https://cdn.deezer/27.jpg"},
	}, nil).Times(1)
	m.music.EXPECT().SearchAlbums(gomock.Any(), "Daft Punk - Discovery").Return([]deezer.Album{
		{ID: 302127, Title: "Discovery", CoverBig: "https://cdn.deezer/302127.jpg"},
	}, nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), "https://cdn.deezer/27.jpg", gomock.Any()).
		Return("/assets/Artist_27_Cover.avif", nil).Times(1)
	m.assets.EXPECT().FetchImage(gomock.Any(), "https://cdn.deezer/302127.jpg", gomock.Any()).
		Return("/assets/Album_302127_Cover.avif", nil).Times(1)

	require.NoError(t, engine.Scan(context.Background(), lib))

	artist, err := store.GetArtistByName(lib.Name, "Daft Punk")
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, "27", artist.ExternalID)

	album, err := store.GetAlbumByDir(artist.ID, "Discovery")
	require.NoError(t, err)
	require.NotNil(t, album)
	assert.Equal(t, "302127", album.ExternalID)
	assert.Equal(t, "Discovery", album.Title)

	tracks, err := store.ListTracks(lib.Name)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	byTitle := map[string]*catalog.Track{}
	for _, tr := range tracks {
		byTitle[tr.Title] = tr
	}
	// the numeric prefix yields to the real title
	require.Contains(t, byTitle, "One More Time")
	assert.Equal(t, album.ID, byTitle["One More Time"].AlbumID)
	// the loose file attaches to the artist only
	require.Contains(t, byTitle, "loose demo")
	assert.Zero(t, byTitle["loose demo"].AlbumID)
}

func TestScan_Music_PrunesBottomUp(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	lib := testLibrary(t, store, "tunes", catalog.MediaTypeMusic)
	artistDir := filepath.Join(lib.RootPath, "Unknown Band")
	writeFile(t, filepath.Join(artistDir, "Demos", "take one.mp3"))
	writeFile(t, filepath.Join(artistDir, "rehearsal.mp3"))

	require.NoError(t, engine.Scan(context.Background(), lib))
	artist, err := store.GetArtistByName(lib.Name, "Unknown Band")
	require.NoError(t, err)
	require.NotNil(t, artist)

	// dropping the album keeps the artist alive through its loose track
	require.NoError(t, os.RemoveAll(filepath.Join(artistDir, "Demos")))
	require.NoError(t, engine.Scan(context.Background(), lib))
	nAlbums, err := store.CountAlbums(artist.ID)
	require.NoError(t, err)
	assert.Zero(t, nAlbums)
	nTracks, err := store.CountTracks(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, nTracks)

	require.NoError(t, os.RemoveAll(artistDir))
	require.NoError(t, engine.Scan(context.Background(), lib))
	gone, err := store.GetArtistByName(lib.Name, "Unknown Band")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestScan_Videos_IdentityByContentHash(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	lib := testLibrary(t, store, "clips", catalog.MediaTypeVideo)
	slug := filepath.Join(lib.RootPath, "clip.webm")
	writeFile(t, slug)

	require.NoError(t, engine.Scan(context.Background(), lib))
	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	hash := items[0].ContentHash
	assert.Equal(t, hash, items[0].ExternalID)
	assert.Equal(t, "clip", items[0].Title)

	// a rename keeps the identity: same hash, new slug, old record pruned
	renamed := filepath.Join(lib.RootPath, "renamed clip.webm")
	require.NoError(t, os.Rename(slug, renamed))
	require.NoError(t, engine.Scan(context.Background(), lib))
	items, err = store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, renamed, items[0].Slug)
	assert.Equal(t, hash, items[0].ContentHash)
}

func TestScan_Books(t *testing.T) {
	engine, store, m := newTestEngine(t)
	lib := testLibrary(t, store, "shelf", catalog.MediaTypeBook)
	writeFile(t, filepath.Join(lib.RootPath, "Dune.pdf"))

	cbz := filepath.Join(lib.RootPath, "Watchmen.cbz")
	f, err := os.Create(cbz)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("cover.png")
	require.NoError(t, err)
	_, err = w.Write([]byte("cover page bytes"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	m.assets.EXPECT().WriteImage([]byte("cover page bytes"), gomock.Any()).
		Return("/assets/Book_2_Cover.avif", nil).Times(1)

	require.NoError(t, engine.Scan(context.Background(), lib))

	items, err := store.ListItems(catalog.ItemFilter{Library: &lib.Name})
	require.NoError(t, err)
	require.Len(t, items, 2)
	byTitle := map[string]*catalog.Item{}
	for _, it := range items {
		byTitle[it.Title] = it
	}
	require.Contains(t, byTitle, "Dune")
	assert.Equal(t, "PDF", byTitle["Dune"].BookType)
	assert.Equal(t, placeholder, byTitle["Dune"].CoverPath)
	require.Contains(t, byTitle, "Watchmen")
	assert.Equal(t, "CBZ", byTitle["Watchmen"].BookType)
	assert.Equal(t, "/assets/Book_2_Cover.avif", byTitle["Watchmen"].CoverPath)
}

func TestChooseSeasonLayout_GroupFallback(t *testing.T) {
	engine, _, m := newTestEngine(t)
	engine.WithTVProvider(m.tv)

	details := &tmdb.TVDetails{
		ID: 30983, Name: "Anime Show",
		NumberOfSeasons: 1, NumberOfEpisodes: 5,
		Seasons: []tmdb.SeasonInfo{{ID: 1, SeasonNumber: 1, EpisodeCount: 5}},
	}

	// disk census exceeds the default layout, so the episode groups win
	m.tv.EXPECT().GetEpisodeGroups(gomock.Any(), int64(30983)).Return([]tmdb.EpisodeGroup{
		{ID: "grp-a", EpisodeCount: 10, GroupCount: 2},
	}, nil).Times(1)
	m.tv.EXPECT().GetEpisodeGroup(gomock.Any(), "grp-a").Return(&tmdb.EpisodeGroupDetails{
		ID: "grp-a",
		Groups: []tmdb.GroupSeason{
			{ID: "g1", Name: "Arc 1", Order: 1, Episodes: make([]tmdb.EpisodeDetails, 5)},
			{ID: "g2", Name: "Arc 2", Order: 2, Episodes: make([]tmdb.EpisodeDetails, 5)},
		},
	}, nil).Times(1)

	layout := engine.chooseSeasonLayout(context.Background(), 30983, details, 2, 10)
	require.Len(t, layout, 2)
	assert.Equal(t, "g1", layout[0].externalID)
	assert.Len(t, layout[1].episodes, 5)
}

func TestChooseSeasonLayout_DefaultWhenWithinBounds(t *testing.T) {
	engine, _, m := newTestEngine(t)
	engine.WithTVProvider(m.tv)

	details := &tmdb.TVDetails{
		NumberOfSeasons: 2, NumberOfEpisodes: 20,
		Seasons: []tmdb.SeasonInfo{
			{ID: 1, SeasonNumber: 1, EpisodeCount: 10},
			{ID: 2, SeasonNumber: 2, EpisodeCount: 10},
		},
	}

	layout := engine.chooseSeasonLayout(context.Background(), 99, details, 2, 18)
	require.Len(t, layout, 2)
	assert.Equal(t, "1", layout[0].externalID)
	assert.Nil(t, layout[0].episodes)
}
