package catalog

import (
	"errors"
	"testing"
)

func seedSeries(t *testing.T, store *Store) *Series {
	t.Helper()
	sr := &Series{
		ExternalID:    "1396",
		Title:         "Breaking Bad",
		OriginalTitle: "Breaking Bad",
		SeasonCount:   5,
		LibraryName:   "shows",
	}
	if err := store.AddSeries(sr); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	return sr
}

func TestStore_AddSeries(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)

	sr := seedSeries(t, store)
	if sr.ID == 0 {
		t.Error("ID should be set after AddSeries")
	}

	got, err := store.GetSeriesByExternalID("shows", "1396")
	if err != nil {
		t.Fatalf("GetSeriesByExternalID: %v", err)
	}
	if got == nil || got.Title != "Breaking Bad" {
		t.Errorf("got %+v, want Breaking Bad", got)
	}
}

func TestStore_AddSeries_DuplicateExternalID(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)
	seedSeries(t, store)

	dup := &Series{ExternalID: "1396", Title: "Breaking Bad", LibraryName: "shows"}
	if err := store.AddSeries(dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestStore_GetSeries_Missing(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)

	got, err := store.GetSeriesByExternalID("shows", "999")
	if err != nil {
		t.Fatalf("GetSeriesByExternalID: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}

	got, err = store.GetSeriesByOriginalTitle("shows", "Nonexistent")
	if err != nil {
		t.Fatalf("GetSeriesByOriginalTitle: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestStore_GetSeriesByOriginalTitle(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)
	seedSeries(t, store)

	got, err := store.GetSeriesByOriginalTitle("shows", "Breaking Bad")
	if err != nil {
		t.Fatalf("GetSeriesByOriginalTitle: %v", err)
	}
	if got == nil || got.ExternalID != "1396" {
		t.Errorf("got %+v", got)
	}
}

func TestStore_Seasons(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)
	sr := seedSeries(t, store)

	sn := &Season{
		SeriesID:     sr.ID,
		ExternalID:   "3572",
		SeasonNumber: 1,
		Title:        "Season 1",
		EpisodeCount: 7,
	}
	if err := store.AddSeason(sn); err != nil {
		t.Fatalf("AddSeason: %v", err)
	}
	if sn.ID == 0 {
		t.Error("ID should be set after AddSeason")
	}

	dup := &Season{SeriesID: sr.ID, SeasonNumber: 1}
	if err := store.AddSeason(dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate season: err = %v, want ErrDuplicate", err)
	}

	got, err := store.GetSeason(sr.ID, 1)
	if err != nil {
		t.Fatalf("GetSeason: %v", err)
	}
	if got == nil || got.EpisodeCount != 7 {
		t.Errorf("got %+v", got)
	}

	if err := store.UpdateSeasonDiskState(sn.ID, 1700000000, 5); err != nil {
		t.Fatalf("UpdateSeasonDiskState: %v", err)
	}
	got, err = store.GetSeason(sr.ID, 1)
	if err != nil {
		t.Fatalf("GetSeason: %v", err)
	}
	if got.FolderMtime != 1700000000 || got.EpisodesOnDisk != 5 {
		t.Errorf("disk state = (%d, %d), want (1700000000, 5)", got.FolderMtime, got.EpisodesOnDisk)
	}
}

func TestStore_Episodes(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)
	sr := seedSeries(t, store)

	sn := &Season{SeriesID: sr.ID, SeasonNumber: 2}
	if err := store.AddSeason(sn); err != nil {
		t.Fatalf("AddSeason: %v", err)
	}

	e := &Episode{
		SeasonID:      sn.ID,
		ExternalID:    "62092",
		EpisodeNumber: 5,
		Title:         "Breakage",
		Slug:          "/media/shows/Breaking Bad/Season 2/S02E05.mkv",
		LibraryName:   "shows",
	}
	if err := store.AddEpisode(e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}

	exists, err := store.EpisodeExistsBySlug("shows", e.Slug)
	if err != nil {
		t.Fatalf("EpisodeExistsBySlug: %v", err)
	}
	if !exists {
		t.Error("expected episode to exist by slug")
	}

	exists, err = store.EpisodeExists(sn.ID, 5)
	if err != nil {
		t.Fatalf("EpisodeExists: %v", err)
	}
	if !exists {
		t.Error("expected episode to exist by number")
	}

	n, err := store.CountEpisodes(sn.ID)
	if err != nil {
		t.Fatalf("CountEpisodes: %v", err)
	}
	if n != 1 {
		t.Errorf("CountEpisodes = %d, want 1", n)
	}

	if err := store.DeleteEpisodeBySlug("shows", e.Slug); err != nil {
		t.Fatalf("DeleteEpisodeBySlug: %v", err)
	}
	if err := store.DeleteEpisodeBySlug("shows", e.Slug); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteSeries_Cascades(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "shows", MediaTypeSeries)
	sr := seedSeries(t, store)

	sn := &Season{SeriesID: sr.ID, SeasonNumber: 1}
	if err := store.AddSeason(sn); err != nil {
		t.Fatalf("AddSeason: %v", err)
	}
	e := &Episode{SeasonID: sn.ID, EpisodeNumber: 1, Slug: "/s/e1.mkv", LibraryName: "shows"}
	if err := store.AddEpisode(e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}

	if err := store.DeleteSeries(sr.ID); err != nil {
		t.Fatalf("DeleteSeries: %v", err)
	}

	seasons, err := store.ListSeasons(sr.ID)
	if err != nil {
		t.Fatalf("ListSeasons: %v", err)
	}
	if len(seasons) != 0 {
		t.Errorf("len(seasons) = %d after cascade, want 0", len(seasons))
	}
	episodes, err := store.ListEpisodes(sn.ID)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 0 {
		t.Errorf("len(episodes) = %d after cascade, want 0", len(episodes))
	}
}
