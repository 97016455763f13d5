package catalog

import (
	"errors"
	"testing"
)

func seedArtist(t *testing.T, store *Store) *Artist {
	t.Helper()
	a := &Artist{ExternalID: "27", Name: "Daft Punk", LibraryName: "tunes"}
	if err := store.AddArtist(a); err != nil {
		t.Fatalf("AddArtist: %v", err)
	}
	return a
}

func TestStore_Artists(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "tunes", MediaTypeMusic)

	a := seedArtist(t, store)
	if a.ID == 0 {
		t.Error("ID should be set after AddArtist")
	}

	got, err := store.GetArtistByName("tunes", "Daft Punk")
	if err != nil {
		t.Fatalf("GetArtistByName: %v", err)
	}
	if got == nil || got.ExternalID != "27" {
		t.Errorf("got %+v", got)
	}

	got, err = store.GetArtistByName("tunes", "Unknown")
	if err != nil {
		t.Fatalf("GetArtistByName: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}

	dup := &Artist{ExternalID: "28", Name: "Daft Punk", LibraryName: "tunes"}
	if err := store.AddArtist(dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate artist: err = %v, want ErrDuplicate", err)
	}
}

func TestStore_Albums(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "tunes", MediaTypeMusic)
	a := seedArtist(t, store)

	al := &Album{
		ExternalID:  "302127",
		Title:       "Discovery",
		DirName:     "Discovery (2001)",
		ArtistID:    a.ID,
		TrackList:   "01 One More Time.flac,02 Aerodynamic.flac",
		LibraryName: "tunes",
	}
	if err := store.AddAlbum(al); err != nil {
		t.Fatalf("AddAlbum: %v", err)
	}
	if al.ID == 0 {
		t.Error("ID should be set after AddAlbum")
	}

	got, err := store.GetAlbumByDir(a.ID, "Discovery (2001)")
	if err != nil {
		t.Fatalf("GetAlbumByDir: %v", err)
	}
	if got == nil || got.Title != "Discovery" {
		t.Errorf("got %+v", got)
	}

	if err := store.UpdateAlbumTracks(al.ID, "01 One More Time.flac"); err != nil {
		t.Fatalf("UpdateAlbumTracks: %v", err)
	}
	got, err = store.GetAlbumByDir(a.ID, "Discovery (2001)")
	if err != nil {
		t.Fatalf("GetAlbumByDir: %v", err)
	}
	if got.TrackList != "01 One More Time.flac" {
		t.Errorf("TrackList = %q", got.TrackList)
	}
}

func TestStore_Tracks(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "tunes", MediaTypeMusic)
	a := seedArtist(t, store)

	al := &Album{Title: "Discovery", DirName: "Discovery", ArtistID: a.ID, LibraryName: "tunes"}
	if err := store.AddAlbum(al); err != nil {
		t.Fatalf("AddAlbum: %v", err)
	}

	tr := &Track{
		Title:       "One More Time",
		AlbumID:     al.ID,
		ArtistID:    a.ID,
		DurationSec: 320,
		Slug:        "/media/tunes/Daft Punk/Discovery/01.flac",
		LibraryName: "tunes",
	}
	if err := store.AddTrack(tr); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	// Loose files in the artist folder carry no album.
	loose := &Track{
		Title:       "Demo",
		ArtistID:    a.ID,
		Slug:        "/media/tunes/Daft Punk/demo.mp3",
		LibraryName: "tunes",
	}
	if err := store.AddTrack(loose); err != nil {
		t.Fatalf("AddTrack (loose): %v", err)
	}

	exists, err := store.TrackExistsBySlug("tunes", tr.Slug)
	if err != nil {
		t.Fatalf("TrackExistsBySlug: %v", err)
	}
	if !exists {
		t.Error("expected track to exist")
	}

	n, err := store.CountAlbumTracks(al.ID)
	if err != nil {
		t.Fatalf("CountAlbumTracks: %v", err)
	}
	if n != 1 {
		t.Errorf("CountAlbumTracks = %d, want 1", n)
	}
	n, err = store.CountTracks(a.ID)
	if err != nil {
		t.Fatalf("CountTracks: %v", err)
	}
	if n != 2 {
		t.Errorf("CountTracks = %d, want 2", n)
	}

	if err := store.DeleteTrackBySlug("tunes", loose.Slug); err != nil {
		t.Fatalf("DeleteTrackBySlug: %v", err)
	}
	if err := store.DeleteTrackBySlug("tunes", loose.Slug); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteArtist_Cascades(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "tunes", MediaTypeMusic)
	a := seedArtist(t, store)

	al := &Album{Title: "Discovery", DirName: "Discovery", ArtistID: a.ID, LibraryName: "tunes"}
	if err := store.AddAlbum(al); err != nil {
		t.Fatalf("AddAlbum: %v", err)
	}

	if err := store.DeleteArtist(a.ID); err != nil {
		t.Fatalf("DeleteArtist: %v", err)
	}

	n, err := store.CountAlbums(a.ID)
	if err != nil {
		t.Fatalf("CountAlbums: %v", err)
	}
	if n != 0 {
		t.Errorf("CountAlbums = %d after cascade, want 0", n)
	}
}
