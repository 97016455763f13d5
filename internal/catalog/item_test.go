package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestStore_AddItem(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)

	i := &Item{
		MediaType:   MediaTypeMovie,
		ExternalID:  "550",
		Title:       "Fight Club",
		RealTitle:   "Fight Club 1999",
		Rating:      8.4,
		ReleaseDate: "1999-10-15",
		Genres:      "Drama,Thriller",
		Slug:        "/media/films/Fight Club 1999.mkv",
		FileMtime:   1700000000,
		LibraryName: "films",
	}

	before := time.Now()
	if err := store.AddItem(i); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	after := time.Now()

	if i.ID == 0 {
		t.Error("ID should be set after AddItem")
	}
	if i.AddedAt.Before(before) || i.AddedAt.After(after) {
		t.Errorf("AddedAt %v not in expected range [%v, %v]", i.AddedAt, before, after)
	}
}

func TestStore_AddItem_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)

	i := &Item{
		MediaType:   MediaTypeMovie,
		ExternalID:  "550",
		Title:       "Fight Club",
		Slug:        "/media/films/Fight Club.mkv",
		LibraryName: "films",
	}
	if err := store.AddItem(i); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	dup := &Item{
		MediaType:   MediaTypeMovie,
		ExternalID:  "551",
		Title:       "Fight Club again",
		Slug:        "/media/films/Fight Club.mkv",
		LibraryName: "films",
	}
	if err := store.AddItem(dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestStore_AddItem_SameSlugDifferentLibraries(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)
	seedLibrary(t, store, "films2", MediaTypeMovie)

	slug := "/media/shared/Movie.mkv"
	a := &Item{MediaType: MediaTypeMovie, ExternalID: "1", Title: "Movie", Slug: slug, LibraryName: "films"}
	b := &Item{MediaType: MediaTypeMovie, ExternalID: "1", Title: "Movie", Slug: slug, LibraryName: "films2"}

	if err := store.AddItem(a); err != nil {
		t.Fatalf("AddItem (films): %v", err)
	}
	if err := store.AddItem(b); err != nil {
		t.Fatalf("AddItem (films2): %v", err)
	}
}

func TestStore_ItemExistsBySlug(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)

	i := &Item{
		MediaType:   MediaTypeMovie,
		ExternalID:  "550",
		Title:       "Fight Club",
		Slug:        "/media/films/Fight Club.mkv",
		LibraryName: "films",
	}
	if err := store.AddItem(i); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	exists, err := store.ItemExistsBySlug("films", i.Slug)
	if err != nil {
		t.Fatalf("ItemExistsBySlug: %v", err)
	}
	if !exists {
		t.Error("expected item to exist")
	}

	exists, err = store.ItemExistsBySlug("films", "/media/films/Other.mkv")
	if err != nil {
		t.Fatalf("ItemExistsBySlug: %v", err)
	}
	if exists {
		t.Error("expected item not to exist")
	}
}

func TestStore_ListItems_Filters(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)
	seedLibrary(t, store, "roms", MediaTypeGame)

	movies := []string{"/m/a.mkv", "/m/b.mkv"}
	for i, slug := range movies {
		item := &Item{MediaType: MediaTypeMovie, ExternalID: "m", Title: "M", Slug: slug, LibraryName: "films"}
		if err := store.AddItem(item); err != nil {
			t.Fatalf("AddItem movie %d: %v", i, err)
		}
	}
	game := &Item{MediaType: MediaTypeGame, ExternalID: "g", Title: "G", Console: "GBA", Slug: "/r/g.gba", LibraryName: "roms"}
	if err := store.AddItem(game); err != nil {
		t.Fatalf("AddItem game: %v", err)
	}

	got, err := store.ListItems(ItemFilter{Library: ptr("films")})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("library filter: got %d items, want 2", len(got))
	}

	mt := MediaTypeGame
	got, err = store.ListItems(ItemFilter{MediaType: &mt})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 1 || got[0].Console != "GBA" {
		t.Errorf("media type filter: got %v", got)
	}

	got, err = store.ListItems(ItemFilter{Console: ptr("GBA")})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("console filter: got %d items, want 1", len(got))
	}

	got, err = store.ListItems(ItemFilter{Library: ptr("films"), Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "/m/b.mkv" {
		t.Errorf("limit/offset: got %v", got)
	}
}

func TestStore_DeleteItemBySlug(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "films", MediaTypeMovie)

	i := &Item{
		MediaType:   MediaTypeMovie,
		ExternalID:  "550",
		Title:       "Fight Club",
		Slug:        "/media/films/Fight Club.mkv",
		LibraryName: "films",
	}
	if err := store.AddItem(i); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := store.DeleteItemBySlug("films", i.Slug); err != nil {
		t.Fatalf("DeleteItemBySlug: %v", err)
	}
	if err := store.DeleteItemBySlug("films", i.Slug); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestStore_UpdateItemAssets(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	seedLibrary(t, store, "books", MediaTypeBook)

	i := &Item{
		MediaType:   MediaTypeBook,
		ExternalID:  "b1",
		Title:       "Watchmen",
		Slug:        "/media/books/Watchmen.cbz",
		LibraryName: "books",
	}
	if err := store.AddItem(i); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := store.UpdateItemAssets(i.ID, "/assets/Book_1_Cover.avif", "CBZ"); err != nil {
		t.Fatalf("UpdateItemAssets: %v", err)
	}

	items, err := store.ListItems(ItemFilter{Library: ptr("books")})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if items[0].CoverPath != "/assets/Book_1_Cover.avif" {
		t.Errorf("CoverPath = %q", items[0].CoverPath)
	}
	if items[0].BookType != "CBZ" {
		t.Errorf("BookType = %q, want CBZ", items[0].BookType)
	}
}
