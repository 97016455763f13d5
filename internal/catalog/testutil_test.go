package catalog

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfd/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// seedLibrary registers a library so FK-scoped rows can be inserted.
func seedLibrary(t *testing.T, s *Store, name string, mt MediaType) *Library {
	t.Helper()
	lib := &Library{Name: name, MediaType: mt, RootPath: "/media/" + name}
	if err := s.UpsertLibrary(lib); err != nil {
		t.Fatalf("upsert library: %v", err)
	}
	return lib
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}
