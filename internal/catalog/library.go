package catalog

import (
	"fmt"
	"time"
)

func upsertLibrary(q querier, l *Library) error {
	now := time.Now()
	_, err := q.Exec(`
		INSERT INTO libraries (name, media_type, root_path, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET media_type = excluded.media_type,
			root_path = excluded.root_path, updated_at = excluded.updated_at`,
		l.Name, l.MediaType, l.RootPath, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert library: %w", mapSQLiteError(err))
	}
	l.UpdatedAt = now
	return nil
}

// UpsertLibrary inserts or updates a library by name.
func (s *Store) UpsertLibrary(l *Library) error { return upsertLibrary(s.db, l) }

// UpsertLibrary inserts or updates a library within a transaction.
func (t *Tx) UpsertLibrary(l *Library) error { return upsertLibrary(t.tx, l) }

func getLibrary(q querier, name string) (*Library, error) {
	l := &Library{}
	err := q.QueryRow(`
		SELECT name, media_type, root_path, added_at, updated_at
		FROM libraries WHERE name = ?`, name,
	).Scan(&l.Name, &l.MediaType, &l.RootPath, &l.AddedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get library %q: %w", name, mapSQLiteError(err))
	}
	return l, nil
}

// GetLibrary retrieves a library by name.
// Returns ErrNotFound if the library does not exist.
func (s *Store) GetLibrary(name string) (*Library, error) { return getLibrary(s.db, name) }

// GetLibrary retrieves a library by name within a transaction.
func (t *Tx) GetLibrary(name string) (*Library, error) { return getLibrary(t.tx, name) }

func listLibraries(q querier) ([]*Library, error) {
	rows, err := q.Query(`
		SELECT name, media_type, root_path, added_at, updated_at
		FROM libraries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Library
	for rows.Next() {
		l := &Library{}
		if err := rows.Scan(&l.Name, &l.MediaType, &l.RootPath, &l.AddedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan library: %w", err)
		}
		results = append(results, l)
	}
	return results, rows.Err()
}

// ListLibraries returns all libraries ordered by name.
func (s *Store) ListLibraries() ([]*Library, error) { return listLibraries(s.db) }

// ListLibraries returns all libraries within a transaction.
func (t *Tx) ListLibraries() ([]*Library, error) { return listLibraries(t.tx) }

// DeleteLibrary removes a library and, through cascading constraints,
// everything scoped to it.
func (s *Store) DeleteLibrary(name string) error {
	res, err := s.db.Exec(`DELETE FROM libraries WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete library %q: %w", name, mapSQLiteError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
