package catalog

import (
	"fmt"
	"strings"
	"time"
)

const itemColumns = `id, media_type, external_id, title, real_title, overview, rating,
	release_date, genres, cast_ids, trailer_url, cover_path, banner_path, duration,
	console, book_type, content_hash, slug, file_mtime, library_name, added_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	i := &Item{}
	err := row.Scan(&i.ID, &i.MediaType, &i.ExternalID, &i.Title, &i.RealTitle,
		&i.Overview, &i.Rating, &i.ReleaseDate, &i.Genres, &i.CastIDs, &i.TrailerURL,
		&i.CoverPath, &i.BannerPath, &i.Duration, &i.Console, &i.BookType,
		&i.ContentHash, &i.Slug, &i.FileMtime, &i.LibraryName, &i.AddedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func addItem(q querier, i *Item) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO items (media_type, external_id, title, real_title, overview, rating,
			release_date, genres, cast_ids, trailer_url, cover_path, banner_path, duration,
			console, book_type, content_hash, slug, file_mtime, library_name, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.MediaType, i.ExternalID, i.Title, i.RealTitle, i.Overview, i.Rating,
		i.ReleaseDate, i.Genres, i.CastIDs, i.TrailerURL, i.CoverPath, i.BannerPath,
		i.Duration, i.Console, i.BookType, i.ContentHash, i.Slug, i.FileMtime,
		i.LibraryName, now,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	i.ID = id
	i.AddedAt = now
	return nil
}

// AddItem inserts a new catalog item. Sets ID and AddedAt on the struct.
// Returns ErrDuplicate if an item with the same (library, slug) exists.
func (s *Store) AddItem(i *Item) error { return addItem(s.db, i) }

// AddItem inserts a new catalog item within a transaction.
func (t *Tx) AddItem(i *Item) error { return addItem(t.tx, i) }

func itemExistsBySlug(q querier, library, slug string) (bool, error) {
	var n int
	err := q.QueryRow(`SELECT COUNT(*) FROM items WHERE library_name = ? AND slug = ?`,
		library, slug).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("item exists: %w", err)
	}
	return n > 0, nil
}

// ItemExistsBySlug reports whether an item with the given slug exists in the library.
func (s *Store) ItemExistsBySlug(library, slug string) (bool, error) {
	return itemExistsBySlug(s.db, library, slug)
}

// ItemExistsBySlug reports slug existence within a transaction.
func (t *Tx) ItemExistsBySlug(library, slug string) (bool, error) {
	return itemExistsBySlug(t.tx, library, slug)
}

// ItemFilter narrows ListItems results.
type ItemFilter struct {
	Library   *string
	MediaType *MediaType
	Console   *string
	Limit     int
	Offset    int
}

func listItems(q querier, f ItemFilter) ([]*Item, error) {
	var conditions []string
	var args []any

	if f.Library != nil {
		conditions = append(conditions, "library_name = ?")
		args = append(args, *f.Library)
	}
	if f.MediaType != nil {
		conditions = append(conditions, "media_type = ?")
		args = append(args, *f.MediaType)
	}
	if f.Console != nil {
		conditions = append(conditions, "console = ?")
		args = append(args, *f.Console)
	}

	query := "SELECT " + itemColumns + " FROM items"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		results = append(results, i)
	}
	return results, rows.Err()
}

// ListItems returns items matching the filter, ordered by id.
func (s *Store) ListItems(f ItemFilter) ([]*Item, error) { return listItems(s.db, f) }

// ListItems returns items matching the filter within a transaction.
func (t *Tx) ListItems(f ItemFilter) ([]*Item, error) { return listItems(t.tx, f) }

func deleteItemBySlug(q querier, library, slug string) error {
	res, err := q.Exec(`DELETE FROM items WHERE library_name = ? AND slug = ?`, library, slug)
	if err != nil {
		return fmt.Errorf("delete item: %w", mapSQLiteError(err))
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

// DeleteItemBySlug removes the item with the given slug from the library.
func (s *Store) DeleteItemBySlug(library, slug string) error {
	return deleteItemBySlug(s.db, library, slug)
}

// DeleteItemBySlug removes an item within a transaction.
func (t *Tx) DeleteItemBySlug(library, slug string) error {
	return deleteItemBySlug(t.tx, library, slug)
}

// UpdateItemAssets sets the cover path and book type resolved after insert.
// Books are inserted first so their id can key the extracted cover file.
func (s *Store) UpdateItemAssets(id int64, coverPath, bookType string) error {
	_, err := s.db.Exec(`UPDATE items SET cover_path = ?, book_type = ? WHERE id = ?`,
		coverPath, bookType, id)
	if err != nil {
		return fmt.Errorf("update item assets: %w", mapSQLiteError(err))
	}
	return nil
}
