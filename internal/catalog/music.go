package catalog

import (
	"database/sql"
	"errors"
	"fmt"
)

func addArtist(q querier, a *Artist) error {
	result, err := q.Exec(`
		INSERT INTO artists (external_id, name, cover_path, library_name)
		VALUES (?, ?, ?, ?)`,
		a.ExternalID, a.Name, a.CoverPath, a.LibraryName,
	)
	if err != nil {
		return fmt.Errorf("insert artist: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	a.ID = id
	return nil
}

// AddArtist inserts a new artist. Sets ID on the struct.
func (s *Store) AddArtist(a *Artist) error { return addArtist(s.db, a) }

// AddArtist inserts a new artist within a transaction.
func (t *Tx) AddArtist(a *Artist) error { return addArtist(t.tx, a) }

// GetArtistByName finds an artist by display name within a library.
// Returns nil, nil if not found.
func (s *Store) GetArtistByName(library, name string) (*Artist, error) {
	a := &Artist{}
	err := s.db.QueryRow(`
		SELECT id, external_id, name, cover_path, library_name
		FROM artists WHERE library_name = ? AND name = ?`, library, name,
	).Scan(&a.ID, &a.ExternalID, &a.Name, &a.CoverPath, &a.LibraryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist %q: %w", name, mapSQLiteError(err))
	}
	return a, nil
}

// ListArtists returns all artists in a library ordered by id.
func (s *Store) ListArtists(library string) ([]*Artist, error) {
	rows, err := s.db.Query(`
		SELECT id, external_id, name, cover_path, library_name
		FROM artists WHERE library_name = ? ORDER BY id`, library)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.ExternalID, &a.Name, &a.CoverPath, &a.LibraryName); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// DeleteArtist removes an artist and cascades to its albums and tracks.
func (s *Store) DeleteArtist(id int64) error {
	_, err := s.db.Exec(`DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete artist %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

func addAlbum(q querier, a *Album) error {
	result, err := q.Exec(`
		INSERT INTO albums (external_id, title, dir_name, artist_id, cover_path, track_list, library_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ExternalID, a.Title, a.DirName, a.ArtistID, a.CoverPath, a.TrackList, a.LibraryName,
	)
	if err != nil {
		return fmt.Errorf("insert album: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	a.ID = id
	return nil
}

// AddAlbum inserts a new album. The owning artist row must already be committed.
func (s *Store) AddAlbum(a *Album) error { return addAlbum(s.db, a) }

// AddAlbum inserts a new album within a transaction.
func (t *Tx) AddAlbum(a *Album) error { return addAlbum(t.tx, a) }

const albumColumns = `id, external_id, title, dir_name, artist_id, cover_path, track_list, library_name`

func scanAlbum(row interface{ Scan(...any) error }) (*Album, error) {
	a := &Album{}
	err := row.Scan(&a.ID, &a.ExternalID, &a.Title, &a.DirName, &a.ArtistID,
		&a.CoverPath, &a.TrackList, &a.LibraryName)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetAlbumByDir finds an album by its on-disk folder name under an artist.
// Returns nil, nil if not found.
func (s *Store) GetAlbumByDir(artistID int64, dirName string) (*Album, error) {
	row := s.db.QueryRow("SELECT "+albumColumns+" FROM albums WHERE artist_id = ? AND dir_name = ?",
		artistID, dirName)
	a, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get album %q: %w", dirName, mapSQLiteError(err))
	}
	return a, nil
}

// ListAlbums returns all albums in a library ordered by id.
func (s *Store) ListAlbums(library string) ([]*Album, error) {
	rows, err := s.db.Query("SELECT "+albumColumns+" FROM albums WHERE library_name = ? ORDER BY id", library)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// UpdateAlbumTracks replaces the stored comma-joined track filename list.
func (s *Store) UpdateAlbumTracks(id int64, trackList string) error {
	_, err := s.db.Exec(`UPDATE albums SET track_list = ? WHERE id = ?`, trackList, id)
	if err != nil {
		return fmt.Errorf("update album tracks: %w", mapSQLiteError(err))
	}
	return nil
}

// DeleteAlbum removes an album.
func (s *Store) DeleteAlbum(id int64) error {
	_, err := s.db.Exec(`DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete album %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// CountAlbums returns the number of albums attached to an artist.
func (s *Store) CountAlbums(artistID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM albums WHERE artist_id = ?`, artistID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count albums: %w", err)
	}
	return n, nil
}

// CountTracks returns the number of tracks attached to an artist.
func (s *Store) CountTracks(artistID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tracks WHERE artist_id = ?`, artistID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return n, nil
}

// CountAlbumTracks returns the number of tracks attached to an album.
func (s *Store) CountAlbumTracks(albumID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tracks WHERE album_id = ?`, albumID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count album tracks: %w", err)
	}
	return n, nil
}

func addTrack(q querier, tr *Track) error {
	result, err := q.Exec(`
		INSERT INTO tracks (title, album_id, artist_id, duration_sec, cover_path, slug, library_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tr.Title, tr.AlbumID, tr.ArtistID, tr.DurationSec, tr.CoverPath, tr.Slug, tr.LibraryName,
	)
	if err != nil {
		return fmt.Errorf("insert track: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	tr.ID = id
	return nil
}

// AddTrack inserts a new track. The owning artist (and album, if any) rows
// must already be committed.
// Returns ErrDuplicate if a track with the same (library, slug) exists.
func (s *Store) AddTrack(tr *Track) error { return addTrack(s.db, tr) }

// AddTrack inserts a new track within a transaction.
func (t *Tx) AddTrack(tr *Track) error { return addTrack(t.tx, tr) }

// TrackExistsBySlug reports whether a track with the given slug exists in the library.
func (s *Store) TrackExistsBySlug(library, slug string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tracks WHERE library_name = ? AND slug = ?`,
		library, slug).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("track exists: %w", err)
	}
	return n > 0, nil
}

// ListTracks returns all tracks in a library ordered by id.
func (s *Store) ListTracks(library string) ([]*Track, error) {
	rows, err := s.db.Query(`
		SELECT id, title, album_id, artist_id, duration_sec, cover_path, slug, library_name
		FROM tracks WHERE library_name = ? ORDER BY id`, library)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Track
	for rows.Next() {
		tr := &Track{}
		if err := rows.Scan(&tr.ID, &tr.Title, &tr.AlbumID, &tr.ArtistID,
			&tr.DurationSec, &tr.CoverPath, &tr.Slug, &tr.LibraryName); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		results = append(results, tr)
	}
	return results, rows.Err()
}

// DeleteTrackBySlug removes the track with the given slug from the library.
func (s *Store) DeleteTrackBySlug(library, slug string) error {
	res, err := s.db.Exec(`DELETE FROM tracks WHERE library_name = ? AND slug = ?`, library, slug)
	if err != nil {
		return fmt.Errorf("delete track: %w", mapSQLiteError(err))
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
