package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func addSeries(q querier, s *Series) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO series (external_id, title, original_title, overview, rating,
			first_air_date, genres, cast_ids, trailer_url, cover_path, banner_path,
			episode_run_time, season_count, folder_mtime, library_name, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ExternalID, s.Title, s.OriginalTitle, s.Overview, s.Rating,
		s.FirstAirDate, s.Genres, s.CastIDs, s.TrailerURL, s.CoverPath, s.BannerPath,
		s.EpisodeRunTime, s.SeasonCount, s.FolderMtime, s.LibraryName, now,
	)
	if err != nil {
		return fmt.Errorf("insert series: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	s.ID = id
	s.AddedAt = now
	return nil
}

// AddSeries inserts a new series. Sets ID and AddedAt on the struct.
func (s *Store) AddSeries(sr *Series) error { return addSeries(s.db, sr) }

// AddSeries inserts a new series within a transaction.
func (t *Tx) AddSeries(sr *Series) error { return addSeries(t.tx, sr) }

const seriesColumns = `id, external_id, title, original_title, overview, rating,
	first_air_date, genres, cast_ids, trailer_url, cover_path, banner_path,
	episode_run_time, season_count, folder_mtime, library_name, added_at`

func scanSeries(row interface{ Scan(...any) error }) (*Series, error) {
	s := &Series{}
	err := row.Scan(&s.ID, &s.ExternalID, &s.Title, &s.OriginalTitle, &s.Overview,
		&s.Rating, &s.FirstAirDate, &s.Genres, &s.CastIDs, &s.TrailerURL,
		&s.CoverPath, &s.BannerPath, &s.EpisodeRunTime, &s.SeasonCount,
		&s.FolderMtime, &s.LibraryName, &s.AddedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func getSeriesByExternalID(q querier, library, externalID string) (*Series, error) {
	row := q.QueryRow("SELECT "+seriesColumns+" FROM series WHERE library_name = ? AND external_id = ?",
		library, externalID)
	s, err := scanSeries(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get series %q: %w", externalID, mapSQLiteError(err))
	}
	return s, nil
}

// GetSeriesByExternalID finds a series by provider id within a library.
// Returns nil, nil if not found.
func (s *Store) GetSeriesByExternalID(library, externalID string) (*Series, error) {
	return getSeriesByExternalID(s.db, library, externalID)
}

// GetSeriesByExternalID finds a series within a transaction.
func (t *Tx) GetSeriesByExternalID(library, externalID string) (*Series, error) {
	return getSeriesByExternalID(t.tx, library, externalID)
}

// GetSeriesByOriginalTitle finds a series by its on-disk folder title.
// Returns nil, nil if not found.
func (s *Store) GetSeriesByOriginalTitle(library, title string) (*Series, error) {
	row := s.db.QueryRow("SELECT "+seriesColumns+" FROM series WHERE library_name = ? AND original_title = ?",
		library, title)
	sr, err := scanSeries(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get series by title %q: %w", title, mapSQLiteError(err))
	}
	return sr, nil
}

func listSeries(q querier, library string) ([]*Series, error) {
	rows, err := q.Query("SELECT "+seriesColumns+" FROM series WHERE library_name = ? ORDER BY id", library)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Series
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// ListSeries returns all series in a library ordered by id.
func (s *Store) ListSeries(library string) ([]*Series, error) { return listSeries(s.db, library) }

// ListSeries returns all series in a library within a transaction.
func (t *Tx) ListSeries(library string) ([]*Series, error) { return listSeries(t.tx, library) }

// DeleteSeries removes a series and cascades to its seasons and episodes.
func (s *Store) DeleteSeries(id int64) error {
	_, err := s.db.Exec(`DELETE FROM series WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete series %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

func addSeason(q querier, sn *Season) error {
	result, err := q.Exec(`
		INSERT INTO seasons (series_id, external_id, season_number, title, overview,
			episode_count, episodes_on_disk, air_date, cover_path, folder_mtime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sn.SeriesID, sn.ExternalID, sn.SeasonNumber, sn.Title, sn.Overview,
		sn.EpisodeCount, sn.EpisodesOnDisk, sn.AirDate, sn.CoverPath, sn.FolderMtime,
	)
	if err != nil {
		return fmt.Errorf("insert season: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	sn.ID = id
	return nil
}

// AddSeason inserts a new season. The owning series row must already be committed.
func (s *Store) AddSeason(sn *Season) error { return addSeason(s.db, sn) }

// AddSeason inserts a new season within a transaction.
func (t *Tx) AddSeason(sn *Season) error { return addSeason(t.tx, sn) }

const seasonColumns = `id, series_id, external_id, season_number, title, overview,
	episode_count, episodes_on_disk, air_date, cover_path, folder_mtime`

func scanSeason(row interface{ Scan(...any) error }) (*Season, error) {
	sn := &Season{}
	err := row.Scan(&sn.ID, &sn.SeriesID, &sn.ExternalID, &sn.SeasonNumber, &sn.Title,
		&sn.Overview, &sn.EpisodeCount, &sn.EpisodesOnDisk, &sn.AirDate,
		&sn.CoverPath, &sn.FolderMtime)
	if err != nil {
		return nil, err
	}
	return sn, nil
}

func getSeason(q querier, seriesID int64, number int) (*Season, error) {
	row := q.QueryRow("SELECT "+seasonColumns+" FROM seasons WHERE series_id = ? AND season_number = ?",
		seriesID, number)
	sn, err := scanSeason(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get season %d: %w", number, mapSQLiteError(err))
	}
	return sn, nil
}

// GetSeason finds a season by series and number. Returns nil, nil if not found.
func (s *Store) GetSeason(seriesID int64, number int) (*Season, error) {
	return getSeason(s.db, seriesID, number)
}

// GetSeason finds a season within a transaction.
func (t *Tx) GetSeason(seriesID int64, number int) (*Season, error) {
	return getSeason(t.tx, seriesID, number)
}

func listSeasons(q querier, seriesID int64) ([]*Season, error) {
	rows, err := q.Query("SELECT "+seasonColumns+" FROM seasons WHERE series_id = ? ORDER BY season_number", seriesID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Season
	for rows.Next() {
		sn, err := scanSeason(rows)
		if err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		results = append(results, sn)
	}
	return results, rows.Err()
}

// ListSeasons returns the seasons of a series ordered by number.
func (s *Store) ListSeasons(seriesID int64) ([]*Season, error) { return listSeasons(s.db, seriesID) }

// ListSeasons returns seasons within a transaction.
func (t *Tx) ListSeasons(seriesID int64) ([]*Season, error) { return listSeasons(t.tx, seriesID) }

// UpdateSeasonDiskState records the folder mtime and on-disk episode count
// observed during a scan.
func (s *Store) UpdateSeasonDiskState(id int64, mtime int64, episodesOnDisk int) error {
	_, err := s.db.Exec(`UPDATE seasons SET folder_mtime = ?, episodes_on_disk = ? WHERE id = ?`,
		mtime, episodesOnDisk, id)
	if err != nil {
		return fmt.Errorf("update season disk state: %w", mapSQLiteError(err))
	}
	return nil
}

// DeleteSeason removes a season and cascades to its episodes.
func (s *Store) DeleteSeason(id int64) error {
	_, err := s.db.Exec(`DELETE FROM seasons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete season %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// CountEpisodes returns the number of episodes attached to a season.
func (s *Store) CountEpisodes(seasonID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM episodes WHERE season_id = ?`, seasonID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}
	return n, nil
}

func addEpisode(q querier, e *Episode) error {
	result, err := q.Exec(`
		INSERT INTO episodes (season_id, external_id, episode_number, title, overview,
			air_date, cover_path, slug, library_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SeasonID, e.ExternalID, e.EpisodeNumber, e.Title, e.Overview,
		e.AirDate, e.CoverPath, e.Slug, e.LibraryName,
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	return nil
}

// AddEpisode inserts a new episode. The owning season row must already be committed.
// Returns ErrDuplicate if an episode with the same (library, slug) exists.
func (s *Store) AddEpisode(e *Episode) error { return addEpisode(s.db, e) }

// AddEpisode inserts a new episode within a transaction.
func (t *Tx) AddEpisode(e *Episode) error { return addEpisode(t.tx, e) }

// EpisodeExistsBySlug reports whether an episode with the given slug exists in the library.
func (s *Store) EpisodeExistsBySlug(library, slug string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM episodes WHERE library_name = ? AND slug = ?`,
		library, slug).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("episode exists: %w", err)
	}
	return n > 0, nil
}

// EpisodeExists reports whether a season already has an episode with the given number.
func (s *Store) EpisodeExists(seasonID int64, number int) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM episodes WHERE season_id = ? AND episode_number = ?`,
		seasonID, number).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("episode exists: %w", err)
	}
	return n > 0, nil
}

const episodeColumns = `id, season_id, external_id, episode_number, title, overview,
	air_date, cover_path, slug, library_name`

func listEpisodes(q querier, seasonID int64) ([]*Episode, error) {
	rows, err := q.Query("SELECT "+episodeColumns+" FROM episodes WHERE season_id = ? ORDER BY episode_number", seasonID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Episode
	for rows.Next() {
		e := &Episode{}
		if err := rows.Scan(&e.ID, &e.SeasonID, &e.ExternalID, &e.EpisodeNumber,
			&e.Title, &e.Overview, &e.AirDate, &e.CoverPath, &e.Slug, &e.LibraryName); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// ListEpisodes returns the episodes of a season ordered by number.
func (s *Store) ListEpisodes(seasonID int64) ([]*Episode, error) { return listEpisodes(s.db, seasonID) }

// ListEpisodes returns episodes within a transaction.
func (t *Tx) ListEpisodes(seasonID int64) ([]*Episode, error) { return listEpisodes(t.tx, seasonID) }

// DeleteEpisodeBySlug removes the episode with the given slug from the library.
func (s *Store) DeleteEpisodeBySlug(library, slug string) error {
	res, err := s.db.Exec(`DELETE FROM episodes WHERE library_name = ? AND slug = ?`, library, slug)
	if err != nil {
		return fmt.Errorf("delete episode: %w", mapSQLiteError(err))
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
