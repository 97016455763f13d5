package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.senan.xyz/taglib"

	"github.com/vmunix/shelfd/internal/catalog"
	"github.com/vmunix/shelfd/pkg/guess"
)

// trackTitleStrategies derive a track's display title, tried in order.
// The tag wins; filename hints follow; the bare stem is the last resort.
var trackTitleStrategies = []func(tag string, h *guess.Hints) (string, bool){
	func(tag string, _ *guess.Hints) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	},
	func(_ string, h *guess.Hints) (string, bool) {
		if h.Title == "" {
			return "", false
		}
		if isAllDigits(h.Title) && h.AlternativeTitle != "" {
			return h.AlternativeTitle, true
		}
		return h.Title, true
	},
	func(_ string, h *guess.Hints) (string, bool) {
		if h.Season != 0 && h.Episode != 0 {
			return fmt.Sprintf("%d%d", h.Season, h.Episode), true
		}
		return "", false
	},
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func trackTitle(slug, name string) string {
	var tag string
	if tags, err := taglib.ReadTags(slug); err == nil {
		if vals := tags[taglib.Title]; len(vals) > 0 {
			tag = vals[0]
		}
	}
	hints := guess.Parse(stem(name))
	for _, strategy := range trackTitleStrategies {
		if title, ok := strategy(tag, hints); ok {
			return title
		}
	}
	return stem(name)
}

func trackDuration(slug string) int64 {
	props, err := taglib.ReadProperties(slug)
	if err != nil {
		return 0
	}
	return int64(props.Length.Seconds())
}

func (e *Engine) scanMusic(ctx context.Context, lib *catalog.Library) error {
	entries, err := os.ReadDir(lib.RootPath)
	if err != nil {
		return fmt.Errorf("read root: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := e.reconcileArtist(ctx, lib, entry.Name()); err != nil {
			e.log.Warn("artist skipped", "dir", entry.Name(), "error", err)
		}
	}

	return e.pruneMusicTree(lib)
}

func (e *Engine) reconcileArtist(ctx context.Context, lib *catalog.Library, dirName string) error {
	artist, err := e.resolveArtist(ctx, lib, dirName)
	if err != nil {
		return err
	}

	artistDir := filepath.Join(lib.RootPath, dirName)
	entries, err := os.ReadDir(artistDir)
	if err != nil {
		return fmt.Errorf("read artist dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if err := e.reconcileAlbum(ctx, lib, artist, filepath.Join(artistDir, entry.Name())); err != nil {
				e.log.Warn("album skipped", "dir", entry.Name(), "error", err)
			}
			continue
		}
		if !isAudioFile(entry.Name()) {
			continue
		}
		// a loose track in the artist folder attaches to the artist only
		slug := filepath.Join(artistDir, entry.Name())
		if err := e.reconcileTrack(ctx, lib, artist, nil, entry.Name(), slug); err != nil {
			e.log.Warn("track skipped", "file", entry.Name(), "error", err)
		}
	}
	return nil
}

// resolveArtist finds or creates the artist record for a folder name.
func (e *Engine) resolveArtist(ctx context.Context, lib *catalog.Library, name string) (*catalog.Artist, error) {
	artist, err := e.store.GetArtistByName(lib.Name, name)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		return artist, nil
	}

	externalID := uuid.NewString()
	cover := e.assets.Placeholder()
	if e.music != nil {
		results, err := e.music.SearchArtists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("search artist: %w", err)
		}
		if len(results) > 0 {
			best := results[0]
			externalID = fmt.Sprintf("%d", best.ID)
			if fetched, err := e.assets.FetchImage(ctx, best.PictureBig, e.assets.Path("Artist", externalID, "Cover")); err == nil {
				cover = fetched
			}
		}
	}

	artist = &catalog.Artist{
		ExternalID:  externalID,
		Name:        name,
		CoverPath:   cover,
		LibraryName: lib.Name,
	}
	if err := e.persist(func() error { return e.store.AddArtist(artist) }); err != nil {
		return nil, fmt.Errorf("add artist: %w", err)
	}
	if artist.ID == 0 {
		committed, err := e.store.GetArtistByName(lib.Name, name)
		if err != nil || committed == nil {
			return nil, fmt.Errorf("artist row missing after insert: %w", err)
		}
		artist = committed
	}
	return artist, nil
}

func (e *Engine) reconcileAlbum(ctx context.Context, lib *catalog.Library, artist *catalog.Artist, albumDir string) error {
	dirName := filepath.Base(albumDir)

	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return fmt.Errorf("read album dir: %w", err)
	}
	var trackFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && isAudioFile(entry.Name()) {
			trackFiles = append(trackFiles, entry.Name())
		}
	}
	trackList := strings.Join(trackFiles, ",")

	album, err := e.store.GetAlbumByDir(artist.ID, dirName)
	if err != nil {
		return err
	}
	if album != nil && album.TrackList == trackList {
		// unchanged since last pass
		return nil
	}

	if album == nil {
		album, err = e.createAlbum(ctx, lib, artist, dirName, trackList)
		if err != nil {
			return err
		}
	}

	for _, name := range trackFiles {
		slug := filepath.Join(albumDir, name)
		if err := e.reconcileTrack(ctx, lib, artist, album, name, slug); err != nil {
			e.log.Warn("track skipped", "file", name, "error", err)
		}
	}

	return e.persist(func() error { return e.store.UpdateAlbumTracks(album.ID, trackList) })
}

func (e *Engine) createAlbum(ctx context.Context, lib *catalog.Library, artist *catalog.Artist, dirName, trackList string) (*catalog.Album, error) {
	hints := guess.Parse(dirName)
	albumName := hints.Title
	if albumName == "" {
		albumName = dirName
	}

	externalID := uuid.NewString()
	title := albumName
	cover := e.assets.Placeholder()
	if e.music != nil {
		results, err := e.music.SearchAlbums(ctx, fmt.Sprintf("%s - %s", artist.Name, albumName))
		if err != nil {
			return nil, fmt.Errorf("search album: %w", err)
		}
		if len(results) > 0 {
			titles := make([]string, len(results))
			for i, r := range results {
				titles[i] = r.Title
			}
			best := results[resolveIndex(albumName, titles, nil)]
			externalID = fmt.Sprintf("%d", best.ID)
			title = best.Title
			if fetched, err := e.assets.FetchImage(ctx, best.CoverBig, e.assets.Path("Album", externalID, "Cover")); err == nil {
				cover = fetched
			}
		}
	}

	album := &catalog.Album{
		ExternalID:  externalID,
		Title:       title,
		DirName:     dirName,
		ArtistID:    artist.ID,
		CoverPath:   cover,
		TrackList:   trackList,
		LibraryName: lib.Name,
	}
	if err := e.persist(func() error { return e.store.AddAlbum(album) }); err != nil {
		return nil, fmt.Errorf("add album: %w", err)
	}
	if album.ID == 0 {
		committed, err := e.store.GetAlbumByDir(artist.ID, dirName)
		if err != nil || committed == nil {
			return nil, fmt.Errorf("album row missing after insert: %w", err)
		}
		album = committed
	}
	return album, nil
}

// reconcileTrack catalogs one audio file. album is nil for loose files in
// the artist folder; their cover falls back to the artist's.
func (e *Engine) reconcileTrack(_ context.Context, lib *catalog.Library, artist *catalog.Artist, album *catalog.Album, name, slug string) error {
	exists, err := e.store.TrackExistsBySlug(lib.Name, slug)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	var albumID int64
	cover := artist.CoverPath
	coverBase := e.assets.Path("Artist", artist.ExternalID, "Cover")
	if album != nil {
		albumID = album.ID
		cover = album.CoverPath
		coverBase = e.assets.Path("Album", album.ExternalID, "Cover")
	}

	// an embedded tag image beats whatever the provider offered, but an
	// already-normalized asset is never overwritten
	if !e.assets.Exists(coverBase) {
		if data, err := taglib.ReadImage(slug); err == nil && len(data) > 0 {
			if written, err := e.assets.WriteImage(data, coverBase); err == nil {
				cover = written
			}
		}
	}

	track := &catalog.Track{
		Title:       trackTitle(slug, name),
		AlbumID:     albumID,
		ArtistID:    artist.ID,
		DurationSec: trackDuration(slug),
		CoverPath:   cover,
		Slug:        slug,
		LibraryName: lib.Name,
	}
	return e.persist(func() error { return e.store.AddTrack(track) })
}

// pruneMusicTree removes tracks whose file is gone, then trackless
// albums, then artists left with nothing. Strictly bottom-up.
func (e *Engine) pruneMusicTree(lib *catalog.Library) error {
	tracks, err := e.store.ListTracks(lib.Name)
	if err != nil {
		return fmt.Errorf("list tracks: %w", err)
	}
	for _, tr := range tracks {
		if _, err := os.Stat(tr.Slug); err == nil {
			continue
		}
		if err := e.store.DeleteTrackBySlug(lib.Name, tr.Slug); err != nil {
			e.log.Error("prune track failed", "slug", tr.Slug, "error", err)
			continue
		}
		e.log.Info("pruned", "type", "track", "slug", tr.Slug)
	}

	albums, err := e.store.ListAlbums(lib.Name)
	if err != nil {
		return fmt.Errorf("list albums: %w", err)
	}
	for _, al := range albums {
		n, err := e.store.CountAlbumTracks(al.ID)
		if err != nil || n > 0 {
			continue
		}
		if err := e.store.DeleteAlbum(al.ID); err != nil {
			e.log.Error("prune album failed", "album", al.ID, "error", err)
			continue
		}
		e.log.Info("pruned", "type", "album", "title", al.Title)
	}

	artists, err := e.store.ListArtists(lib.Name)
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}
	for _, ar := range artists {
		nAlbums, err := e.store.CountAlbums(ar.ID)
		if err != nil || nAlbums > 0 {
			continue
		}
		nTracks, err := e.store.CountTracks(ar.ID)
		if err != nil || nTracks > 0 {
			continue
		}
		if err := e.store.DeleteArtist(ar.ID); err != nil {
			e.log.Error("prune artist failed", "artist", ar.ID, "error", err)
			continue
		}
		e.log.Info("pruned", "type", "artist", "name", ar.Name)
	}
	return nil
}
