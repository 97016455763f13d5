package scan

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfd/internal/catalog"
)

// contentHash returns the CRC32 of the file contents as a short hex
// string. It identifies generic videos across renames.
func contentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}
	return fmt.Sprintf("%08x", h.Sum32()), nil
}

func (e *Engine) scanVideos(ctx context.Context, lib *catalog.Library) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	walkErr := filepath.WalkDir(lib.RootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.log.Warn("walk failed", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !isVideoFile(d.Name()) || isPartialFile(d.Name()) {
			return nil
		}

		exists, err := e.store.ItemExistsBySlug(lib.Name, path)
		if err != nil {
			e.log.Error("existence check failed", "slug", path, "error", err)
			return nil
		}
		if exists {
			return nil
		}

		g.Go(func() error {
			if err := e.reconcileVideo(gctx, lib, path); err != nil {
				e.log.Warn("video skipped", "file", d.Name(), "error", err)
			}
			return nil
		})
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk root: %w", walkErr)
	}
	_ = g.Wait()

	return e.pruneItems(lib)
}

func (e *Engine) reconcileVideo(ctx context.Context, lib *catalog.Library, path string) error {
	hash, err := contentHash(path)
	if err != nil {
		return err
	}

	secs := videoDurationSeconds(ctx, path)
	duration := ""
	if secs > 0 {
		duration = formatDuration(time.Duration(secs * float64(time.Second)))
	}

	item := &catalog.Item{
		MediaType:   catalog.MediaTypeVideo,
		ExternalID:  hash,
		Title:       stem(filepath.Base(path)),
		RealTitle:   stem(filepath.Base(path)),
		CoverPath:   e.assets.Placeholder(),
		BannerPath:  e.videoBanner(ctx, path, hash, secs),
		Duration:    duration,
		ContentHash: hash,
		Slug:        path,
		FileMtime:   mtimeOf(path),
		LibraryName: lib.Name,
	}
	return e.persist(func() error { return e.store.AddItem(item) })
}

// videoBanner extracts the frame at the middle of the file as the
// banner. Extraction is best effort; any failure yields the placeholder.
func (e *Engine) videoBanner(ctx context.Context, path, hash string, secs float64) string {
	if secs <= 0 {
		return e.assets.Placeholder()
	}

	tmp := filepath.Join(os.TempDir(), "shelfd-frame-"+hash+".png")
	defer os.Remove(tmp)

	seek := time.Duration(secs / 2 * float64(time.Second))
	if err := grabFrame(ctx, path, seek, tmp); err != nil {
		e.log.Debug("frame grab failed", "file", path, "error", err)
		return e.assets.Placeholder()
	}
	data, err := os.ReadFile(tmp)
	if err != nil || len(data) == 0 {
		return e.assets.Placeholder()
	}

	banner, err := e.assets.WriteImage(data, e.assets.Path("Video", hash, "Banner"))
	if err != nil {
		return e.assets.Placeholder()
	}
	return banner
}
