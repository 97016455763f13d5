package scan

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vmunix/shelfd/internal/catalog"
)

var bookExtensions = map[string]bool{
	".pdf":  true,
	".epub": true,
	".cbz":  true,
	".cbr":  true,
}

func isBookFile(name string) bool {
	return bookExtensions[strings.ToLower(filepath.Ext(name))]
}

func (e *Engine) scanBooks(_ context.Context, lib *catalog.Library) error {
	walkErr := filepath.WalkDir(lib.RootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.log.Warn("walk failed", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !isBookFile(d.Name()) {
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

		if err := e.reconcileBook(lib, path); err != nil {
			e.log.Warn("book skipped", "file", d.Name(), "error", err)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk root: %w", walkErr)
	}

	return e.pruneItems(lib)
}

// reconcileBook inserts the record first so its row id can key the
// extracted cover, then patches in the cover and format.
func (e *Engine) reconcileBook(lib *catalog.Library, path string) error {
	bookType := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))

	item := &catalog.Item{
		MediaType:   catalog.MediaTypeBook,
		ExternalID:  uuid.NewString(),
		Title:       stem(filepath.Base(path)),
		RealTitle:   stem(filepath.Base(path)),
		CoverPath:   e.assets.Placeholder(),
		BannerPath:  e.assets.Placeholder(),
		Slug:        path,
		FileMtime:   mtimeOf(path),
		LibraryName: lib.Name,
	}
	if err := e.persist(func() error { return e.store.AddItem(item) }); err != nil {
		return err
	}
	if item.ID == 0 {
		return nil
	}

	cover := e.bookCover(path, bookType, item.ID)
	return e.store.UpdateItemAssets(item.ID, cover, bookType)
}

// bookCover extracts a cover page where the format allows it. Only CBZ
// archives carry one we can read without an external decoder; other
// formats keep the placeholder.
func (e *Engine) bookCover(path, bookType string, id int64) string {
	if bookType != "CBZ" {
		return e.assets.Placeholder()
	}

	data, err := firstArchivePage(path)
	if err != nil {
		e.log.Debug("cover extraction failed", "file", path, "error", err)
		return e.assets.Placeholder()
	}
	cover, err := e.assets.WriteImage(data, e.assets.Path("Book", strconv.FormatInt(id, 10), "Cover"))
	if err != nil {
		return e.assets.Placeholder()
	}
	return cover
}

// firstArchivePage returns the bytes of the first image entry in a zip
// comic archive.
func firstArchivePage(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry: %w", err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no image entries in archive")
}
