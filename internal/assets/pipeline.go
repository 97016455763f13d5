// Package assets fetches remote cover art and normalizes it into the
// asset store as AVIF files.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/avif"
	xdraw "golang.org/x/image/draw"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Ext is the normalized asset extension.
const Ext = ".avif"

// maxDimension bounds the longest edge of stored images.
const maxDimension = 1280

// Pipeline downloads and normalizes cover art into a flat asset directory.
type Pipeline struct {
	dir         string
	placeholder string
	httpClient  *http.Client
	log         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Pipeline) {
		p.httpClient = hc
	}
}

// New creates a Pipeline writing into dir. The placeholder path is returned
// whenever no real asset can be produced.
func New(dir, placeholder string, log *slog.Logger, opts ...Option) (*Pipeline, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Pipeline{
		dir:         dir,
		placeholder: placeholder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Placeholder returns the static placeholder asset path.
func (p *Pipeline) Placeholder() string {
	return p.placeholder
}

// Path builds the asset-store path (without extension) for an entity asset,
// e.g. Path("Movie", "550", "Cover") -> dir/Movie_550_Cover.
func (p *Pipeline) Path(entity, id, kind string) string {
	name := fmt.Sprintf("%s_%s", entity, id)
	if kind != "" {
		name += "_" + kind
	}
	return filepath.Join(p.dir, name)
}

// Exists reports whether a normalized asset already exists for destBase.
func (p *Pipeline) Exists(destBase string) bool {
	_, err := os.Stat(destBase + Ext)
	return err == nil
}

// FetchImage downloads a remote image and normalizes it to destBase+Ext.
// An empty URL or an empty download yields the placeholder path. Codec
// failures fall back, in order, to keeping the raw bytes under the
// normalized name, keeping a pre-existing normalized file, and finally
// the placeholder. A temporary and a final file are never both left on
// disk, and a zero-byte file is never registered.
func (p *Pipeline) FetchImage(ctx context.Context, url, destBase string) (string, error) {
	if url == "" {
		return p.placeholder, nil
	}

	final := destBase + Ext
	tmp := destBase + ".tmp"

	if err := p.download(ctx, url, tmp); err != nil {
		return p.placeholder, err
	}

	return p.normalize(tmp, final), nil
}

// WriteImage normalizes already-downloaded raw image bytes (an embedded
// tag cover, an archive page) to destBase+Ext with the same fallbacks as
// FetchImage.
func (p *Pipeline) WriteImage(data []byte, destBase string) (string, error) {
	if len(data) == 0 {
		return p.placeholder, nil
	}

	final := destBase + Ext
	tmp := destBase + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return p.placeholder, fmt.Errorf("write temp asset: %w", err)
	}

	return p.normalize(tmp, final), nil
}

// download writes the response body for url to path.
func (p *Pipeline) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch image: %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create temp asset: %w", err)
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write temp asset: %w", err)
	}
	if n == 0 {
		_ = os.Remove(path)
		return fmt.Errorf("fetch image: empty body")
	}
	return nil
}

// normalize converts tmp into the normalized file at final, applying the
// fallback chain on codec failure. tmp is always consumed.
func (p *Pipeline) normalize(tmp, final string) string {
	img, err := decodeFile(tmp)
	if err == nil {
		img = bound(img)
		if err = encodeFile(final, img); err == nil {
			_ = os.Remove(tmp)
			return final
		}
	}
	p.log.Warn("asset normalize failed, falling back", "dest", final, "error", err)

	// Keep the raw bytes under the normalized name when nothing is there yet.
	if _, statErr := os.Stat(final); statErr == nil {
		_ = os.Remove(tmp)
		return final
	}
	if renameErr := os.Rename(tmp, final); renameErr == nil {
		return final
	}
	_ = os.Remove(tmp)
	return p.placeholder
}

func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp asset: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func encodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	err = avif.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("encode avif: %w", err)
	}
	return nil
}

// bound scales img down so its longest edge is at most maxDimension.
func bound(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}
	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
