package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := New(t.TempDir(), "/static/placeholder.png", log)
	require.NoError(t, err)
	return p
}

// pngBytes encodes a small solid-color PNG.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func imageServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
}

func TestPath(t *testing.T) {
	p := testPipeline(t)
	assert.Equal(t, filepath.Join(p.dir, "Movie_550_Cover"), p.Path("Movie", "550", "Cover"))
	assert.Equal(t, filepath.Join(p.dir, "Artist_27"), p.Path("Artist", "27", ""))
}

func TestFetchImage(t *testing.T) {
	p := testPipeline(t)
	srv := imageServer(t, pngBytes(t))
	defer srv.Close()

	dest := p.Path("Movie", "550", "Cover")
	got, err := p.FetchImage(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, dest+Ext, got)
	assert.True(t, p.Exists(dest))
	assert.NoFileExists(t, dest+".tmp")
}

func TestFetchImage_EmptyURL(t *testing.T) {
	p := testPipeline(t)
	got, err := p.FetchImage(context.Background(), "", p.Path("Movie", "1", "Cover"))
	require.NoError(t, err)
	assert.Equal(t, p.Placeholder(), got)
}

func TestFetchImage_EmptyBody(t *testing.T) {
	p := testPipeline(t)
	srv := imageServer(t, nil)
	defer srv.Close()

	dest := p.Path("Movie", "2", "Cover")
	got, err := p.FetchImage(context.Background(), srv.URL, dest)
	assert.Error(t, err)
	assert.Equal(t, p.Placeholder(), got)
	assert.NoFileExists(t, dest+Ext)
	assert.NoFileExists(t, dest+".tmp")
}

func TestFetchImage_ServerError(t *testing.T) {
	p := testPipeline(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := p.Path("Movie", "3", "Cover")
	got, err := p.FetchImage(context.Background(), srv.URL, dest)
	assert.Error(t, err)
	assert.Equal(t, p.Placeholder(), got)
	assert.NoFileExists(t, dest+".tmp")
}

func TestFetchImage_BadCodecKeepsRawBytes(t *testing.T) {
	p := testPipeline(t)
	raw := []byte("not an image at all")
	srv := imageServer(t, raw)
	defer srv.Close()

	dest := p.Path("Movie", "4", "Cover")
	got, err := p.FetchImage(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, dest+Ext, got)

	onDisk, err := os.ReadFile(dest + Ext)
	require.NoError(t, err)
	assert.Equal(t, raw, onDisk)
	assert.NoFileExists(t, dest+".tmp")
}

func TestFetchImage_BadCodecKeepsExisting(t *testing.T) {
	p := testPipeline(t)
	srv := imageServer(t, []byte("garbage"))
	defer srv.Close()

	dest := p.Path("Movie", "5", "Cover")
	existing := []byte("previously normalized")
	require.NoError(t, os.WriteFile(dest+Ext, existing, 0644))

	got, err := p.FetchImage(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, dest+Ext, got)

	onDisk, err := os.ReadFile(dest + Ext)
	require.NoError(t, err)
	assert.Equal(t, existing, onDisk)
	assert.NoFileExists(t, dest+".tmp")
}

func TestWriteImage(t *testing.T) {
	p := testPipeline(t)
	dest := p.Path("Book", "7", "Cover")

	got, err := p.WriteImage(pngBytes(t), dest)
	require.NoError(t, err)
	assert.Equal(t, dest+Ext, got)
	assert.True(t, p.Exists(dest))
	assert.NoFileExists(t, dest+".tmp")
}

func TestWriteImage_Empty(t *testing.T) {
	p := testPipeline(t)
	got, err := p.WriteImage(nil, p.Path("Book", "8", "Cover"))
	require.NoError(t, err)
	assert.Equal(t, p.Placeholder(), got)
}

func TestExists(t *testing.T) {
	p := testPipeline(t)
	dest := p.Path("Video", "abc", "Banner")
	assert.False(t, p.Exists(dest))
	require.NoError(t, os.WriteFile(dest+Ext, []byte("x"), 0644))
	assert.True(t, p.Exists(dest))
}
