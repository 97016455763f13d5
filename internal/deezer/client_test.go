package deezer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("test: failed to encode JSON: " + err.Error())
	}
}

func TestSearchArtists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/artist", r.URL.Path)
		assert.Equal(t, "Daft Punk", r.URL.Query().Get("q"))
		writeJSON(w, artistSearchResponse{Data: []Artist{
			{ID: 27, Name: "Daft Punk", PictureBig: "https://cdn.example/27.jpg"},
		}})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	artists, err := client.SearchArtists(context.Background(), "Daft Punk")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, int64(27), artists[0].ID)
}

func TestSearchAlbums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/album", r.URL.Path)
		assert.Equal(t, "Daft Punk - Discovery", r.URL.Query().Get("q"))
		writeJSON(w, albumSearchResponse{Data: []Album{
			{ID: 302127, Title: "Discovery", CoverBig: "https://cdn.example/302127.jpg"},
		}})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	albums, err := client.SearchAlbums(context.Background(), "Daft Punk - Discovery")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Discovery", albums[0].Title)
}

func TestSearchArtists_Cached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, artistSearchResponse{Data: []Artist{{ID: 27, Name: "Daft Punk"}}})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	for range 3 {
		_, err := client.SearchArtists(context.Background(), "Daft Punk")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.SearchArtists(context.Background(), "Daft Punk")
	assert.Error(t, err)
}
