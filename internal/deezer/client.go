// Package deezer provides a client for the Deezer public API, used to
// resolve music artists and albums.
package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.deezer.com"
const defaultCacheTTL = 24 * time.Hour

// Artist is one entry of an artist search response.
type Artist struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PictureBig string `json:"picture_big"`
}

// Album is one entry of an album search response.
type Album struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	CoverBig string `json:"cover_big"`
}

// Client is a Deezer API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.RWMutex
	cache    map[string]cacheEntry
	cacheTTL time.Duration
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Deezer client. The public API needs no key.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:    make(map[string]cacheEntry),
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) cached(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[key]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *Client) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{value: value, expires: time.Now().Add(c.cacheTTL)}
}

func (c *Client) search(ctx context.Context, path, query string, out any) error {
	q := url.Values{}
	q.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s?%s", c.baseURL, path, q.Encode()), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deezer API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type artistSearchResponse struct {
	Data []Artist `json:"data"`
}

// SearchArtists searches artists by name, most relevant first.
func (c *Client) SearchArtists(ctx context.Context, name string) ([]Artist, error) {
	key := "artist:" + name
	if v, ok := c.cached(key); ok {
		return v.([]Artist), nil
	}

	var resp artistSearchResponse
	if err := c.search(ctx, "/search/artist", name, &resp); err != nil {
		return nil, err
	}

	c.store(key, resp.Data)
	return resp.Data, nil
}

type albumSearchResponse struct {
	Data []Album `json:"data"`
}

// SearchAlbums searches albums by free-text query ("Artist - Album"),
// most relevant first.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]Album, error) {
	key := "album:" + query
	if v, ok := c.cached(key); ok {
		return v.([]Album), nil
	}

	var resp albumSearchResponse
	if err := c.search(ctx, "/search/album", query, &resp); err != nil {
		return nil, err
	}

	c.store(key, resp.Data)
	return resp.Data, nil
}
