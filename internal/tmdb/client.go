package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultCacheTTL = 24 * time.Hour

// ErrNotFound is returned when a record doesn't exist in TMDB.
var ErrNotFound = errors.New("tmdb: not found")

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get executes a GET request against path and decodes into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode()), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type movieSearchResponse struct {
	Results []MovieResult `json:"results"`
}

// SearchMovies searches for movies by title. A non-zero year narrows the
// query on the provider side so distance ranking never has to disambiguate
// year mismatches.
func (c *Client) SearchMovies(ctx context.Context, query string, year int) ([]MovieResult, error) {
	key := fmt.Sprintf("search:movie:%s:%d", query, year)
	if v, ok := c.cache.get(key); ok {
		return v.([]MovieResult), nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "true")
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}

	var resp movieSearchResponse
	if err := c.get(ctx, "/3/search/movie", q, &resp); err != nil {
		return nil, err
	}

	c.cache.set(key, resp.Results)
	return resp.Results, nil
}

type tvSearchResponse struct {
	Results []TVResult `json:"results"`
}

// SearchTV searches for series by name, optionally narrowed by first-air year.
func (c *Client) SearchTV(ctx context.Context, query string, year int) ([]TVResult, error) {
	key := fmt.Sprintf("search:tv:%s:%d", query, year)
	if v, ok := c.cache.get(key); ok {
		return v.([]TVResult), nil
	}

	q := url.Values{}
	q.Set("query", query)
	if year > 0 {
		q.Set("first_air_date_year", strconv.Itoa(year))
	}

	var resp tvSearchResponse
	if err := c.get(ctx, "/3/search/tv", q, &resp); err != nil {
		return nil, err
	}

	c.cache.set(key, resp.Results)
	return resp.Results, nil
}

// GetMovie fetches full movie metadata with credits and videos appended.
func (c *Client) GetMovie(ctx context.Context, id int64) (*MovieDetails, error) {
	key := fmt.Sprintf("movie:%d", id)
	if v, ok := c.cache.get(key); ok {
		return v.(*MovieDetails), nil
	}

	q := url.Values{}
	q.Set("append_to_response", "credits,videos")

	var details MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", id), q, &details); err != nil {
		return nil, err
	}

	c.cache.set(key, &details)
	return &details, nil
}

// GetTV fetches full series metadata with credits and videos appended.
func (c *Client) GetTV(ctx context.Context, id int64) (*TVDetails, error) {
	key := fmt.Sprintf("tv:%d", id)
	if v, ok := c.cache.get(key); ok {
		return v.(*TVDetails), nil
	}

	q := url.Values{}
	q.Set("append_to_response", "credits,videos")

	var details TVDetails
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", id), q, &details); err != nil {
		return nil, err
	}

	c.cache.set(key, &details)
	return &details, nil
}

// GetEpisode fetches a single episode record.
func (c *Client) GetEpisode(ctx context.Context, tvID int64, season, episode int) (*EpisodeDetails, error) {
	key := fmt.Sprintf("episode:%d:%d:%d", tvID, season, episode)
	if v, ok := c.cache.get(key); ok {
		return v.(*EpisodeDetails), nil
	}

	var details EpisodeDetails
	path := fmt.Sprintf("/3/tv/%d/season/%d/episode/%d", tvID, season, episode)
	if err := c.get(ctx, path, nil, &details); err != nil {
		return nil, err
	}

	c.cache.set(key, &details)
	return &details, nil
}

type episodeGroupsResponse struct {
	Results []EpisodeGroup `json:"results"`
}

// GetEpisodeGroups lists the alternate episode-group layouts of a series.
func (c *Client) GetEpisodeGroups(ctx context.Context, tvID int64) ([]EpisodeGroup, error) {
	key := fmt.Sprintf("groups:%d", tvID)
	if v, ok := c.cache.get(key); ok {
		return v.([]EpisodeGroup), nil
	}

	var resp episodeGroupsResponse
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/episode_groups", tvID), nil, &resp); err != nil {
		return nil, err
	}

	c.cache.set(key, resp.Results)
	return resp.Results, nil
}

// GetEpisodeGroup fetches one episode-group layout with its ordered groups.
func (c *Client) GetEpisodeGroup(ctx context.Context, groupID string) (*EpisodeGroupDetails, error) {
	key := "group:" + groupID
	if v, ok := c.cache.get(key); ok {
		return v.(*EpisodeGroupDetails), nil
	}

	var details EpisodeGroupDetails
	if err := c.get(ctx, "/3/tv/episode_group/"+groupID, nil, &details); err != nil {
		return nil, err
	}

	c.cache.set(key, &details)
	return &details, nil
}
