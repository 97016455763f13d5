// Package igdb provides a client for the IGDB game database, authenticated
// through Twitch OAuth client credentials.
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.igdb.com"
const defaultTokenURL = "https://id.twitch.tv/oauth2/token"

// Game is a resolved game record with defaults applied for missing fields.
type Game struct {
	ID          int64
	Title       string
	Summary     string
	Rating      float64
	ReleaseDate string // "2006-01-02", empty when unknown
	Genres      []string
	CoverURL    string
}

// consoleNames maps folder short names to IGDB platform display names.
// A platform matches when either its abbreviation or this expansion equals
// the console folder name.
var consoleNames = map[string]string{
	"GB":                 "Game Boy",
	"GBA":                "Game Boy Advance",
	"GBC":                "Game Boy Color",
	"N64":                "Nintendo 64",
	"NES":                "Nintendo Entertainment System",
	"NDS":                "Nintendo DS",
	"SNES":               "Super Nintendo Entertainment System",
	"Sega Master System": "Sega Master System",
	"Sega Mega Drive":    "Sega Mega Drive",
	"PS1":                "PS1",
}

// Client is an IGDB API client.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	httpClient   *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTokenURL sets a custom OAuth token URL (for testing).
func WithTokenURL(url string) Option {
	return func(c *Client) {
		c.tokenURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new IGDB client.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		tokenURL:     defaultTokenURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether API credentials are present.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Message     string `json:"message"`
}

// accessToken returns a cached OAuth token, refreshing it when expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	q.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		if tok.Message != "" {
			return "", fmt.Errorf("twitch oauth: %s", tok.Message)
		}
		return "", fmt.Errorf("twitch oauth: no access token in response")
	}

	c.token = tok.AccessToken
	// Refresh a minute before expiry
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)
	return c.token, nil
}

type apiGame struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Summary          string  `json:"summary"`
	TotalRating      float64 `json:"total_rating"`
	FirstReleaseDate int64   `json:"first_release_date"` // unix seconds
	Cover            *struct {
		URL string `json:"url"`
	} `json:"cover"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Platforms []struct {
		Abbreviation    string `json:"abbreviation"`
		AlternativeName string `json:"alternative_name"`
	} `json:"platforms"`
}

// SearchGame looks a game up by name, restricted to the given console
// folder name. Returns nil, nil when nothing suitable is found; missing
// optional fields default rather than fail.
func (c *Client) SearchGame(ctx context.Context, name, console string) (*Game, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf(`search %q; fields name, cover.*, summary, total_rating, first_release_date, genres.*, platforms.*; limit 10;`, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v4/games", strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-ID", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IGDB API error: %s", resp.Status)
	}

	var games []apiGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	for _, g := range games {
		if !matchesConsole(g, console) {
			continue
		}
		return toGame(g), nil
	}
	return nil, nil
}

func matchesConsole(g apiGame, console string) bool {
	if len(g.Platforms) == 0 {
		return false
	}
	want := console
	if full, ok := consoleNames[console]; ok {
		want = full
	}
	for _, p := range g.Platforms {
		name := p.Abbreviation
		if name == "" {
			name = p.AlternativeName
		}
		if name == console || name == want {
			return true
		}
	}
	return false
}

func toGame(g apiGame) *Game {
	game := &Game{
		ID:      g.ID,
		Title:   g.Name,
		Summary: g.Summary,
		Rating:  g.TotalRating,
	}
	if g.FirstReleaseDate > 0 {
		game.ReleaseDate = time.Unix(g.FirstReleaseDate, 0).UTC().Format("2006-01-02")
	}
	for _, genre := range g.Genres {
		game.Genres = append(game.Genres, genre.Name)
	}
	if g.Cover != nil && g.Cover.URL != "" {
		// Cover URLs come back protocol-relative
		game.CoverURL = strings.Replace(g.Cover.URL, "//", "https://", 1)
	}
	return game
}
