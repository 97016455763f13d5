package scan

//go:generate mockgen -source=providers.go -destination=mocks/providers.go -package=mocks

import (
	"context"

	"github.com/vmunix/shelfd/internal/deezer"
	"github.com/vmunix/shelfd/internal/igdb"
	"github.com/vmunix/shelfd/internal/tmdb"
)

// MovieProvider is the movie catalog surface the engine needs.
type MovieProvider interface {
	SearchMovies(ctx context.Context, query string, year int) ([]tmdb.MovieResult, error)
	GetMovie(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
}

// TVProvider is the series catalog surface the engine needs.
type TVProvider interface {
	SearchTV(ctx context.Context, query string, year int) ([]tmdb.TVResult, error)
	GetTV(ctx context.Context, id int64) (*tmdb.TVDetails, error)
	GetEpisode(ctx context.Context, tvID int64, season, episode int) (*tmdb.EpisodeDetails, error)
	GetEpisodeGroups(ctx context.Context, tvID int64) ([]tmdb.EpisodeGroup, error)
	GetEpisodeGroup(ctx context.Context, groupID string) (*tmdb.EpisodeGroupDetails, error)
}

// MusicProvider is the music catalog surface the engine needs.
type MusicProvider interface {
	SearchArtists(ctx context.Context, name string) ([]deezer.Artist, error)
	SearchAlbums(ctx context.Context, query string) ([]deezer.Album, error)
}

// GameProvider is the game catalog surface the engine needs.
// SearchGame returns (nil, nil) when nothing suitable matches.
type GameProvider interface {
	Configured() bool
	SearchGame(ctx context.Context, name, console string) (*igdb.Game, error)
}

// AssetStore fetches and normalizes cover art into the asset directory.
type AssetStore interface {
	Path(entity, id, kind string) string
	Exists(destBase string) bool
	FetchImage(ctx context.Context, url, destBase string) (string, error)
	WriteImage(data []byte, destBase string) (string, error)
	Placeholder() string
}
