package catalog

import "time"

// MediaType identifies what kind of content a library holds.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
	MediaTypeMusic  MediaType = "music"
	MediaTypeGame   MediaType = "game"
	MediaTypeVideo  MediaType = "video"
	MediaTypeBook   MediaType = "book"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeSeries, MediaTypeMusic, MediaTypeGame, MediaTypeVideo, MediaTypeBook:
		return true
	}
	return false
}

// Library binds a named media type to a root folder.
type Library struct {
	Name      string
	MediaType MediaType
	RootPath  string
	AddedAt   time.Time
	UpdatedAt time.Time
}

// Item is a leaf catalog record for the flat media types
// (movies, games, generic videos, books).
//
// Slug is the absolute source file path and serves as the natural key
// within a library.
type Item struct {
	ID          int64
	MediaType   MediaType
	ExternalID  string // provider id, or a generated id when unmatched
	Title       string
	RealTitle   string
	Overview    string
	Rating      float64
	ReleaseDate string
	Genres      string // comma-joined genre names
	CastIDs     string // comma-joined provider person ids
	TrailerURL  string
	CoverPath   string
	BannerPath  string
	Duration    string
	Console     string // games only
	BookType    string // books only
	ContentHash string // generic videos only
	Slug        string
	FileMtime   int64
	LibraryName string
	AddedAt     time.Time
}

// Series is the root of a series -> season -> episode hierarchy.
type Series struct {
	ID             int64
	ExternalID     string
	Title          string
	OriginalTitle  string
	Overview       string
	Rating         float64
	FirstAirDate   string
	Genres         string
	CastIDs        string
	TrailerURL     string
	CoverPath      string
	BannerPath     string
	EpisodeRunTime string
	SeasonCount    int
	FolderMtime    int64
	LibraryName    string
	AddedAt        time.Time
}

// Season belongs to exactly one Series.
type Season struct {
	ID             int64
	SeriesID       int64
	ExternalID     string
	SeasonNumber   int
	Title          string
	Overview       string
	EpisodeCount   int // from the catalog provider
	EpisodesOnDisk int
	AirDate        string
	CoverPath      string
	FolderMtime    int64
}

// Episode belongs to exactly one Season. Slug is its natural key.
type Episode struct {
	ID            int64
	SeasonID      int64
	ExternalID    string
	EpisodeNumber int
	Title         string
	Overview      string
	AirDate       string
	CoverPath     string
	Slug          string
	LibraryName   string
}

// Artist is the root of an artist -> album -> track hierarchy.
type Artist struct {
	ID          int64
	ExternalID  string
	Name        string
	CoverPath   string
	LibraryName string
}

// Album belongs to exactly one Artist. TrackList is the comma-joined
// set of track filenames currently on disk, used as a change signal.
type Album struct {
	ID          int64
	ExternalID  string
	Title       string
	DirName     string
	ArtistID    int64
	CoverPath   string
	TrackList   string
	LibraryName string
}

// Track belongs to an Artist and optionally an Album (AlbumID 0 for
// loose files in the artist folder). Slug is its natural key.
type Track struct {
	ID          int64
	Title       string
	AlbumID     int64
	ArtistID    int64
	DurationSec int64
	CoverPath   string
	Slug        string
	LibraryName string
}
