// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

const imageBaseURL = "https://image.tmdb.org/t/p/original"

// MovieResult is one entry of a movie search response.
type MovieResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"` // "2024-03-01"
	PosterPath    string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath  string  `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average"`
	GenreIDs      []int   `json:"genre_ids"`
	Adult         bool    `json:"adult"`
}

// TVResult is one entry of a TV search response.
type TVResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// Genre represents a genre entry from a details response.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited actor.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast list of a details response.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// Video is a trailer or clip reference.
type Video struct {
	Site string `json:"site"` // YouTube, Vimeo, Dailymotion
	Type string `json:"type"` // Trailer, Teaser, ...
	Key  string `json:"key"`
}

// VideoList wraps the videos element of a details response.
type VideoList struct {
	Results []Video `json:"results"`
}

// MovieDetails is the full movie record with appended credits and videos.
type MovieDetails struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview"`
	ReleaseDate  string    `json:"release_date"`
	PosterPath   string    `json:"poster_path"`
	BackdropPath string    `json:"backdrop_path"`
	VoteAverage  float64   `json:"vote_average"`
	Runtime      int       `json:"runtime"` // minutes
	Genres       []Genre   `json:"genres"`
	Credits      Credits   `json:"credits"`
	Videos       VideoList `json:"videos"`
}

// SeasonInfo is one season entry of a TV details response.
type SeasonInfo struct {
	ID           int64  `json:"id"`
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// TVDetails is the full series record with appended credits and videos.
type TVDetails struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	Overview         string       `json:"overview"`
	FirstAirDate     string       `json:"first_air_date"`
	PosterPath       string       `json:"poster_path"`
	BackdropPath     string       `json:"backdrop_path"`
	VoteAverage      float64      `json:"vote_average"`
	EpisodeRunTime   []int        `json:"episode_run_time"`
	NumberOfSeasons  int          `json:"number_of_seasons"`
	NumberOfEpisodes int          `json:"number_of_episodes"`
	Seasons          []SeasonInfo `json:"seasons"`
	Genres           []Genre      `json:"genres"`
	Credits          Credits      `json:"credits"`
	Videos           VideoList    `json:"videos"`
}

// EpisodeDetails is a single episode record.
type EpisodeDetails struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
	StillPath     string `json:"still_path"`
}

// EpisodeGroup is one alternate episode-group layout of a series.
type EpisodeGroup struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
	GroupCount   int    `json:"group_count"`
}

// GroupSeason is one ordered group inside an episode-group layout.
type GroupSeason struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Order    int              `json:"order"`
	Episodes []EpisodeDetails `json:"episodes"`
}

// EpisodeGroupDetails is a full episode-group layout.
type EpisodeGroupDetails struct {
	ID     string        `json:"id"`
	Groups []GroupSeason `json:"groups"`
}

// Year extracts the year from ReleaseDate.
func (m *MovieResult) Year() int {
	return yearOf(m.ReleaseDate)
}

// Year extracts the year from FirstAirDate.
func (t *TVResult) Year() int {
	return yearOf(t.FirstAirDate)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// ImageURL returns the full URL for a poster/backdrop/still path, or empty
// when the path is absent.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + path
}

// movieGenres maps search-result genre ids to display names. Details
// responses carry full genre objects; search results only carry ids.
var movieGenres = map[int]string{
	12:    "Adventure",
	14:    "Fantasy",
	16:    "Animation",
	18:    "Drama",
	27:    "Horror",
	28:    "Action",
	35:    "Comedy",
	36:    "History",
	37:    "Western",
	53:    "Thriller",
	80:    "Crime",
	99:    "Documentary",
	878:   "Science Fiction",
	9648:  "Mystery",
	10402: "Music",
	10749: "Romance",
	10751: "Family",
	10752: "War",
	10759: "Action & Adventure",
	10762: "Kids",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
	10769: "Western",
	10770: "TV Movie",
}

// GenreNames resolves search-result genre ids to names, skipping unknown ids.
func GenreNames(ids []int) []string {
	var names []string
	for _, id := range ids {
		if name, ok := movieGenres[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
