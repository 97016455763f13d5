package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfd/pkg/guess"
)

// guessJSON is the JSON-friendly representation of parsed hints.
type guessJSON struct {
	Title            string `json:"title"`
	AlternativeTitle string `json:"alternative_title,omitempty"`
	Year             int    `json:"year,omitempty"`
	Season           int    `json:"season,omitempty"`
	SecondSeason     int    `json:"second_season,omitempty"`
	Episode          int    `json:"episode,omitempty"`
	EpisodeTitle     string `json:"episode_title,omitempty"`
	Part             int    `json:"part,omitempty"`
	SearchTitle      string `json:"search_title"`
}

var guessCmd = &cobra.Command{
	Use:   "guess <name>",
	Short: "Parse a media filename (local, no daemon needed)",
	Long: `Extracts the title, year, and season/episode markers a scan pass
would derive from a file or folder name.

Examples:
  shelf guess "The Matrix 1999.mkv"
  shelf guess --json "Breaking Bad S02E05 Breakage"`,
	Args: cobra.ExactArgs(1),
	RunE: runGuess,
}

func init() {
	rootCmd.AddCommand(guessCmd)
}

func runGuess(cmd *cobra.Command, args []string) error {
	h := guess.Parse(args[0])

	if jsonOutput {
		return printJSON(guessJSON{
			Title:            h.Title,
			AlternativeTitle: h.AlternativeTitle,
			Year:             h.Year,
			Season:           h.Season,
			SecondSeason:     h.SecondSeason,
			Episode:          h.Episode,
			EpisodeTitle:     h.EpisodeTitle,
			Part:             h.Part,
			SearchTitle:      h.SearchTitle(args[0]),
		})
	}

	fmt.Printf("Title:        %s\n", valueOrEmpty(h.Title))
	if h.AlternativeTitle != "" {
		fmt.Printf("Alt Title:    %s\n", h.AlternativeTitle)
	}
	if h.Year > 0 {
		fmt.Printf("Year:         %d\n", h.Year)
	}
	if h.Season > 0 || h.Episode > 0 {
		fmt.Printf("Season:       %d\n", h.Season)
		fmt.Printf("Episode:      %d\n", h.Episode)
	}
	if h.SecondSeason > 0 {
		fmt.Printf("SecondSeason: %d\n", h.SecondSeason)
	}
	if h.EpisodeTitle != "" {
		fmt.Printf("Ep Title:     %s\n", h.EpisodeTitle)
	}
	if h.Part > 0 {
		fmt.Printf("Part:         %d\n", h.Part)
	}
	fmt.Printf("SearchTitle:  %s\n", h.SearchTitle(args[0]))
	return nil
}

// valueOrEmpty returns the value or an empty placeholder.
func valueOrEmpty(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
