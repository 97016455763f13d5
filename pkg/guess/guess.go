// Package guess derives structured hints from media filenames.
package guess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Hints contains the fields extracted from a filename. Any field may be
// absent: strings are empty and numbers zero when not found.
type Hints struct {
	Title            string
	AlternativeTitle string
	Year             int
	Season           int
	SecondSeason     int // second number of a "S01 S02" style pair
	Episode          int
	EpisodeTitle     string
	Part             int
}

var (
	seasonEpisodeRe = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ._-]?E(\d{1,3})\b`)
	crossRe         = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{1,3})\b`)
	seasonOnlyRe    = regexp.MustCompile(`(?i)\b(?:season|saison)[ ._-]?(\d{1,2})\b`)
	seasonPairRe    = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ._-]+S?(\d{1,2})\b`)
	episodeOnlyRe   = regexp.MustCompile(`(?i)\b(?:episode|ep)[ ._-]?(\d{1,3})\b`)
	yearRe          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	partRe          = regexp.MustCompile(`(?i)\b(?:part|cd|disc)[ ._-]?(\d{1,2})\b`)
	bracketRe       = regexp.MustCompile(`[\[(][^\])]*[\])]`)
)

// Parse extracts hints from a file or folder name. The extension, if any,
// should already be stripped by the caller.
func Parse(name string) *Hints {
	h := &Hints{}

	// Normalize separators
	s := strings.ReplaceAll(name, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Year: take the last occurrence so titles like "2001 A Space Odyssey 1968"
	// keep their leading number.
	if matches := yearRe.FindAllStringIndex(s, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		h.Year, _ = strconv.Atoi(s[last[0]:last[1]])
		s = s[:last[0]] + s[last[1]:]
	}

	// Season/episode markers, most specific first.
	cut := -1
	if m := seasonEpisodeRe.FindStringSubmatchIndex(s); m != nil {
		h.Season = atoi(s[m[2]:m[3]])
		h.Episode = atoi(s[m[4]:m[5]])
		h.EpisodeTitle = cleanRemainder(s[m[1]:])
		cut = m[0]
	} else if m := crossRe.FindStringSubmatchIndex(s); m != nil {
		h.Season = atoi(s[m[2]:m[3]])
		h.Episode = atoi(s[m[4]:m[5]])
		h.EpisodeTitle = cleanRemainder(s[m[1]:])
		cut = m[0]
	} else if m := seasonPairRe.FindStringSubmatchIndex(s); m != nil {
		h.Season = atoi(s[m[2]:m[3]])
		h.SecondSeason = atoi(s[m[4]:m[5]])
		cut = m[0]
	} else if m := seasonOnlyRe.FindStringSubmatchIndex(s); m != nil {
		h.Season = atoi(s[m[2]:m[3]])
		cut = m[0]
	}
	if m := episodeOnlyRe.FindStringSubmatchIndex(s); m != nil && h.Episode == 0 {
		h.Episode = atoi(s[m[2]:m[3]])
		if cut == -1 || m[0] < cut {
			cut = m[0]
		}
	}

	if m := partRe.FindStringSubmatchIndex(s); m != nil {
		h.Part = atoi(s[m[2]:m[3]])
		if cut == -1 || m[0] < cut {
			cut = m[0]
		}
	}

	title := s
	if cut >= 0 {
		title = s[:cut]
	}
	title = bracketRe.ReplaceAllString(title, " ")

	// "Title - Alternative Title" splits into title and alternative.
	if idx := strings.Index(title, " - "); idx > 0 {
		h.AlternativeTitle = strings.TrimSpace(title[idx+3:])
		title = title[:idx]
	}

	h.Title = strings.Join(strings.Fields(strings.Trim(title, " -")), " ")
	return h
}

// SearchTitle composes the query string used against catalog providers.
// Mirrors how hints are folded together before a search: episode numbers
// prefix the title, alternative titles join with a dash, and parts suffix.
// Falls back to the raw name when no title was extracted.
func (h *Hints) SearchTitle(raw string) string {
	if h.Title == "" {
		return raw
	}
	title := h.Title
	if h.Episode != 0 && h.Season == 0 {
		title = fmt.Sprintf("%d %s", h.Episode, title)
	}
	if h.AlternativeTitle != "" {
		title = fmt.Sprintf("%s - %s", h.AlternativeTitle, title)
	}
	if h.Part != 0 {
		title = fmt.Sprintf("%s Part %d", title, h.Part)
	}
	return title
}

func cleanRemainder(s string) string {
	s = bracketRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(strings.Trim(s, " -")), " ")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
