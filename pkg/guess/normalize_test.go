package guess

import "testing"

func TestNormalizeRomanNumerals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two", "Rocky II", "Rocky 2"},
		{"four", "Final Fantasy IV", "Final Fantasy 4"},
		{"nine", "Final Fantasy IX", "Final Fantasy 9"},
		{"lowercase", "rocky iii", "rocky 3"},
		{"standalone I untouched", "I Robot", "I Robot"},
		{"standalone X untouched", "American History X", "American History X"},
		{"no numeral", "The Matrix", "The Matrix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRomanNumerals(tt.in); got != tt.want {
				t.Errorf("NormalizeRomanNumerals(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "The Matrix", "matrix"},
		{"accents removed", "Amélie", "amelie"},
		{"ampersand", "Fast & Furious", "fast and furious"},
		{"apostrophe dropped", "Ocean's Eleven", "oceans eleven"},
		{"subtitle article stripped", "Lord of War: The Arms Dealer", "lord of war arms dealer"},
		{"roman numeral", "Rambo III", "rambo 3"},
		{"punctuation stripped", "WALL·E", "walle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.in); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripNumericPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rom set prefix", "0123 - Super Mario World.sfc", "Super Mario World.sfc"},
		{"five digits", "12345 - Sonic.md", "Sonic.md"},
		{"two digits untouched", "12 - Game.gba", "12 - Game.gba"},
		{"no prefix", "Chrono Trigger.sfc", "Chrono Trigger.sfc"},
		{"directory-less name without ext", "0042 - Tetris", "Tetris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripNumericPrefix(tt.in); got != tt.want {
				t.Errorf("StripNumericPrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
