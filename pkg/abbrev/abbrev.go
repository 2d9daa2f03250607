// Copyright (c) 2026 Wavecrate. All rights reserved.

// Package abbrev suggests catalog abbreviations from arbitrary Unicode names.
//
// # Usage
//
// Genre abbreviations are the 2-character prefix of every catalog tag
// (e.g. "RK" in "RK12b"). When a music director files a new genre without
// choosing an abbreviation, this package derives a sensible default from
// the genre name ("Rock" → "RO", "Électronique" → "EL").
package abbrev

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Width is the fixed abbreviation width used by catalog tags.
const Width = 2

// FromName derives an uppercase ASCII abbreviation from a genre name.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Keeps only ASCII letters.
// 4. Uppercases and truncates to [Width] characters.
//
// Returns an empty string when the name contains fewer than [Width] usable
// letters; callers must then require an explicit abbreviation.
func FromName(name string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, name)

	// 2. Keep letters only
	var letters []rune
	for _, r := range result {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
		if len(letters) == Width {
			break
		}
	}

	if len(letters) < Width {
		return ""
	}

	return strings.ToUpper(string(letters))
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
