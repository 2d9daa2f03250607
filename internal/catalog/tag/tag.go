// Copyright (c) 2026 Wavecrate. All rights reserved.

/*
Package tag implements the catalog tag codec.

A tag is the compact human-readable identifier printed on every record
sleeve in the stacks: a 2-character genre abbreviation, the artist's
number within that genre, and optionally a single album letter.

	"RK12"  → genre RK, artist 12
	"RK12b" → genre RK, artist 12, album b

Decompose and Compose are pure inverses for well-formed input; nothing in
this package touches storage.
*/
package tag

import (
	"strconv"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
)

// Tag holds the structured parts of a decomposed catalog tag.
type Tag struct {
	// GenreAbbr is the 2-character genre abbreviation, e.g. "RK".
	GenreAbbr string `json:"genre_abbr"`

	// ArtistNum is the artist's number within the genre.
	ArtistNum int `json:"artist_num"`

	// AlbumLetter is the single album letter, or "" when the tag
	// addresses an artist rather than an album.
	AlbumLetter string `json:"album_letter,omitempty"`
}

// HasAlbum reports whether the tag carries an album letter.
func (t Tag) HasAlbum() bool {
	return t.AlbumLetter != ""
}

// ArtistTag returns the tag of the owning artist, without the album letter.
func (t Tag) ArtistTag() string {
	return Compose(t.GenreAbbr, t.ArtistNum, "")
}

// String re-composes the full tag string.
func (t Tag) String() string {
	return Compose(t.GenreAbbr, t.ArtistNum, t.AlbumLetter)
}

// Decompose parses a tag string into its structured parts.
//
// The first two characters are always the genre abbreviation; the digits
// that follow are the artist number; if exactly one non-digit character
// remains after the digits, it is the album letter. Anything else is
// malformed:
//
//   - shorter than 3 characters,
//   - empty or non-numeric artist-number segment,
//   - a zero-padded artist-number segment ("RK007"), which could not have
//     been produced by [Compose] and would not survive a round trip,
//   - more than one character after the digits.
func Decompose(raw string) (Tag, error) {
	if len(raw) < constants.GenreAbbrLen+1 {
		return Tag{}, apperr.InvalidTag(raw)
	}

	genreAbbr := raw[:constants.GenreAbbrLen]
	rest := raw[constants.GenreAbbrLen:]

	// Consume the run of digits forming the artist number.
	digitEnd := 0
	for digitEnd < len(rest) && rest[digitEnd] >= '0' && rest[digitEnd] <= '9' {
		digitEnd++
	}

	if digitEnd == 0 {
		return Tag{}, apperr.InvalidTag(raw)
	}

	// A leading zero would be lost on re-composition.
	if digitEnd > 1 && rest[0] == '0' {
		return Tag{}, apperr.InvalidTag(raw)
	}

	artistNum, err := strconv.Atoi(rest[:digitEnd])
	if err != nil {
		return Tag{}, apperr.InvalidTag(raw)
	}

	trailer := rest[digitEnd:]
	if len(trailer) > 1 {
		return Tag{}, apperr.InvalidTag(raw)
	}

	return Tag{
		GenreAbbr:   genreAbbr,
		ArtistNum:   artistNum,
		AlbumLetter: trailer,
	}, nil
}

// Compose concatenates structured identity parts back into a tag string.
//
// It is the inverse of [Decompose] for all well-formed inputs:
// Decompose(Compose(g, n, l)) == (g, n, l).
func Compose(genreAbbr string, artistNum int, albumLetter string) string {
	return genreAbbr + strconv.Itoa(artistNum) + albumLetter
}
