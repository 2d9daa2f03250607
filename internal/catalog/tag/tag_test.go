// Copyright (c) 2026 Wavecrate. All rights reserved.

package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
)

/*
TestDecompose covers well-formed and malformed tag strings.
*/
func TestDecompose(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    tag.Tag
		wantErr bool
	}{
		{"artist_tag", "RK12", tag.Tag{GenreAbbr: "RK", ArtistNum: 12, AlbumLetter: ""}, false},
		{"album_tag", "RK12b", tag.Tag{GenreAbbr: "RK", ArtistNum: 12, AlbumLetter: "b"}, false},
		{"single_digit_artist", "HH1a", tag.Tag{GenreAbbr: "HH", ArtistNum: 1, AlbumLetter: "a"}, false},
		{"long_artist_number", "EL1047z", tag.Tag{GenreAbbr: "EL", ArtistNum: 1047, AlbumLetter: "z"}, false},
		{"too_short", "R", tag.Tag{}, true},
		{"two_chars_only", "RK", tag.Tag{}, true},
		{"no_digits", "RKb", tag.Tag{}, true},
		{"zero_padded_artist", "RK007", tag.Tag{}, true},
		{"zero_padded_album_tag", "RK012b", tag.Tag{}, true},
		{"double_trailer", "RK12bb", tag.Tag{}, true},
		{"trailer_then_digit", "RK12b7", tag.Tag{}, true},
		{"empty", "", tag.Tag{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tag.Decompose(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, "INVALID_TAG"))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestRoundTrip verifies that Compose and Decompose are inverses for all
valid structured inputs, including tags without an album letter.
*/
func TestRoundTrip(t *testing.T) {
	cases := []tag.Tag{
		{GenreAbbr: "RK", ArtistNum: 12, AlbumLetter: "b"},
		{GenreAbbr: "RK", ArtistNum: 12},
		{GenreAbbr: "HH", ArtistNum: 1, AlbumLetter: "a"},
		{GenreAbbr: "EL", ArtistNum: 999, AlbumLetter: "z"},
	}

	for _, want := range cases {
		t.Run(want.String(), func(t *testing.T) {
			composed := tag.Compose(want.GenreAbbr, want.ArtistNum, want.AlbumLetter)
			got, err := tag.Decompose(composed)

			require.NoError(t, err)
			assert.Equal(t, want, got)

			// And back again: decompose then re-compose yields the original string.
			assert.Equal(t, composed, got.String())
		})
	}
}

/*
TestArtistTag verifies that an album tag reduces to its owning artist's tag.
*/
func TestArtistTag(t *testing.T) {
	decomposed, err := tag.Decompose("RK12b")
	require.NoError(t, err)

	assert.True(t, decomposed.HasAlbum())
	assert.Equal(t, "RK12", decomposed.ArtistTag())
}
