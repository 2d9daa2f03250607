package lookup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/album"
	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/catalog/lookup"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
)

type fakeGenres struct{}

func (fakeGenres) GetGenre(_ context.Context, abbreviation string) (*genre.Genre, error) {
	if abbreviation != "RK" {
		return nil, apperr.GenreNotFound(abbreviation)
	}
	return &genre.Genre{Abbreviation: "RK", Name: "Rock"}, nil
}

type fakeArtists struct{}

func (fakeArtists) GetArtist(_ context.Context, genreAbbr string, number int) (*artist.Artist, error) {
	if genreAbbr != "RK" || number != 12 {
		return nil, apperr.ArtistNotFound(genreAbbr)
	}
	return &artist.Artist{GenreAbbr: "RK", Number: 12, Name: "The Basement Dwellers"}, nil
}

type fakeAlbums struct{}

func (fakeAlbums) GetAlbum(_ context.Context, genreAbbr string, artistNum int, letter string) (*album.Album, error) {
	if genreAbbr != "RK" || artistNum != 12 || letter != "b" {
		return nil, apperr.NotFound("Album")
	}
	return &album.Album{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Basement Tapes"}, nil
}

/*
TestResolve dispatches each tag shape to the right entity kind.
*/
func TestResolve(t *testing.T) {
	service := lookup.NewService(fakeGenres{}, fakeArtists{}, fakeAlbums{})

	tests := []struct {
		name string
		raw  string
		kind lookup.Kind
	}{
		{"genre_abbreviation", "RK", lookup.KindGenre},
		{"artist_tag", "RK12", lookup.KindArtist},
		{"album_tag", "RK12b", lookup.KindAlbum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Resolve(context.Background(), tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.kind, result.Kind)
		})
	}
}

/*
TestResolve_Errors verifies malformed tags fail before lookup and misses
surface the entity-specific not-found codes.
*/
func TestResolve_Errors(t *testing.T) {
	service := lookup.NewService(fakeGenres{}, fakeArtists{}, fakeAlbums{})

	tests := []struct {
		name string
		raw  string
		code string
	}{
		{"malformed", "R2D", "INVALID_TAG"},
		{"unknown_genre", "ZZ", "GENRE_NOT_FOUND"},
		{"unknown_artist", "RK99", "ARTIST_NOT_FOUND"},
		{"unknown_album", "RK12z", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Resolve(context.Background(), tt.raw)

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, tt.code))
		})
	}
}
