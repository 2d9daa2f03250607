package lookup

import (
	"context"
	"strings"

	"github.com/wavecrate/wavecrate/internal/catalog/album"
	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
)

// Result is a resolved catalog tag. Exactly one of the entity fields is
// set, indicated by Kind.
type Result struct {
	Kind   Kind           `json:"kind"`
	Genre  *genre.Genre   `json:"genre,omitempty"`
	Artist *artist.Artist `json:"artist,omitempty"`
	Album  *album.Album   `json:"album,omitempty"`
}

type Kind string

const (
	KindGenre  Kind = "genre"
	KindArtist Kind = "artist"
	KindAlbum  Kind = "album"
)

// GenreFinder, ArtistFinder and AlbumFinder are the slices of the entity
// services the resolver needs. The services already map storage misses to
// catalog errors, so the resolver just dispatches.
type GenreFinder interface {
	GetGenre(context context.Context, abbreviation string) (*genre.Genre, error)
}

type ArtistFinder interface {
	GetArtist(context context.Context, genreAbbr string, number int) (*artist.Artist, error)
}

type AlbumFinder interface {
	GetAlbum(context context.Context, genreAbbr string, artistNum int, letter string) (*album.Album, error)
}

type Service struct {
	genres  GenreFinder
	artists ArtistFinder
	albums  AlbumFinder
}

func NewService(genres GenreFinder, artists ArtistFinder, albums AlbumFinder) *Service {
	return &Service{genres: genres, artists: artists, albums: albums}
}

// Resolve dispatches a raw tag string to the entity it names: a bare
// two-letter abbreviation is a genre, an abbreviation plus number is an
// artist, and a trailing letter makes it an album. Malformed strings fail
// with INVALID_TAG before any lookup happens.
func (service *Service) Resolve(context context.Context, raw string) (*Result, error) {
	if isGenreAbbr(raw) {
		found, err := service.genres.GetGenre(context, raw)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindGenre, Genre: found}, nil
	}

	decomposed, err := tag.Decompose(raw)
	if err != nil {
		return nil, err
	}

	if decomposed.HasAlbum() {
		found, err := service.albums.GetAlbum(context, decomposed.GenreAbbr, decomposed.ArtistNum, decomposed.AlbumLetter)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindAlbum, Album: found}, nil
	}

	found, err := service.artists.GetArtist(context, decomposed.GenreAbbr, decomposed.ArtistNum)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: KindArtist, Artist: found}, nil
}

func isGenreAbbr(raw string) bool {
	if len(raw) != constants.GenreAbbrLen {
		return false
	}
	for _, r := range strings.ToUpper(raw) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
