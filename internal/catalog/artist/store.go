package artist

import "context"

// Repository is the storage surface for artists.
//
// Composite-key lookups require simultaneous equality on genre_abbr AND
// number; an artist is never resolved on a partial key match. DeleteArtist
// cascades to the artist's albums, reviews, and problem reports.
type Repository interface {
	ListArtists(context context.Context, genreAbbr string) ([]*Artist, error)
	GetArtist(context context.Context, genreAbbr string, number int) (*Artist, error)
	CreateArtist(context context.Context, a *Artist) error
	UpdateArtist(context context.Context, a *Artist) error
	DeleteArtist(context context.Context, genreAbbr string, number int) error
}

// AlbumLetterLister is the slice of the album store the artist service
// needs to derive the next free album letter. Implemented by the album
// package's repository; declared here to keep the dependency one-way.
type AlbumLetterLister interface {
	ListAlbumLetters(context context.Context, genreAbbr string, artistNum int) ([]string, error)
}
