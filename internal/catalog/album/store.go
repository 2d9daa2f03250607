package album

import "context"

// Repository is the storage surface for albums. Lookups require equality
// on the full composite key; ListAlbumLetters serves the letter allocator
// and satisfies artist.AlbumLetterLister.
//
// CreateAlbum takes an advisory lock on the owning artist's key so two
// concurrent filings cannot allocate the same letter. DeleteAlbum cascades
// to the album's reviews and problem reports in one transaction.
type Repository interface {
	ListAlbums(context context.Context, genreAbbr string, artistNum int) ([]*Album, error)
	ListAlbumsByGenre(context context.Context, genreAbbr string) ([]*Album, error)
	ListNewAlbums(context context.Context, limit, offset int) ([]*Album, error)
	CountNewAlbums(context context.Context) (int, error)
	GetAlbum(context context.Context, genreAbbr string, artistNum int, letter string) (*Album, error)
	ListAlbumLetters(context context.Context, genreAbbr string, artistNum int) ([]string, error)
	CreateAlbum(context context.Context, a *Album) error
	UpdateAlbum(context context.Context, a *Album) error
	DeleteAlbum(context context.Context, genreAbbr string, artistNum int, letter string) error
}

// ReviewRepository stores DJ reviews, keyed by album plus reviewer.
type ReviewRepository interface {
	ListReviews(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Review, error)
	GetReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) (*Review, error)
	CreateReview(context context.Context, r *Review) error
	UpdateReview(context context.Context, r *Review) error
	DeleteReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) error
}

// ProblemRepository stores problem reports, keyed like reviews.
type ProblemRepository interface {
	ListProblems(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Problem, error)
	CreateProblem(context context.Context, p *Problem) error
	DeleteProblem(context context.Context, genreAbbr string, artistNum int, letter, djID string) error
}

// DJDirectory is the slice of the DJ store the album service needs to
// vouch for a reviewer before accepting their annotation. Implemented by
// the dj package's repository; declared here to keep the dependency
// one-way.
type DJDirectory interface {
	DJExists(context context.Context, id string) (bool, error)
}
