package genre

import "context"

// Repository is the storage surface for genres.
//
// DeleteGenre cascades: the store removes the genre's artists, albums,
// reviews, and problem reports in the same transaction. The schema holds
// no foreign-key constraints, so the cascade is the store's job.
type Repository interface {
	ListGenres(context context.Context) ([]*Genre, error)
	GetGenre(context context.Context, abbreviation string) (*Genre, error)
	CreateGenre(context context.Context, g *Genre) error
	UpdateGenre(context context.Context, g *Genre) error
	DeleteGenre(context context.Context, abbreviation string) error
}
