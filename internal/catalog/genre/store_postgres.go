package genre

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	rows, err := repository.db.Query(context, `
		SELECT abbreviation, name
		FROM genre
		ORDER BY abbreviation ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.Abbreviation, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), "list_genres")
}

func (repository *PostgresRepository) GetGenre(context context.Context, abbreviation string) (*Genre, error) {
	g := &Genre{}
	err := repository.db.QueryRow(context, `
		SELECT abbreviation, name
		FROM genre
		WHERE abbreviation = $1
	`, abbreviation).Scan(&g.Abbreviation, &g.Name)

	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}

func (repository *PostgresRepository) CreateGenre(context context.Context, g *Genre) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO genre (abbreviation, name)
		VALUES ($1, $2)
	`, g.Abbreviation, g.Name)

	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, g *Genre) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE genre SET name = $2 WHERE abbreviation = $1
	`, g.Abbreviation, g.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteGenre removes the genre and everything filed under it in one
// transaction. Deletion order is leaves first so a mid-transaction failure
// never strands annotations without their album.
func (repository *PostgresRepository) DeleteGenre(context context.Context, abbreviation string) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_genre_begin")
	}
	defer tx.Rollback(context)

	cascade := []string{
		`DELETE FROM album_problem WHERE genre_abbr = $1`,
		`DELETE FROM album_review WHERE genre_abbr = $1`,
		`DELETE FROM album WHERE genre_abbr = $1`,
		`DELETE FROM artist WHERE genre_abbr = $1`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(context, query, abbreviation); err != nil {
			return dberr.Wrap(err, "delete_genre_cascade")
		}
	}

	cmd, err := tx.Exec(context, `DELETE FROM genre WHERE abbreviation = $1`, abbreviation)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "delete_genre_commit")
}
