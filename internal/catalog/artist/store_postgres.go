package artist

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

func (repository *PostgresRepository) ListArtists(context context.Context, genreAbbr string) ([]*Artist, error) {
	rows, err := repository.db.Query(context, `
		SELECT genre_abbr, number, name
		FROM artist
		WHERE genre_abbr = $1
		ORDER BY number ASC
	`, genreAbbr)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.GenreAbbr, &a.Number, &a.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "list_artists")
}

func (repository *PostgresRepository) GetArtist(context context.Context, genreAbbr string, number int) (*Artist, error) {
	a := &Artist{}
	err := repository.db.QueryRow(context, `
		SELECT genre_abbr, number, name
		FROM artist
		WHERE genre_abbr = $1 AND number = $2
	`, genreAbbr, number).Scan(&a.GenreAbbr, &a.Number, &a.Name)

	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateArtist(context context.Context, a *Artist) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO artist (genre_abbr, number, name)
		VALUES ($1, $2, $3)
	`, a.GenreAbbr, a.Number, a.Name)

	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) UpdateArtist(context context.Context, a *Artist) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE artist SET name = $3
		WHERE genre_abbr = $1 AND number = $2
	`, a.GenreAbbr, a.Number, a.Name)
	if err != nil {
		return dberr.Wrap(err, "update_artist")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteArtist removes the artist and all albums (with their annotations)
// filed under it, leaves first, in one transaction.
func (repository *PostgresRepository) DeleteArtist(context context.Context, genreAbbr string, number int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_artist_begin")
	}
	defer tx.Rollback(context)

	cascade := []string{
		`DELETE FROM album_problem WHERE genre_abbr = $1 AND artist_num = $2`,
		`DELETE FROM album_review WHERE genre_abbr = $1 AND artist_num = $2`,
		`DELETE FROM album WHERE genre_abbr = $1 AND artist_num = $2`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(context, query, genreAbbr, number); err != nil {
			return dberr.Wrap(err, "delete_artist_cascade")
		}
	}

	cmd, err := tx.Exec(context, `
		DELETE FROM artist WHERE genre_abbr = $1 AND number = $2
	`, genreAbbr, number)
	if err != nil {
		return dberr.Wrap(err, "delete_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "delete_artist_commit")
}
