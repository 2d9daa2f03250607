package album

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const albumColumns = `genre_abbr, artist_num, letter, name, date_added, missing, format, label_id, promoter_id`

func scanAlbum(row pgx.Row) (*Album, error) {
	a := &Album{}
	err := row.Scan(
		&a.GenreAbbr, &a.ArtistNum, &a.Letter,
		&a.Name, &a.DateAdded, &a.Missing, &a.Format,
		&a.LabelID, &a.PromoterID,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectAlbums(rows pgx.Rows) ([]*Album, error) {
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

func (repository *PostgresRepository) ListAlbums(context context.Context, genreAbbr string, artistNum int) ([]*Album, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+albumColumns+`
		FROM album
		WHERE genre_abbr = $1 AND artist_num = $2
		ORDER BY letter ASC
	`, genreAbbr, artistNum)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}

	albums, err := collectAlbums(rows)
	return albums, dberr.Wrap(err, "list_albums")
}

func (repository *PostgresRepository) ListAlbumsByGenre(context context.Context, genreAbbr string) ([]*Album, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+albumColumns+`
		FROM album
		WHERE genre_abbr = $1
		ORDER BY artist_num ASC, letter ASC
	`, genreAbbr)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums_by_genre")
	}

	albums, err := collectAlbums(rows)
	return albums, dberr.Wrap(err, "list_albums_by_genre")
}

// ListNewAlbums returns one page of the new bin: everything added inside
// the window, newest first. The cutoff is evaluated in SQL so the bin and
// the is_new flag agree.
func (repository *PostgresRepository) ListNewAlbums(context context.Context, limit, offset int) ([]*Album, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+albumColumns+`
		FROM album
		WHERE date_added > now() - interval '180 days'
		ORDER BY date_added DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_new_albums")
	}

	albums, err := collectAlbums(rows)
	return albums, dberr.Wrap(err, "list_new_albums")
}

func (repository *PostgresRepository) CountNewAlbums(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `
		SELECT count(*)
		FROM album
		WHERE date_added > now() - interval '180 days'
	`).Scan(&total)
	return total, dberr.Wrap(err, "count_new_albums")
}

func (repository *PostgresRepository) GetAlbum(context context.Context, genreAbbr string, artistNum int, letter string) (*Album, error) {
	a, err := scanAlbum(repository.db.QueryRow(context, `
		SELECT `+albumColumns+`
		FROM album
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3
	`, genreAbbr, artistNum, letter))

	if err != nil {
		return nil, dberr.Wrap(err, "get_album")
	}
	return a, nil
}

func (repository *PostgresRepository) ListAlbumLetters(context context.Context, genreAbbr string, artistNum int) ([]string, error) {
	rows, err := repository.db.Query(context, `
		SELECT letter
		FROM album
		WHERE genre_abbr = $1 AND artist_num = $2
		ORDER BY letter ASC
	`, genreAbbr, artistNum)
	if err != nil {
		return nil, dberr.Wrap(err, "list_album_letters")
	}
	defer rows.Close()

	var letters []string
	for rows.Next() {
		var letter string
		if err := rows.Scan(&letter); err != nil {
			return nil, dberr.Wrap(err, "scan_album_letter")
		}
		letters = append(letters, letter)
	}

	return letters, dberr.Wrap(rows.Err(), "list_album_letters")
}

// CreateAlbum inserts the album, allocating a letter when none is set.
// The allocation and insert run in one transaction under an advisory lock
// keyed by the artist's tag, so concurrent filings under the same artist
// serialize instead of racing to the same letter.
func (repository *PostgresRepository) CreateAlbum(context context.Context, a *Album) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_album_begin")
	}
	defer tx.Rollback(context)

	artistTag := tag.Compose(a.GenreAbbr, a.ArtistNum, "")
	if _, err := tx.Exec(context, `SELECT pg_advisory_xact_lock(hashtext($1))`, artistTag); err != nil {
		return dberr.Wrap(err, "create_album_lock")
	}

	if a.Letter == "" {
		rows, err := tx.Query(context, `
			SELECT letter FROM album WHERE genre_abbr = $1 AND artist_num = $2
		`, a.GenreAbbr, a.ArtistNum)
		if err != nil {
			return dberr.Wrap(err, "create_album_letters")
		}

		var taken []string
		for rows.Next() {
			var letter string
			if err := rows.Scan(&letter); err != nil {
				rows.Close()
				return dberr.Wrap(err, "scan_album_letter")
			}
			taken = append(taken, letter)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return dberr.Wrap(err, "create_album_letters")
		}

		if a.Letter, err = artist.NextFreeLetter(artistTag, taken); err != nil {
			return err
		}
	}

	_, err = tx.Exec(context, `
		INSERT INTO album (`+albumColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.GenreAbbr, a.ArtistNum, a.Letter,
		a.Name, a.DateAdded, a.Missing, a.Format,
		a.LabelID, a.PromoterID)
	if err != nil {
		return dberr.Wrap(err, "create_album")
	}

	return dberr.Wrap(tx.Commit(context), "create_album_commit")
}

func (repository *PostgresRepository) UpdateAlbum(context context.Context, a *Album) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE album
		SET name = $4, date_added = $5, missing = $6, format = $7, label_id = $8, promoter_id = $9
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3
	`, a.GenreAbbr, a.ArtistNum, a.Letter,
		a.Name, a.DateAdded, a.Missing, a.Format,
		a.LabelID, a.PromoterID)
	if err != nil {
		return dberr.Wrap(err, "update_album")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteAlbum removes the album and its annotations, leaves first, in one
// transaction.
func (repository *PostgresRepository) DeleteAlbum(context context.Context, genreAbbr string, artistNum int, letter string) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_album_begin")
	}
	defer tx.Rollback(context)

	cascade := []string{
		`DELETE FROM album_problem WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3`,
		`DELETE FROM album_review WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(context, query, genreAbbr, artistNum, letter); err != nil {
			return dberr.Wrap(err, "delete_album_cascade")
		}
	}

	cmd, err := tx.Exec(context, `
		DELETE FROM album WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3
	`, genreAbbr, artistNum, letter)
	if err != nil {
		return dberr.Wrap(err, "delete_album")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "delete_album_commit")
}
