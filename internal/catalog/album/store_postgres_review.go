package album

import (
	"context"

	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

const reviewColumns = `genre_abbr, artist_num, letter, dj_id, content, date_entered`

func (repository *PostgresRepository) ListReviews(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Review, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+reviewColumns+`
		FROM album_review
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3
		ORDER BY date_entered DESC
	`, genreAbbr, artistNum, letter)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(&r.GenreAbbr, &r.ArtistNum, &r.Letter, &r.DJID, &r.Content, &r.DateEntered); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, dberr.Wrap(rows.Err(), "list_reviews")
}

func (repository *PostgresRepository) GetReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) (*Review, error) {
	r := &Review{}
	err := repository.db.QueryRow(context, `
		SELECT `+reviewColumns+`
		FROM album_review
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3 AND dj_id = $4
	`, genreAbbr, artistNum, letter, djID).
		Scan(&r.GenreAbbr, &r.ArtistNum, &r.Letter, &r.DJID, &r.Content, &r.DateEntered)

	if err != nil {
		return nil, dberr.Wrap(err, "get_review")
	}
	return r, nil
}

func (repository *PostgresRepository) CreateReview(context context.Context, r *Review) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO album_review (`+reviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.GenreAbbr, r.ArtistNum, r.Letter, r.DJID, r.Content, r.DateEntered)

	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) UpdateReview(context context.Context, r *Review) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE album_review
		SET content = $5, date_entered = $6
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3 AND dj_id = $4
	`, r.GenreAbbr, r.ArtistNum, r.Letter, r.DJID, r.Content, r.DateEntered)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM album_review
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3 AND dj_id = $4
	`, genreAbbr, artistNum, letter, djID)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
