package album

import (
	"context"

	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

const problemColumns = `genre_abbr, artist_num, letter, dj_id, content, date_entered`

func (repository *PostgresRepository) ListProblems(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Problem, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+problemColumns+`
		FROM album_problem
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3
		ORDER BY date_entered DESC
	`, genreAbbr, artistNum, letter)
	if err != nil {
		return nil, dberr.Wrap(err, "list_problems")
	}
	defer rows.Close()

	var problems []*Problem
	for rows.Next() {
		p := &Problem{}
		if err := rows.Scan(&p.GenreAbbr, &p.ArtistNum, &p.Letter, &p.DJID, &p.Content, &p.DateEntered); err != nil {
			return nil, dberr.Wrap(err, "scan_problem")
		}
		problems = append(problems, p)
	}

	return problems, dberr.Wrap(rows.Err(), "list_problems")
}

func (repository *PostgresRepository) CreateProblem(context context.Context, p *Problem) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO album_problem (`+problemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.GenreAbbr, p.ArtistNum, p.Letter, p.DJID, p.Content, p.DateEntered)

	return dberr.Wrap(err, "create_problem")
}

func (repository *PostgresRepository) DeleteProblem(context context.Context, genreAbbr string, artistNum int, letter, djID string) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM album_problem
		WHERE genre_abbr = $1 AND artist_num = $2 AND letter = $3 AND dj_id = $4
	`, genreAbbr, artistNum, letter, djID)
	if err != nil {
		return dberr.Wrap(err, "delete_problem")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
