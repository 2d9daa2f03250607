package softwarelog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateEntry(context context.Context, e *Entry) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO software_log (timestamp, tag, level, filename, line_num, message)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.Timestamp, e.Tag, e.Level, e.Filename, e.LineNum, e.Message)

	return dberr.Wrap(err, "create_software_log_entry")
}

func (repository *PostgresRepository) ListEntries(context context.Context, tag string, since time.Time, limit int) ([]*Entry, error) {
	rows, err := repository.db.Query(context, `
		SELECT timestamp, tag, level, filename, line_num, message
		FROM software_log
		WHERE ($1 = '' OR tag = $1) AND timestamp >= $2
		ORDER BY timestamp DESC
		LIMIT $3
	`, tag, since, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_software_log_entries")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.Timestamp, &e.Tag, &e.Level, &e.Filename, &e.LineNum, &e.Message); err != nil {
			return nil, dberr.Wrap(err, "scan_software_log_entry")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_software_log_entries")
}
