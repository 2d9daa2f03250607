package program

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

func (repository *PostgresRepository) ListFormats(context context.Context) ([]*Format, error) {
	rows, err := repository.db.Query(context, `
		SELECT type, description FROM program_format ORDER BY type ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_program_formats")
	}
	defer rows.Close()

	var formats []*Format
	for rows.Next() {
		f := &Format{}
		if err := rows.Scan(&f.Type, &f.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_program_format")
		}
		formats = append(formats, f)
	}

	return formats, dberr.Wrap(rows.Err(), "list_program_formats")
}

func (repository *PostgresRepository) GetFormat(context context.Context, formatType string) (*Format, error) {
	f := &Format{}
	err := repository.db.QueryRow(context, `
		SELECT type, description FROM program_format WHERE type = $1
	`, formatType).Scan(&f.Type, &f.Description)

	if err != nil {
		return nil, dberr.Wrap(err, "get_program_format")
	}
	return f, nil
}

func (repository *PostgresRepository) CreateFormat(context context.Context, f *Format) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO program_format (type, description) VALUES ($1, $2)
	`, f.Type, f.Description)

	return dberr.Wrap(err, "create_program_format")
}

func (repository *PostgresRepository) UpdateFormat(context context.Context, f *Format) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE program_format SET description = $2 WHERE type = $1
	`, f.Type, f.Description)
	if err != nil {
		return dberr.Wrap(err, "update_program_format")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteFormat removes the format and everything scheduled under it,
// leaves first, in one transaction.
func (repository *PostgresRepository) DeleteFormat(context context.Context, formatType string) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_program_format_begin")
	}
	defer tx.Rollback(context)

	cascade := []string{
		`DELETE FROM program_log_entry WHERE format_type = $1`,
		`DELETE FROM program WHERE format_type = $1`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(context, query, formatType); err != nil {
			return dberr.Wrap(err, "delete_program_format_cascade")
		}
	}

	cmd, err := tx.Exec(context, `DELETE FROM program_format WHERE type = $1`, formatType)
	if err != nil {
		return dberr.Wrap(err, "delete_program_format")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "delete_program_format_commit")
}

func (repository *PostgresRepository) ListPrograms(context context.Context, formatType string) ([]*Program, error) {
	rows, err := repository.db.Query(context, `
		SELECT format_type, name FROM program WHERE format_type = $1 ORDER BY name ASC
	`, formatType)
	if err != nil {
		return nil, dberr.Wrap(err, "list_programs")
	}
	defer rows.Close()

	var programs []*Program
	for rows.Next() {
		p := &Program{}
		if err := rows.Scan(&p.FormatType, &p.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_program")
		}
		programs = append(programs, p)
	}

	return programs, dberr.Wrap(rows.Err(), "list_programs")
}

func (repository *PostgresRepository) CreateProgram(context context.Context, p *Program) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO program (format_type, name) VALUES ($1, $2)
	`, p.FormatType, p.Name)

	return dberr.Wrap(err, "create_program")
}

func (repository *PostgresRepository) DeleteProgram(context context.Context, formatType, name string) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM program WHERE format_type = $1 AND name = $2
	`, formatType, name)
	if err != nil {
		return dberr.Wrap(err, "delete_program")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListSlots(context context.Context) ([]*Slot, error) {
	rows, err := repository.db.Query(context, `
		SELECT id, day, start FROM program_slot ORDER BY day ASC, start ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_program_slots")
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		s := &Slot{}
		if err := rows.Scan(&s.ID, &s.Day, &s.Start); err != nil {
			return nil, dberr.Wrap(err, "scan_program_slot")
		}
		slots = append(slots, s)
	}

	return slots, dberr.Wrap(rows.Err(), "list_program_slots")
}

func (repository *PostgresRepository) CreateSlot(context context.Context, s *Slot) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO program_slot (day, start) VALUES ($1, $2) RETURNING id
	`, s.Day, s.Start).Scan(&s.ID)

	return dberr.Wrap(err, "create_program_slot")
}

func (repository *PostgresRepository) DeleteSlot(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM program_slot WHERE id = $1
	`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_program_slot")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListLogEntries(context context.Context, formatType string, since time.Time) ([]*LogEntry, error) {
	rows, err := repository.db.Query(context, `
		SELECT format_type, slot_id, timestamp, program_name, dj_id
		FROM program_log_entry
		WHERE format_type = $1 AND timestamp >= $2
		ORDER BY timestamp DESC
	`, formatType, since)
	if err != nil {
		return nil, dberr.Wrap(err, "list_program_log_entries")
	}
	defer rows.Close()

	var entries []*LogEntry
	for rows.Next() {
		e := &LogEntry{}
		if err := rows.Scan(&e.FormatType, &e.SlotID, &e.Timestamp, &e.ProgramName, &e.DJID); err != nil {
			return nil, dberr.Wrap(err, "scan_program_log_entry")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_program_log_entries")
}

func (repository *PostgresRepository) CreateLogEntry(context context.Context, e *LogEntry) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO program_log_entry (format_type, slot_id, timestamp, program_name, dj_id)
		VALUES ($1, $2, $3, $4, $5)
	`, e.FormatType, e.SlotID, e.Timestamp, e.ProgramName, e.DJID)

	return dberr.Wrap(err, "create_program_log_entry")
}

func (repository *PostgresRepository) ListQuarters(context context.Context) ([]*Quarter, error) {
	rows, err := repository.db.Query(context, `
		SELECT id, begin_date, end_date FROM quarter ORDER BY begin_date DESC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_quarters")
	}
	defer rows.Close()

	var quarters []*Quarter
	for rows.Next() {
		q := &Quarter{}
		if err := rows.Scan(&q.ID, &q.Begin, &q.End); err != nil {
			return nil, dberr.Wrap(err, "scan_quarter")
		}
		quarters = append(quarters, q)
	}

	return quarters, dberr.Wrap(rows.Err(), "list_quarters")
}

func (repository *PostgresRepository) CreateQuarter(context context.Context, q *Quarter) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO quarter (begin_date, end_date) VALUES ($1, $2) RETURNING id
	`, q.Begin, q.End).Scan(&q.ID)

	return dberr.Wrap(err, "create_quarter")
}

func (repository *PostgresRepository) DeleteQuarter(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM quarter WHERE id = $1
	`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_quarter")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
