package dj

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

const djColumns = `id, username, email, role, password_hash`

func (repository *PostgresRepository) ListDJs(context context.Context) ([]*DJ, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+djColumns+` FROM dj ORDER BY username ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_djs")
	}
	defer rows.Close()

	var djs []*DJ
	for rows.Next() {
		d := &DJ{}
		if err := rows.Scan(&d.ID, &d.Username, &d.Email, &d.Role, &d.PasswordHash); err != nil {
			return nil, dberr.Wrap(err, "scan_dj")
		}
		djs = append(djs, d)
	}

	return djs, dberr.Wrap(rows.Err(), "list_djs")
}

func (repository *PostgresRepository) GetDJ(context context.Context, id string) (*DJ, error) {
	return repository.findBy(context, "id", id)
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*DJ, error) {
	return repository.findBy(context, "username", username)
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*DJ, error) {
	return repository.findBy(context, "email", email)
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*DJ, error) {
	d := &DJ{}
	err := repository.db.QueryRow(context, `
		SELECT `+djColumns+` FROM dj WHERE `+column+` = $1
	`, value).Scan(&d.ID, &d.Username, &d.Email, &d.Role, &d.PasswordHash)

	if err != nil {
		return nil, dberr.Wrap(err, "find_dj")
	}
	return d, nil
}

func (repository *PostgresRepository) CreateDJ(context context.Context, d *DJ) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO dj (`+djColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, d.ID, d.Username, d.Email, d.Role, d.PasswordHash)

	return dberr.Wrap(err, "create_dj")
}

func (repository *PostgresRepository) UpdatePassword(context context.Context, id, passwordHash string) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE dj SET password_hash = $2 WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return dberr.Wrap(err, "update_dj_password")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteDJ removes the account only. Reviews and problem reports signed
// by the DJ stay in the catalog with a now-dangling dj_id.
func (repository *PostgresRepository) DeleteDJ(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM dj WHERE id = $1
	`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_dj")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DJExists satisfies album.DJDirectory.
func (repository *PostgresRepository) DJExists(context context.Context, id string) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context, `
		SELECT EXISTS (SELECT 1 FROM dj WHERE id = $1)
	`, id).Scan(&exists)

	if err != nil {
		return false, dberr.Wrap(err, "dj_exists")
	}
	return exists, nil
}
