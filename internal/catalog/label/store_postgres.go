package label

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

func (repository *PostgresRepository) ListLabels(context context.Context) ([]*Label, error) {
	rows, err := repository.db.Query(context, `
		SELECT id, name FROM label ORDER BY name ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_labels")
	}
	defer rows.Close()

	var labels []*Label
	for rows.Next() {
		l := &Label{}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_label")
		}
		labels = append(labels, l)
	}

	return labels, dberr.Wrap(rows.Err(), "list_labels")
}

func (repository *PostgresRepository) GetLabel(context context.Context, id int) (*Label, error) {
	l := &Label{}
	err := repository.db.QueryRow(context, `
		SELECT id, name FROM label WHERE id = $1
	`, id).Scan(&l.ID, &l.Name)

	if err != nil {
		return nil, dberr.Wrap(err, "get_label")
	}
	return l, nil
}

func (repository *PostgresRepository) CreateLabel(context context.Context, l *Label) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO label (name) VALUES ($1) RETURNING id
	`, l.Name).Scan(&l.ID)

	return dberr.Wrap(err, "create_label")
}

func (repository *PostgresRepository) UpdateLabel(context context.Context, l *Label) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE label SET name = $2 WHERE id = $1
	`, l.ID, l.Name)
	if err != nil {
		return dberr.Wrap(err, "update_label")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteLabel(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM label WHERE id = $1
	`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_label")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListPromoters(context context.Context) ([]*Promoter, error) {
	rows, err := repository.db.Query(context, `
		SELECT id, name FROM promoter ORDER BY name ASC
	`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_promoters")
	}
	defer rows.Close()

	var promoters []*Promoter
	for rows.Next() {
		p := &Promoter{}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_promoter")
		}
		promoters = append(promoters, p)
	}

	return promoters, dberr.Wrap(rows.Err(), "list_promoters")
}

func (repository *PostgresRepository) GetPromoter(context context.Context, id int) (*Promoter, error) {
	p := &Promoter{}
	err := repository.db.QueryRow(context, `
		SELECT id, name FROM promoter WHERE id = $1
	`, id).Scan(&p.ID, &p.Name)

	if err != nil {
		return nil, dberr.Wrap(err, "get_promoter")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePromoter(context context.Context, p *Promoter) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO promoter (name) VALUES ($1) RETURNING id
	`, p.Name).Scan(&p.ID)

	return dberr.Wrap(err, "create_promoter")
}

func (repository *PostgresRepository) UpdatePromoter(context context.Context, p *Promoter) error {
	cmd, err := repository.db.Exec(context, `
		UPDATE promoter SET name = $2 WHERE id = $1
	`, p.ID, p.Name)
	if err != nil {
		return dberr.Wrap(err, "update_promoter")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePromoter(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context, `
		DELETE FROM promoter WHERE id = $1
	`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_promoter")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
