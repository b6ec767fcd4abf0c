package postgres

import (
	"context"
	"database/sql"

	"clinic-admin/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Create(ctx context.Context, s catalog.Service) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO services (id, name, category, price, duration, status)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, s.ID, s.Name, string(s.Category), s.Price, s.Duration, string(s.Status))
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, s catalog.Service) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET name = $2, category = $3, price = $4, duration = $5, status = $6
		WHERE id = $1
	`, s.ID, s.Name, string(s.Category), s.Price, s.Duration, string(s.Status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, price, duration, status
		FROM services WHERE id = $1
	`, id)
	return scanService(row)
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]catalog.Service, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, price, duration, status
		FROM services ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanService(row rowScanner) (catalog.Service, error) {
	var s catalog.Service
	var category, status string
	err := row.Scan(&s.ID, &s.Name, &category, &s.Price, &s.Duration, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return catalog.Service{}, catalog.ErrNotFound
		}
		return catalog.Service{}, err
	}
	s.Category = catalog.Category(category)
	s.Status = catalog.Status(status)
	return s, nil
}
