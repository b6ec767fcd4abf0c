package postgres

import (
	"context"
	"database/sql"

	"clinic-admin/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone, total_spent, join_date, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, c.ID, c.Name, c.Email, c.Phone, c.TotalSpent, c.JoinDate, string(c.Status))
	return err
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, total_spent = $5, join_date = $6, status = $7
		WHERE id = $1
	`, c.ID, c.Name, c.Email, c.Phone, c.TotalSpent, c.JoinDate, string(c.Status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, total_spent, join_date, status
		FROM clients WHERE id = $1
	`, id)
	return scanClient(row)
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, total_spent, join_date, status
		FROM clients ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (clients.Client, error) {
	var c clients.Client
	var status string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalSpent, &c.JoinDate, &status); err != nil {
		if err == sql.ErrNoRows {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}
	c.Status = clients.Status(status)
	return c, nil
}
