package postgres

import (
	"context"
	"database/sql"

	"clinic-admin/internal/domain/invoices"
)

type InvoicesRepo struct {
	db *sql.DB
}

func NewInvoicesRepo(db *sql.DB) *InvoicesRepo {
	return &InvoicesRepo{db: db}
}

func (r *InvoicesRepo) Create(ctx context.Context, inv invoices.Invoice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (id, invoice_number, client_id, client_name, date, due_date, amount, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, inv.ID, inv.InvoiceNumber, inv.ClientID, inv.ClientName, inv.Date, inv.DueDate, inv.Amount, string(inv.Status))
	return err
}

func (r *InvoicesRepo) Update(ctx context.Context, inv invoices.Invoice) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invoices
		SET invoice_number = $2, client_id = $3, client_name = $4,
		    date = $5, due_date = $6, amount = $7, status = $8
		WHERE id = $1
	`, inv.ID, inv.InvoiceNumber, inv.ClientID, inv.ClientName, inv.Date, inv.DueDate, inv.Amount, string(inv.Status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return invoices.ErrNotFound
	}
	return nil
}

func (r *InvoicesRepo) GetByID(ctx context.Context, id string) (invoices.Invoice, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_number, client_id, client_name, date, due_date, amount, status
		FROM invoices WHERE id = $1
	`, id)
	return scanInvoice(row)
}

func (r *InvoicesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return invoices.ErrNotFound
	}
	return nil
}

func (r *InvoicesRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_number, client_id, client_name, date, due_date, amount, status
		FROM invoices ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]invoices.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvoice(row rowScanner) (invoices.Invoice, error) {
	var inv invoices.Invoice
	var status string
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.ClientName,
		&inv.Date, &inv.DueDate, &inv.Amount, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoices.Invoice{}, invoices.ErrNotFound
		}
		return invoices.Invoice{}, err
	}
	inv.Status = invoices.Status(status)
	return inv, nil
}
