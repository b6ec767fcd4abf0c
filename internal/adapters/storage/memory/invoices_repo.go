package memory

import (
	"context"

	"clinic-admin/internal/domain/invoices"
)

type invoiceRepo struct {
	store *Store[invoices.Invoice]
}

func NewInvoiceRepo() invoices.Repository {
	return &invoiceRepo{store: NewStore[invoices.Invoice](invoices.ErrNotFound)}
}

func (r *invoiceRepo) Create(ctx context.Context, inv invoices.Invoice) error {
	return r.store.Insert(inv)
}

func (r *invoiceRepo) Update(ctx context.Context, inv invoices.Invoice) error {
	return r.store.Replace(inv)
}

func (r *invoiceRepo) GetByID(ctx context.Context, id string) (invoices.Invoice, error) {
	return r.store.Get(id)
}

func (r *invoiceRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *invoiceRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	return r.store.All(), nil
}
