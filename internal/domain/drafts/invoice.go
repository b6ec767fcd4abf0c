package drafts

import (
	"context"

	"clinic-admin/internal/domain/invoices"
)

var invoiceFields = []string{"client_id", "amount", "date", "due_date", "status"}

var invoiceRequired = []string{"client_id", "amount", "date", "due_date"}

type InvoiceDraft struct {
	ctl *Controller

	editingID string
	fields    fields
}

func (c *Controller) Invoice(existing *invoices.Invoice) *InvoiceDraft {
	d := &InvoiceDraft{
		ctl:    c,
		fields: newFields(invoiceFields),
	}
	d.Open(existing)
	return d
}

func (d *InvoiceDraft) Open(existing *invoices.Invoice) {
	d.fields.reset()
	d.editingID = ""

	if existing == nil {
		_ = d.fields.set("status", string(invoices.StatusPending))
		return
	}

	// invoiceNumber no entra al draft: lo preserva el service.
	d.editingID = existing.ID
	_ = d.fields.set("client_id", existing.ClientID)
	_ = d.fields.set("amount", formatAmount(existing.Amount))
	_ = d.fields.set("date", existing.Date)
	_ = d.fields.set("due_date", existing.DueDate)
	_ = d.fields.set("status", string(existing.Status))
}

func (d *InvoiceDraft) SetField(key, value string) error {
	return d.fields.set(key, value)
}

func (d *InvoiceDraft) Field(key string) string { return d.fields.get(key) }

func (d *InvoiceDraft) Commit(ctx context.Context) (invoices.Invoice, error) {
	if missing := d.fields.missing(invoiceRequired); len(missing) > 0 {
		return invoices.Invoice{}, &ValidationError{Missing: missing}
	}

	in := invoices.Input{
		ClientID:   d.fields.get("client_id"),
		ClientName: d.ctl.resolver.OwnerName(ctx, d.fields.get("client_id")),
		Date:       d.fields.get("date"),
		DueDate:    d.fields.get("due_date"),
		Amount:     parseAmount(d.fields.get("amount")),
		Status:     d.fields.get("status"),
	}

	if d.editingID != "" {
		return d.ctl.invoices.Update(ctx, d.editingID, in)
	}
	return d.ctl.invoices.Create(ctx, in)
}

func (d *InvoiceDraft) Discard() {
	d.Open(nil)
}
