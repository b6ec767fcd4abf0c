package drafts

import (
	"context"
	"strconv"

	"clinic-admin/internal/domain/catalog"
)

var serviceFields = []string{"name", "category", "price", "duration", "status"}

var serviceRequired = []string{"name", "category", "price", "duration"}

type ServiceDraft struct {
	mgr *catalog.Manager

	editingID string
	fields    fields
}

func (c *Controller) Service(existing *catalog.Service) *ServiceDraft {
	d := &ServiceDraft{
		mgr:    c.catalog,
		fields: newFields(serviceFields),
	}
	d.Open(existing)
	return d
}

func (d *ServiceDraft) Open(existing *catalog.Service) {
	d.fields.reset()
	d.editingID = ""

	if existing == nil {
		_ = d.fields.set("status", string(catalog.StatusActive))
		return
	}

	d.editingID = existing.ID
	_ = d.fields.set("name", existing.Name)
	_ = d.fields.set("category", string(existing.Category))
	_ = d.fields.set("price", formatAmount(existing.Price))
	_ = d.fields.set("duration", strconv.Itoa(existing.Duration))
	_ = d.fields.set("status", string(existing.Status))
}

func (d *ServiceDraft) SetField(key, value string) error {
	return d.fields.set(key, value)
}

func (d *ServiceDraft) Field(key string) string { return d.fields.get(key) }

func (d *ServiceDraft) Commit(ctx context.Context) (catalog.Service, error) {
	if missing := d.fields.missing(serviceRequired); len(missing) > 0 {
		return catalog.Service{}, &ValidationError{Missing: missing}
	}

	in := catalog.Input{
		Name:     d.fields.get("name"),
		Category: d.fields.get("category"),
		Price:    parseAmount(d.fields.get("price")),
		Duration: parseCount(d.fields.get("duration")),
		Status:   d.fields.get("status"),
	}

	if d.editingID != "" {
		return d.mgr.Update(ctx, d.editingID, in)
	}
	return d.mgr.Create(ctx, in)
}

func (d *ServiceDraft) Discard() {
	d.Open(nil)
}
