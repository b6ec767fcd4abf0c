package drafts

import (
	"context"

	"clinic-admin/internal/domain/clients"
)

var clientFields = []string{"name", "email", "phone", "status"}

var clientRequired = []string{"name", "email", "phone"}

type ClientDraft struct {
	svc *clients.Service

	editingID string
	fields    fields
}

func (c *Controller) Client(existing *clients.Client) *ClientDraft {
	d := &ClientDraft{
		svc:    c.clients,
		fields: newFields(clientFields),
	}
	d.Open(existing)
	return d
}

func (d *ClientDraft) Open(existing *clients.Client) {
	d.fields.reset()
	d.editingID = ""

	if existing == nil {
		_ = d.fields.set("status", string(clients.StatusActive))
		return
	}

	// joinDate y totalSpent no entran al draft: los preserva el
	// service en el update.
	d.editingID = existing.ID
	_ = d.fields.set("name", existing.Name)
	_ = d.fields.set("email", existing.Email)
	_ = d.fields.set("phone", existing.Phone)
	_ = d.fields.set("status", string(existing.Status))
}

func (d *ClientDraft) SetField(key, value string) error {
	return d.fields.set(key, value)
}

func (d *ClientDraft) Field(key string) string { return d.fields.get(key) }

func (d *ClientDraft) Commit(ctx context.Context) (clients.Client, error) {
	if missing := d.fields.missing(clientRequired); len(missing) > 0 {
		return clients.Client{}, &ValidationError{Missing: missing}
	}

	in := clients.Input{
		Name:   d.fields.get("name"),
		Email:  d.fields.get("email"),
		Phone:  d.fields.get("phone"),
		Status: d.fields.get("status"),
	}

	if d.editingID != "" {
		return d.svc.Update(ctx, d.editingID, in)
	}
	return d.svc.Create(ctx, in)
}

func (d *ClientDraft) Discard() {
	d.Open(nil)
}
