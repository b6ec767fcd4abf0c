package drafts

import (
	"context"
	"strconv"

	"clinic-admin/internal/domain/pets"
)

var petFields = []string{
	"name", "species", "breed", "age", "weight", "owner_id",
	"medical_notes", "status", "last_visit",
}

var petRequired = []string{"name", "species", "owner_id"}

type PetDraft struct {
	svc *pets.Service

	editingID string
	fields    fields
	today     func() string
}

func (c *Controller) Pet(existing *pets.Pet) *PetDraft {
	d := &PetDraft{
		svc:    c.pets,
		fields: newFields(petFields),
		today:  func() string { return c.now().Format("2006-01-02") },
	}
	d.Open(existing)
	return d
}

func (d *PetDraft) Open(existing *pets.Pet) {
	d.fields.reset()
	d.editingID = ""

	if existing == nil {
		_ = d.fields.set("status", string(pets.StatusActive))
		_ = d.fields.set("last_visit", d.today())
		return
	}

	d.editingID = existing.ID
	_ = d.fields.set("name", existing.Name)
	_ = d.fields.set("species", existing.Species)
	_ = d.fields.set("breed", existing.Breed)
	_ = d.fields.set("age", strconv.Itoa(existing.Age))
	_ = d.fields.set("weight", formatAmount(existing.Weight))
	_ = d.fields.set("owner_id", existing.OwnerID)
	_ = d.fields.set("medical_notes", existing.MedicalNotes)
	_ = d.fields.set("status", string(existing.Status))
	_ = d.fields.set("last_visit", existing.LastVisit)
}

func (d *PetDraft) SetField(key, value string) error {
	return d.fields.set(key, value)
}

func (d *PetDraft) Field(key string) string { return d.fields.get(key) }

func (d *PetDraft) Commit(ctx context.Context) (pets.Pet, error) {
	if missing := d.fields.missing(petRequired); len(missing) > 0 {
		return pets.Pet{}, &ValidationError{Missing: missing}
	}

	in := pets.Input{
		Name:         d.fields.get("name"),
		Species:      d.fields.get("species"),
		Breed:        d.fields.get("breed"),
		Age:          parseCount(d.fields.get("age")),
		Weight:       parseAmount(d.fields.get("weight")),
		OwnerID:      d.fields.get("owner_id"),
		MedicalNotes: d.fields.get("medical_notes"),
		Status:       d.fields.get("status"),
		LastVisit:    d.fields.get("last_visit"),
	}

	if d.editingID != "" {
		return d.svc.Update(ctx, d.editingID, in)
	}
	return d.svc.Create(ctx, in)
}

func (d *PetDraft) Discard() {
	d.Open(nil)
}
