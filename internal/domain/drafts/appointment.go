package drafts

import (
	"context"
	"strconv"

	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/resolve"
)

var appointmentFields = []string{
	"client_id", "pet_id", "service", "date", "time", "status", "amount",
}

var appointmentRequired = []string{"client_id", "pet_id", "date", "time"}

// AppointmentDraft es el formulario de citas. Además de los campos de
// texto mantiene la selección de servicios; ToggleService recalcula
// serviceIDs, el string de nombres y el monto, que sigue siendo
// editable a mano después (override permitido).
type AppointmentDraft struct {
	svc      *appointments.Service
	resolver *resolve.Resolver

	editingID  string
	fields     fields
	serviceIDs []string
}

// Appointment abre un draft de cita: vacío para alta, o sembrado con
// el registro existente para edición.
func (c *Controller) Appointment(existing *appointments.Appointment) *AppointmentDraft {
	d := &AppointmentDraft{
		svc:      c.appointments,
		resolver: c.resolver,
		fields:   newFields(appointmentFields),
	}
	d.Open(existing)
	return d
}

func (d *AppointmentDraft) Open(existing *appointments.Appointment) {
	d.fields.reset()
	d.serviceIDs = nil
	d.editingID = ""

	if existing == nil {
		_ = d.fields.set("status", string(appointments.StatusScheduled))
		return
	}

	d.editingID = existing.ID
	d.serviceIDs = append([]string(nil), existing.ServiceIDs...)
	_ = d.fields.set("client_id", existing.ClientID)
	_ = d.fields.set("pet_id", existing.PetID)
	_ = d.fields.set("service", existing.Service)
	_ = d.fields.set("date", existing.Date)
	_ = d.fields.set("time", existing.Time)
	_ = d.fields.set("status", string(existing.Status))
	_ = d.fields.set("amount", formatAmount(existing.Amount))
}

func (d *AppointmentDraft) SetField(key, value string) error {
	return d.fields.set(key, value)
}

func (d *AppointmentDraft) Field(key string) string { return d.fields.get(key) }

func (d *AppointmentDraft) ServiceIDs() []string {
	return append([]string(nil), d.serviceIDs...)
}

// ToggleService agrega o quita un servicio de la selección y
// recalcula service (nombres) y amount vía resolver.
func (d *AppointmentDraft) ToggleService(ctx context.Context, serviceID string) {
	found := false
	next := make([]string, 0, len(d.serviceIDs)+1)
	for _, id := range d.serviceIDs {
		if id == serviceID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, serviceID)
	}
	d.serviceIDs = next

	_ = d.fields.set("service", d.resolver.ServiceNames(ctx, d.serviceIDs))
	_ = d.fields.set("amount", strconv.FormatFloat(d.resolver.TotalAmount(ctx, d.serviceIDs), 'f', -1, 64))
}

// SetServices reemplaza la selección completa (alta vía API, donde el
// cliente manda la lista final en lugar de toggles sueltos).
func (d *AppointmentDraft) SetServices(ctx context.Context, serviceIDs []string) {
	d.serviceIDs = append([]string(nil), serviceIDs...)
	_ = d.fields.set("service", d.resolver.ServiceNames(ctx, d.serviceIDs))
	_ = d.fields.set("amount", strconv.FormatFloat(d.resolver.TotalAmount(ctx, d.serviceIDs), 'f', -1, 64))
}

// Commit valida requeridos, desnormaliza clientName/petName y crea o
// actualiza según haya editing target. El chequeo de slot es advisory
// y NO se hace acá: el conflicto se muestra, no bloquea.
func (d *AppointmentDraft) Commit(ctx context.Context) (appointments.Appointment, error) {
	if missing := d.fields.missing(appointmentRequired); len(missing) > 0 {
		return appointments.Appointment{}, &ValidationError{Missing: missing}
	}

	in := appointments.Input{
		ClientID:   d.fields.get("client_id"),
		ClientName: d.resolver.OwnerName(ctx, d.fields.get("client_id")),
		PetID:      d.fields.get("pet_id"),
		PetName:    d.resolver.PetName(ctx, d.fields.get("pet_id")),
		ServiceIDs: d.serviceIDs,
		Service:    d.fields.get("service"),
		Date:       d.fields.get("date"),
		Time:       d.fields.get("time"),
		Amount:     parseAmount(d.fields.get("amount")),
		Status:     d.fields.get("status"),
	}

	if d.editingID != "" {
		return d.svc.Update(ctx, d.editingID, in)
	}
	return d.svc.Create(ctx, in)
}

func (d *AppointmentDraft) Discard() {
	d.Open(nil)
}
