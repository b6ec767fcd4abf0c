package memory

import (
	"context"

	"clinic-admin/internal/domain/appointments"
)

type appointmentRepo struct {
	store *Store[appointments.Appointment]
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{store: NewStore[appointments.Appointment](appointments.ErrNotFound)}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return r.store.Insert(a)
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	return r.store.Replace(a)
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	return r.store.Get(id)
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.store.All(), nil
}
