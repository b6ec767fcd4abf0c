package postgres

import (
	"context"
	"database/sql"
	"strings"

	"clinic-admin/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, client_id, client_name, pet_id, pet_name, service_ids, service, date, time, amount, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, a.ID, a.ClientID, a.ClientName, a.PetID, a.PetName,
		joinIDs(a.ServiceIDs), a.Service, a.Date, a.Time, a.Amount, string(a.Status))
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET client_id = $2, client_name = $3, pet_id = $4, pet_name = $5,
		    service_ids = $6, service = $7, date = $8, time = $9, amount = $10, status = $11
		WHERE id = $1
	`, a.ID, a.ClientID, a.ClientName, a.PetID, a.PetName,
		joinIDs(a.ServiceIDs), a.Service, a.Date, a.Time, a.Amount, string(a.Status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, client_id, client_name, pet_id, pet_name, service_ids, service, date, time, amount, status
		FROM appointments WHERE id = $1
	`, id)
	return scanAppointment(row)
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, client_name, pet_id, pet_name, service_ids, service, date, time, amount, status
		FROM appointments ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var serviceIDs, status string
	err := row.Scan(&a.ID, &a.ClientID, &a.ClientName, &a.PetID, &a.PetName,
		&serviceIDs, &a.Service, &a.Date, &a.Time, &a.Amount, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	a.ServiceIDs = splitIDs(serviceIDs)
	a.Status = appointments.Status(status)
	return a, nil
}

// joinIDs/splitIDs guardan la lista de servicios en una sola columna
// TEXT separada por comas. Los ids del catálogo nunca llevan coma.
func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
