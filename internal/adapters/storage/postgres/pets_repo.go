package postgres

import (
	"context"
	"database/sql"

	"clinic-admin/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, species, breed, age, weight, owner_id, medical_notes, status, last_visit)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, p.ID, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.OwnerID, p.MedicalNotes, string(p.Status), p.LastVisit)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, age = $5, weight = $6,
		    owner_id = $7, medical_notes = $8, status = $9, last_visit = $10
		WHERE id = $1
	`, p.ID, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.OwnerID, p.MedicalNotes, string(p.Status), p.LastVisit)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, breed, age, weight, owner_id, medical_notes, status, last_visit
		FROM pets WHERE id = $1
	`, id)
	return scanPet(row)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT id, name, species, breed, age, weight, owner_id, medical_notes, status, last_visit
		FROM pets ORDER BY created_at ASC
	`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT id, name, species, breed, age, weight, owner_id, medical_notes, status, last_visit
		FROM pets WHERE owner_id = $1 ORDER BY created_at ASC
	`, ownerID)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var status string
	err := row.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.Weight,
		&p.OwnerID, &p.MedicalNotes, &status, &p.LastVisit)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.Status = pets.Status(status)
	return p, nil
}
