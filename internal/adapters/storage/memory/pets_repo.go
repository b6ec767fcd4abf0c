package memory

import (
	"context"

	"clinic-admin/internal/domain/pets"
)

type petRepo struct {
	store *Store[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{store: NewStore[pets.Pet](pets.ErrNotFound)}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.store.Insert(p)
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.store.Replace(p)
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	return r.store.Get(id)
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.store.All(), nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, p := range r.store.All() {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}
