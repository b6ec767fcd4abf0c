package memory

import (
	"context"

	"clinic-admin/internal/domain/clients"
)

type clientRepo struct {
	store *Store[clients.Client]
}

func NewClientRepo() clients.Repository {
	return &clientRepo{store: NewStore[clients.Client](clients.ErrNotFound)}
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	return r.store.Insert(c)
}

func (r *clientRepo) Update(ctx context.Context, c clients.Client) error {
	return r.store.Replace(c)
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	return r.store.Get(id)
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	return r.store.All(), nil
}
