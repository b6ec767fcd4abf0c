package memory

import (
	"context"

	"clinic-admin/internal/domain/catalog"
)

type catalogRepo struct {
	store *Store[catalog.Service]
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{store: NewStore[catalog.Service](catalog.ErrNotFound)}
}

func (r *catalogRepo) Create(ctx context.Context, s catalog.Service) error {
	return r.store.Insert(s)
}

func (r *catalogRepo) Update(ctx context.Context, s catalog.Service) error {
	return r.store.Replace(s)
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	return r.store.Get(id)
}

func (r *catalogRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Service, error) {
	return r.store.All(), nil
}
