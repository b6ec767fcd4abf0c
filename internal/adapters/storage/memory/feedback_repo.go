package memory

import (
	"context"

	"clinic-admin/internal/domain/feedback"
)

type feedbackRepo struct {
	store *Store[feedback.Entry]
}

func NewFeedbackRepo() feedback.Repository {
	return &feedbackRepo{store: NewStore[feedback.Entry](feedback.ErrNotFound)}
}

func (r *feedbackRepo) Create(ctx context.Context, e feedback.Entry) error {
	return r.store.Insert(e)
}

func (r *feedbackRepo) GetByID(ctx context.Context, id string) (feedback.Entry, error) {
	return r.store.Get(id)
}

func (r *feedbackRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}

func (r *feedbackRepo) List(ctx context.Context) ([]feedback.Entry, error) {
	return r.store.All(), nil
}
