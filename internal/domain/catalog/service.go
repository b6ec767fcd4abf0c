package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"clinic-admin/internal/domain/filter"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("service not found")
)

type Manager struct {
	repo  Repository
	newID func() string
}

func NewManager(repo Repository) *Manager {
	return &Manager{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type Input struct {
	Name     string
	Category string
	Price    float64
	Duration int
	Status   string
}

func (m *Manager) validate(in Input) (Category, Status, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", "", ErrInvalidInput
	}
	cat := Category(in.Category)
	if !cat.Valid() {
		return "", "", ErrInvalidInput
	}
	if in.Price < 0 || in.Duration < 0 {
		return "", "", ErrInvalidInput
	}
	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	if !st.Valid() {
		return "", "", ErrInvalidInput
	}
	return cat, st, nil
}

func (m *Manager) Create(ctx context.Context, in Input) (Service, error) {
	cat, st, err := m.validate(in)
	if err != nil {
		return Service{}, err
	}

	svc := Service{
		ID:       m.newID(),
		Name:     strings.TrimSpace(in.Name),
		Category: cat,
		Price:    in.Price,
		Duration: in.Duration,
		Status:   st,
	}

	if err := m.repo.Create(ctx, svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (m *Manager) Update(ctx context.Context, id string, in Input) (Service, error) {
	current, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return Service{}, err
	}

	cat, st, err := m.validate(in)
	if err != nil {
		return Service{}, err
	}

	svc := Service{
		ID:       current.ID,
		Name:     strings.TrimSpace(in.Name),
		Category: cat,
		Price:    in.Price,
		Duration: in.Duration,
		Status:   st,
	}

	if err := m.repo.Update(ctx, svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (m *Manager) UpdateStatus(ctx context.Context, id string, status string) (Service, error) {
	st := Status(status)
	if !st.Valid() {
		return Service{}, ErrInvalidInput
	}

	current, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return Service{}, err
	}
	current.Status = st

	if err := m.repo.Update(ctx, current); err != nil {
		return Service{}, err
	}
	return current, nil
}

func (m *Manager) GetByID(ctx context.Context, id string) (Service, error) {
	return m.repo.GetByID(ctx, id)
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return m.repo.Delete(ctx, id)
}

// List filtra por categoría (no por status, igual que el tab original).
func (m *Manager) List(ctx context.Context, q filter.Query) ([]Service, error) {
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q,
		func(s Service) string { return string(s.Category) },
		Service.SearchText,
	), nil
}
