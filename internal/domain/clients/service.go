package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-admin/internal/domain/filter"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type Input struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

func (s *Service) Create(ctx context.Context, in Input) (Client, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return Client{}, ErrInvalidInput
	}

	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	if !st.Valid() {
		return Client{}, ErrInvalidInput
	}

	c := Client{
		ID:         s.newID(),
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		TotalSpent: 0,
		JoinDate:   s.now().Format("2006-01-02"),
		Status:     st,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Update reemplaza los campos editables del formulario.
// ID, JoinDate y TotalSpent se preservan del registro existente.
func (s *Service) Update(ctx context.Context, id string, in Input) (Client, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return Client{}, ErrInvalidInput
	}

	st := Status(in.Status)
	if st == "" {
		st = current.Status
	}
	if !st.Valid() {
		return Client{}, ErrInvalidInput
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Email = strings.TrimSpace(in.Email)
	current.Phone = strings.TrimSpace(in.Phone)
	current.Status = st

	if err := s.repo.Update(ctx, current); err != nil {
		return Client{}, err
	}
	return current, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (Client, error) {
	st := Status(status)
	if !st.Valid() {
		return Client{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}
	current.Status = st

	if err := s.repo.Update(ctx, current); err != nil {
		return Client{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	// Sin cascada: mascotas, citas y facturas del cliente quedan con
	// referencias colgantes (comportamiento heredado del dashboard).
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, q filter.Query) ([]Client, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q,
		func(c Client) string { return string(c.Status) },
		Client.SearchText,
	), nil
}
