package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"clinic-admin/internal/domain/filter"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("invoice not found")
)

type Service struct {
	repo      Repository
	newID     func() string
	newNumber func() string
}

// NewService arma el servicio con numeración secuencial INV-10001,
// INV-10002... (el dashboard usaba un random; acá la secuencia es
// determinista).
func NewService(repo Repository) *Service {
	var mu sync.Mutex
	next := 10001

	return &Service{
		repo:  repo,
		newID: uuid.NewString,
		newNumber: func() string {
			mu.Lock()
			defer mu.Unlock()
			n := next
			next++
			return fmt.Sprintf("INV-%d", n)
		},
	}
}

type Input struct {
	ClientID   string
	ClientName string
	Date       string
	DueDate    string
	Amount     float64
	Status     string
}

func (s *Service) validate(in Input) (Status, error) {
	if strings.TrimSpace(in.ClientID) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.DueDate) == "" {
		return "", ErrInvalidInput
	}
	st := Status(in.Status)
	if st == "" {
		st = StatusPending
	}
	if !st.Valid() {
		return "", ErrInvalidInput
	}
	return st, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Invoice, error) {
	st, err := s.validate(in)
	if err != nil {
		return Invoice{}, err
	}

	inv := Invoice{
		ID:            s.newID(),
		InvoiceNumber: s.newNumber(),
		ClientID:      in.ClientID,
		ClientName:    in.ClientName,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Amount:        in.Amount,
		Status:        st,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// Update reemplaza los campos del formulario; ID e InvoiceNumber se
// preservan del registro existente.
func (s *Service) Update(ctx context.Context, id string, in Input) (Invoice, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Invoice{}, err
	}

	st, err := s.validate(in)
	if err != nil {
		return Invoice{}, err
	}

	inv := Invoice{
		ID:            current.ID,
		InvoiceNumber: current.InvoiceNumber,
		ClientID:      in.ClientID,
		ClientName:    in.ClientName,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Amount:        in.Amount,
		Status:        st,
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (Invoice, error) {
	st := Status(status)
	if !st.Valid() {
		return Invoice{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	current.Status = st

	if err := s.repo.Update(ctx, current); err != nil {
		return Invoice{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, q filter.Query) ([]Invoice, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q,
		func(i Invoice) string { return string(i.Status) },
		Invoice.SearchText,
	), nil
}
