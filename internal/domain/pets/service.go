package pets

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
	ErrNotFound     = errors.New("pet not found")
)

// OwnerNameFunc resuelve el nombre del dueño para la proyección de
// búsqueda. Se inyecta desde el router para no acoplar pets a clients.
type OwnerNameFunc func(ctx context.Context, ownerID string) string

type Service struct {
	repo      Repository
	ownerName OwnerNameFunc
	now       func() time.Time
	newID     func() string
}

func NewService(repo Repository, ownerName OwnerNameFunc) *Service {
	if ownerName == nil {
		ownerName = func(context.Context, string) string { return "" }
	}
	return &Service{
		repo:      repo,
		ownerName: ownerName,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

type Input struct {
	Name         string
	Species      string
	Breed        string
	Age          int
	Weight       float64
	OwnerID      string
	MedicalNotes string
	Status       string
	LastVisit    string
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Species) == "" ||
		strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}

	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	if !st.Valid() {
		return Pet{}, ErrInvalidInput
	}

	lastVisit := strings.TrimSpace(in.LastVisit)
	if lastVisit == "" {
		lastVisit = s.now().Format("2006-01-02")
	}

	p := Pet{
		ID:           s.newID(),
		Name:         strings.TrimSpace(in.Name),
		Species:      strings.TrimSpace(in.Species),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          in.Age,
		Weight:       in.Weight,
		OwnerID:      strings.TrimSpace(in.OwnerID),
		MedicalNotes: strings.TrimSpace(in.MedicalNotes),
		Status:       st,
		LastVisit:    lastVisit,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza todos los campos del formulario preservando el ID.
func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Species) == "" ||
		strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}

	st := Status(in.Status)
	if st == "" {
		st = current.Status
	}
	if !st.Valid() {
		return Pet{}, ErrInvalidInput
	}

	lastVisit := strings.TrimSpace(in.LastVisit)
	if lastVisit == "" {
		lastVisit = current.LastVisit
	}

	p := Pet{
		ID:           current.ID,
		Name:         strings.TrimSpace(in.Name),
		Species:      strings.TrimSpace(in.Species),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          in.Age,
		Weight:       in.Weight,
		OwnerID:      strings.TrimSpace(in.OwnerID),
		MedicalNotes: strings.TrimSpace(in.MedicalNotes),
		Status:       st,
		LastVisit:    lastVisit,
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (Pet, error) {
	st := Status(status)
	if !st.Valid() {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	current.Status = st

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// List filtra por especie (minúsculas) y busca sobre
// [name, breed, species, ownerName].
func (s *Service) List(ctx context.Context, q filter.Query) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q,
		Pet.FilterKey,
		func(p Pet) []string {
			return []string{p.Name, p.Breed, p.Species, s.ownerName(ctx, p.OwnerID)}
		},
	), nil
}
