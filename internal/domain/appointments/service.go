package appointments

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"clinic-admin/internal/domain/filter"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Input trae los campos ya desnormalizados: el draft resuelve
// ClientName/PetName/Service contra los stores antes de llegar acá.
type Input struct {
	ClientID   string
	ClientName string
	PetID      string
	PetName    string
	ServiceIDs []string
	Service    string
	Date       string
	Time       string
	Amount     float64
	Status     string
}

func (s *Service) validate(in Input) (Status, error) {
	if strings.TrimSpace(in.ClientID) == "" ||
		strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return "", ErrInvalidInput
	}
	st := Status(in.Status)
	if st == "" {
		st = StatusScheduled
	}
	if !st.Valid() {
		return "", ErrInvalidInput
	}
	return st, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	st, err := s.validate(in)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:         s.newID(),
		ClientID:   in.ClientID,
		ClientName: in.ClientName,
		PetID:      in.PetID,
		PetName:    in.PetName,
		ServiceIDs: append([]string(nil), in.ServiceIDs...),
		Service:    in.Service,
		Date:       in.Date,
		Time:       in.Time,
		Amount:     in.Amount,
		Status:     st,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Appointment, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	st, err := s.validate(in)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:         current.ID,
		ClientID:   in.ClientID,
		ClientName: in.ClientName,
		PetID:      in.PetID,
		PetName:    in.PetName,
		ServiceIDs: append([]string(nil), in.ServiceIDs...),
		Service:    in.Service,
		Date:       in.Date,
		Time:       in.Time,
		Amount:     in.Amount,
		Status:     st,
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (Appointment, error) {
	st := Status(status)
	if !st.Valid() {
		return Appointment{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	current.Status = st

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, q filter.Query) ([]Appointment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q,
		func(a Appointment) string { return string(a.Status) },
		Appointment.SearchText,
	), nil
}

// IsSlotTaken evalúa disponibilidad sobre el estado actual del store.
func (s *Service) IsSlotTaken(ctx context.Context, date, timeOfDay, excludeID string) (bool, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	return SlotTaken(items, date, timeOfDay, excludeID), nil
}

// CountOnDate cuenta la carga del día (citas no canceladas).
func (s *Service) CountOnDate(ctx context.Context, date string) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return OnDate(items, date), nil
}
