// Package memory implementa los repositorios sobre un store genérico
// en memoria. Es el backend canónico: define la semántica (orden de
// inserción, reemplazo atómico, not-found) que el adapter de postgres
// aproxima.
package memory

import (
	"errors"
	"strings"
	"sync"
)

// Record es lo mínimo que el store necesita de una entidad.
type Record interface {
	RecordID() string
}

// Store mantiene una colección ordenada por inserción con índice por
// id. Cada mutación reemplaza/inserta/borra exactamente un registro.
// notFound es el sentinel del dominio dueño del store, así los
// callers comparan contra clients.ErrNotFound etc. sin importar este
// paquete.
type Store[T Record] struct {
	mu       sync.RWMutex
	byID     map[string]T
	order    []string
	notFound error
}

func NewStore[T Record](notFound error) *Store[T] {
	if notFound == nil {
		notFound = errors.New("not found")
	}
	return &Store[T]{
		byID:     make(map[string]T),
		notFound: notFound,
	}
}

func (s *Store[T]) Insert(rec T) error {
	id := strings.TrimSpace(rec.RecordID())
	if id == "" {
		return errors.New("record id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; exists {
		return errors.New("record already exists")
	}
	s.byID[id] = rec
	s.order = append(s.order, id)
	return nil
}

func (s *Store[T]) Replace(rec T) error {
	id := strings.TrimSpace(rec.RecordID())
	if id == "" {
		return errors.New("record id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return s.notFound
	}
	s.byID[id] = rec // mantiene la posición original en order
	return nil
}

func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return s.notFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, s.notFound
	}
	return rec, nil
}

// All devuelve un snapshot en orden de inserción. El orden importa:
// las vistas de "recientes" toman el sufijo.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
