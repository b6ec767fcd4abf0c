// Package catalog administra el catálogo de servicios de la clínica
// (checkups, vacunas, limpiezas...). El tipo entidad se llama Service
// porque así lo llama el dominio; el caso de uso es Manager para no
// chocar con el nombre.
package catalog

// Category define las categorías del catálogo.
// @Enum wellness, dental, grooming, diagnostic, surgery
type Category string

const (
	CategoryWellness   Category = "wellness"
	CategoryDental     Category = "dental"
	CategoryGrooming   Category = "grooming"
	CategoryDiagnostic Category = "diagnostic"
	CategorySurgery    Category = "surgery"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWellness, CategoryDental, CategoryGrooming, CategoryDiagnostic, CategorySurgery:
		return true
	}
	return false
}

// Status define los estados posibles de un servicio.
// @Enum active, inactive
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Service es una entrada del catálogo.
type Service struct {
	ID       string
	Name     string
	Category Category
	Price    float64
	Duration int // minutos
	Status   Status
}

func (s Service) RecordID() string { return s.ID }

// SearchText: el tab de servicios busca sobre [name, category].
func (s Service) SearchText() []string {
	return []string{s.Name, string(s.Category)}
}
