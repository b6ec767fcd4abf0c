package pets

import "strings"

// Status define los estados posibles de un paciente.
// @Enum active, inactive
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Pet representa un paciente de la clínica.
// OwnerID referencia a un Client existente al momento de asignarse;
// si el cliente se borra después la referencia queda colgante y las
// vistas degradan a nombre vacío (sin cascada, ver resolve).
type Pet struct {
	ID      string
	Name    string
	Species string // Dog, Cat, Bird, Rabbit...
	Breed   string
	Age     int     // años
	Weight  float64 // kg
	OwnerID string

	MedicalNotes string
	Status       Status
	LastVisit    string // YYYY-MM-DD
}

func (p Pet) RecordID() string { return p.ID }

// FilterKey: el tab de pets filtra por especie, no por status,
// y compara en minúsculas ("dog", "cat", ...).
func (p Pet) FilterKey() string {
	return strings.ToLower(p.Species)
}
