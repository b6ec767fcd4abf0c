package appointments

// Status define los estados posibles de una cita.
// @Enum scheduled, completed, cancelled, no-show
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Blocks indica si la cita ocupa su slot para el chequeo de
// disponibilidad. Canceladas y no-show liberan el horario.
func (s Status) Blocks() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Appointment representa una cita agendada.
//
// ClientName, PetName y Service son snapshots desnormalizados tomados
// al crear/editar; si el cliente, la mascota o el catálogo cambian
// después, NO se re-sincronizan (decisión heredada del dashboard: la
// vista histórica muestra lo que se agendó, no el estado actual).
type Appointment struct {
	ID string

	ClientID   string
	ClientName string
	PetID      string
	PetName    string

	ServiceIDs []string
	Service    string // nombres del catálogo unidos con ", "

	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Amount float64

	Status Status
}

func (a Appointment) RecordID() string { return a.ID }

// SearchText: [clientName, petName, service, date], igual que el tab.
func (a Appointment) SearchText() []string {
	return []string{a.ClientName, a.PetName, a.Service, a.Date}
}
