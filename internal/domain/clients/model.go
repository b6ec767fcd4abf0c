package clients

// Status define los estados posibles de un cliente.
// @Enum active, inactive
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Client representa un dueño de mascotas registrado en la clínica.
// TotalSpent y JoinDate los asigna el sistema al crear y se preservan
// en cada edición (el formulario no los toca).
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string

	TotalSpent float64
	JoinDate   string // YYYY-MM-DD

	Status Status
}

func (c Client) RecordID() string { return c.ID }

// SearchText devuelve los campos proyectados para búsqueda libre
// (mismo orden que la tabla del dashboard: name, email, phone).
func (c Client) SearchText() []string {
	return []string{c.Name, c.Email, c.Phone}
}
