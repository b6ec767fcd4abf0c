// Package feedback maneja las reseñas de clientes. Es read-mostly:
// las entradas llegan de afuera (formulario público, seed), el panel
// solo las lista, filtra y borra.
package feedback

// Status define los estados posibles de una reseña.
// @Enum new, reviewed, resolved
type Status string

const (
	StatusNew      Status = "new"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	return s == StatusNew || s == StatusReviewed || s == StatusResolved
}

// Entry es una reseña enviada por un cliente.
type Entry struct {
	ID        string
	UserName  string
	UserEmail string
	Category  string
	Subject   string
	Rating    int // 1..5
	Message   string
	Status    Status

	SubmittedAt string // YYYY-MM-DD
}

func (e Entry) RecordID() string { return e.ID }

// SearchText: [userName, userEmail, subject, category, message].
func (e Entry) SearchText() []string {
	return []string{e.UserName, e.UserEmail, e.Subject, e.Category, e.Message}
}
