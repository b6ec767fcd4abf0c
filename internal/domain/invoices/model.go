package invoices

// Status define los estados posibles de una factura.
// @Enum pending, paid, overdue
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid || s == StatusOverdue
}

// Invoice representa una factura emitida a un cliente.
// InvoiceNumber es el código visible (INV-10001...); lo asigna el
// sistema al crear y se preserva en cada edición. ClientName es un
// snapshot desnormalizado del cliente al momento de facturar.
type Invoice struct {
	ID            string
	InvoiceNumber string

	ClientID   string
	ClientName string

	Date    string // YYYY-MM-DD
	DueDate string // YYYY-MM-DD
	Amount  float64

	Status Status
}

func (i Invoice) RecordID() string { return i.ID }

// SearchText: el tab de facturas busca sobre [invoiceNumber, clientName].
func (i Invoice) SearchText() []string {
	return []string{i.InvoiceNumber, i.ClientName}
}
