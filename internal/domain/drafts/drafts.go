// Package drafts implementa el área de staging de los formularios de
// alta/edición. Un draft acumula campos como texto (igual que los
// inputs del dashboard), valida los requeridos al hacer Commit,
// desnormaliza nombres vía resolve y recién ahí toca el store.
//
// Un draft es de un solo uso por operación: el handler lo abre, setea
// campos y comitea dentro del mismo request. Commit nunca deja
// escrituras parciales: si la validación falla, el store no se toca.
package drafts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/catalog"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/invoices"
	"clinic-admin/internal/domain/pets"
	"clinic-admin/internal/domain/resolve"
)

// ValidationError reporta los campos requeridos que faltan.
// El commit que la produce no muta nada.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Missing, ", "))
}

// MissingFields permite a la capa HTTP mapear el error sin depender
// de este paquete (se detecta por interfaz).
func (e *ValidationError) MissingFields() []string { return e.Missing }

// Controller fabrica drafts por kind con las dependencias ya atadas.
type Controller struct {
	clients      *clients.Service
	pets         *pets.Service
	catalog      *catalog.Manager
	appointments *appointments.Service
	invoices     *invoices.Service
	resolver     *resolve.Resolver
	now          func() time.Time
}

func NewController(
	clientSvc *clients.Service,
	petSvc *pets.Service,
	catalogMgr *catalog.Manager,
	apptSvc *appointments.Service,
	invoiceSvc *invoices.Service,
	resolver *resolve.Resolver,
) *Controller {
	return &Controller{
		clients:      clientSvc,
		pets:         petSvc,
		catalog:      catalogMgr,
		appointments: apptSvc,
		invoices:     invoiceSvc,
		resolver:     resolver,
		now:          time.Now,
	}
}

// fields es el cuerpo común de todos los drafts: un mapa de campos de
// formulario (todo texto) con un set cerrado de claves válidas.
type fields struct {
	known  []string
	values map[string]string
}

func newFields(known []string) fields {
	return fields{known: known, values: make(map[string]string, len(known))}
}

func (f *fields) set(key, value string) error {
	for _, k := range f.known {
		if k == key {
			f.values[key] = value
			return nil
		}
	}
	return fmt.Errorf("unknown draft field %q", key)
}

func (f *fields) get(key string) string { return f.values[key] }

func (f *fields) reset() { f.values = make(map[string]string, len(f.known)) }

// missing devuelve los requeridos vacíos, en el orden dado.
func (f *fields) missing(required []string) []string {
	var out []string
	for _, k := range required {
		if strings.TrimSpace(f.values[k]) == "" {
			out = append(out, k)
		}
	}
	return out
}

// Coerciones numéricas de formulario: texto inválido o vacío vale 0,
// como parseFloat(x) || 0 en el dashboard.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseCount(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
