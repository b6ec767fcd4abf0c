// Package resolve agrupa los lookups cruzados entre stores que usan
// las vistas y los formularios (nombre del dueño, mascotas de un
// cliente, nombres y precios de servicios seleccionados).
//
// Política de fallback: estas funciones nunca fallan. Una referencia
// colgante (el cliente fue borrado, el servicio ya no existe) degrada
// a valor vacío / se omite, no a error. Contrasta con los repos, que
// sí reportan ErrNotFound: ahí un id ausente es bug del caller; acá
// es un valor de display.
package resolve

import (
	"context"
	"strings"

	"clinic-admin/internal/domain/catalog"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/pets"
)

type Resolver struct {
	clients clients.Repository
	pets    pets.Repository
	catalog catalog.Repository
}

func New(clientRepo clients.Repository, petRepo pets.Repository, catalogRepo catalog.Repository) *Resolver {
	return &Resolver{
		clients: clientRepo,
		pets:    petRepo,
		catalog: catalogRepo,
	}
}

// OwnerName devuelve el nombre del cliente o "" si no existe.
func (r *Resolver) OwnerName(ctx context.Context, ownerID string) string {
	c, err := r.clients.GetByID(ctx, ownerID)
	if err != nil {
		return ""
	}
	return c.Name
}

// PetName devuelve el nombre de la mascota o "" si no existe.
func (r *Resolver) PetName(ctx context.Context, petID string) string {
	p, err := r.pets.GetByID(ctx, petID)
	if err != nil {
		return ""
	}
	return p.Name
}

// PetsOf lista las mascotas cuyo OwnerID es clientID.
func (r *Resolver) PetsOf(ctx context.Context, clientID string) []pets.Pet {
	items, err := r.pets.ListByOwner(ctx, clientID)
	if err != nil {
		return nil
	}
	return items
}

// ServiceNames une con ", " los nombres de los servicios resueltos.
// Ids no resueltos se omiten en silencio.
func (r *Resolver) ServiceNames(ctx context.Context, serviceIDs []string) string {
	names := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := r.catalog.GetByID(ctx, id)
		if err != nil {
			continue
		}
		names = append(names, svc.Name)
	}
	return strings.Join(names, ", ")
}

// TotalAmount suma los precios de los servicios resueltos; un id no
// resuelto aporta 0.
func (r *Resolver) TotalAmount(ctx context.Context, serviceIDs []string) float64 {
	var total float64
	for _, id := range serviceIDs {
		svc, err := r.catalog.GetByID(ctx, id)
		if err != nil {
			continue
		}
		total += svc.Price
	}
	return total
}
