package memory

import (
	"context"

	"clinic-admin/internal/domain/catalog"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/feedback"
	"clinic-admin/internal/domain/invoices"
	"clinic-admin/internal/domain/pets"
)

// SeedSet agrupa los repos que reciben datos de demo.
type SeedSet struct {
	Clients  clients.Repository
	Pets     pets.Repository
	Catalog  catalog.Repository
	Invoices invoices.Repository
	Feedback feedback.Repository
}

// Seed carga los datos de ejemplo con los que arrancaba el dashboard
// (Alice/Bob, sus mascotas, el catálogo base, dos facturas y dos
// reseñas). Solo para demo/dev; los ids son fijos a propósito para
// poder referenciarlos a mano.
func Seed(ctx context.Context, set SeedSet) error {
	for _, c := range []clients.Client{
		{ID: "1", Name: "Alice Smith", Email: "alice@example.com", Phone: "555-1234",
			TotalSpent: 230.50, JoinDate: "2023-11-11", Status: clients.StatusActive},
		{ID: "2", Name: "Bob Johnson", Email: "bob@example.com", Phone: "555-5678",
			TotalSpent: 120.00, JoinDate: "2024-01-20", Status: clients.StatusInactive},
	} {
		if err := set.Clients.Create(ctx, c); err != nil {
			return err
		}
	}

	for _, p := range []pets.Pet{
		{ID: "a", Name: "Bella", Species: "Dog", Breed: "Labrador", OwnerID: "1", Status: pets.StatusActive},
		{ID: "b", Name: "Charlie", Species: "Cat", Breed: "Siamese", OwnerID: "1", Status: pets.StatusActive},
		{ID: "c", Name: "Daisy", Species: "Dog", Breed: "Beagle", OwnerID: "2", Status: pets.StatusActive},
		{ID: "d", Name: "Max", Species: "Bird", Breed: "Parakeet", OwnerID: "2", Status: pets.StatusActive},
	} {
		if err := set.Pets.Create(ctx, p); err != nil {
			return err
		}
	}

	for _, s := range []catalog.Service{
		{ID: "s1", Name: "General Checkup", Category: catalog.CategoryWellness, Price: 50, Duration: 30, Status: catalog.StatusActive},
		{ID: "s2", Name: "Vaccination", Category: catalog.CategoryWellness, Price: 100, Duration: 20, Status: catalog.StatusActive},
		{ID: "s3", Name: "Dental Cleaning", Category: catalog.CategoryDental, Price: 220, Duration: 60, Status: catalog.StatusInactive},
	} {
		if err := set.Catalog.Create(ctx, s); err != nil {
			return err
		}
	}

	for _, inv := range []invoices.Invoice{
		{ID: "i1", InvoiceNumber: "INV-9001", ClientID: "1", ClientName: "Alice Smith",
			Date: "2025-11-12", DueDate: "2025-12-12", Amount: 150, Status: invoices.StatusPending},
		{ID: "i2", InvoiceNumber: "INV-9002", ClientID: "2", ClientName: "Bob Johnson",
			Date: "2025-11-10", DueDate: "2025-11-20", Amount: 200, Status: invoices.StatusPaid},
	} {
		if err := set.Invoices.Create(ctx, inv); err != nil {
			return err
		}
	}

	for _, e := range []feedback.Entry{
		{ID: "f1", UserName: "Alice Smith", UserEmail: "alice@example.com", Category: "wellness",
			Subject: "Great service!", Rating: 5,
			Message: "The vet was fantastic and really cared for Bella.",
			Status:  feedback.StatusNew, SubmittedAt: "2025-11-21"},
		{ID: "f2", UserName: "Bob Johnson", UserEmail: "bob@example.com", Category: "grooming",
			Subject: "Friendly staff", Rating: 4,
			Message: "Booking was easy and Max looks great.",
			Status:  feedback.StatusReviewed, SubmittedAt: "2025-11-20"},
	} {
		if err := set.Feedback.Create(ctx, e); err != nil {
			return err
		}
	}

	return nil
}
