package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	mem "clinic-admin/internal/adapters/storage/memory"
	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/invoices"
)

func TestSummary(t *testing.T) {
	ctx := context.Background()

	clientRepo := mem.NewClientRepo()
	petRepo := mem.NewPetRepo()
	apptRepo := mem.NewAppointmentRepo()
	invoiceRepo := mem.NewInvoiceRepo()

	_ = clientRepo.Create(ctx, clients.Client{ID: "1", Name: "Alice", Status: clients.StatusActive})
	_ = clientRepo.Create(ctx, clients.Client{ID: "2", Name: "Bob", Status: clients.StatusInactive})

	_ = invoiceRepo.Create(ctx, invoices.Invoice{ID: "i1", Amount: 200, Status: invoices.StatusPaid})
	_ = invoiceRepo.Create(ctx, invoices.Invoice{ID: "i2", Amount: 150, Status: invoices.StatusPending})
	_ = invoiceRepo.Create(ctx, invoices.Invoice{ID: "i3", Amount: 50, Status: invoices.StatusOverdue})

	_ = apptRepo.Create(ctx, appointments.Appointment{ID: "a1", Date: "2026-09-01", Time: "09:00", Status: appointments.StatusScheduled})
	_ = apptRepo.Create(ctx, appointments.Appointment{ID: "a2", Date: "2026-09-01", Time: "10:00", Status: appointments.StatusCancelled})
	_ = apptRepo.Create(ctx, appointments.Appointment{ID: "a3", Date: "2026-09-02", Time: "09:00", Status: appointments.StatusCompleted})

	svc := NewService(clientRepo, petRepo, apptRepo, invoiceRepo)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) }

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if sum.TotalRevenue != 200 {
		t.Fatalf("TotalRevenue = %v", sum.TotalRevenue)
	}
	if sum.PendingRevenue != 200 || sum.UnpaidInvoices != 2 {
		t.Fatalf("pending = %v / %d", sum.PendingRevenue, sum.UnpaidInvoices)
	}
	// La cancelada de hoy no cuenta como cita del día.
	if sum.TodayAppointments != 1 {
		t.Fatalf("TodayAppointments = %d", sum.TodayAppointments)
	}
	if sum.ScheduledAppointments != 1 {
		t.Fatalf("ScheduledAppointments = %d", sum.ScheduledAppointments)
	}
	if sum.TotalClients != 2 || sum.ActiveClients != 1 {
		t.Fatalf("clients = %d / %d", sum.TotalClients, sum.ActiveClients)
	}
	if sum.TotalPets != 0 {
		t.Fatalf("TotalPets = %d", sum.TotalPets)
	}
}

// Las recientes son las últimas 5 insertadas, la más nueva primero.
func TestSummary_RecentAppointments(t *testing.T) {
	ctx := context.Background()

	apptRepo := mem.NewAppointmentRepo()
	for i := 1; i <= 7; i++ {
		_ = apptRepo.Create(ctx, appointments.Appointment{
			ID:     fmt.Sprintf("a%d", i),
			Date:   "2026-09-01",
			Time:   fmt.Sprintf("%02d:00", 8+i),
			Status: appointments.StatusScheduled,
		})
	}

	svc := NewService(mem.NewClientRepo(), mem.NewPetRepo(), apptRepo, mem.NewInvoiceRepo())

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	want := []string{"a7", "a6", "a5", "a4", "a3"}
	if len(sum.RecentAppointments) != len(want) {
		t.Fatalf("recent = %d, want %d", len(sum.RecentAppointments), len(want))
	}
	for i, w := range want {
		if sum.RecentAppointments[i].ID != w {
			t.Fatalf("recent[%d] = %s, want %s", i, sum.RecentAppointments[i].ID, w)
		}
	}
}
