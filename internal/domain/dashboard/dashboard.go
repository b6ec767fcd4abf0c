// Package dashboard calcula los agregados de la vista general:
// revenue, citas del día, clientes activos y últimas citas. Lectura
// pura sobre los stores, se re-deriva en cada consulta.
package dashboard

import (
	"context"
	"time"

	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/invoices"
	"clinic-admin/internal/domain/pets"
)

type Service struct {
	clients      clients.Repository
	pets         pets.Repository
	appointments appointments.Repository
	invoices     invoices.Repository
	now          func() time.Time
}

func NewService(
	clientRepo clients.Repository,
	petRepo pets.Repository,
	apptRepo appointments.Repository,
	invoiceRepo invoices.Repository,
) *Service {
	return &Service{
		clients:      clientRepo,
		pets:         petRepo,
		appointments: apptRepo,
		invoices:     invoiceRepo,
		now:          time.Now,
	}
}

type Summary struct {
	TotalRevenue   float64 `json:"total_revenue"`   // facturas pagas
	PendingRevenue float64 `json:"pending_revenue"` // facturas no pagas
	UnpaidInvoices int     `json:"unpaid_invoices"`

	TodayAppointments     int `json:"today_appointments"`
	ScheduledAppointments int `json:"scheduled_appointments"`

	TotalClients  int `json:"total_clients"`
	ActiveClients int `json:"active_clients"`
	TotalPets     int `json:"total_pets"`

	RecentAppointments []appointments.Appointment `json:"-"`
}

const recentAppointmentLimit = 5

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary

	invs, err := s.invoices.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	for _, inv := range invs {
		if inv.Status == invoices.StatusPaid {
			out.TotalRevenue += inv.Amount
		} else {
			out.PendingRevenue += inv.Amount
			out.UnpaidInvoices++
		}
	}

	appts, err := s.appointments.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	today := s.now().Format("2006-01-02")
	out.TodayAppointments = appointments.OnDate(appts, today)
	for _, a := range appts {
		if a.Status == appointments.StatusScheduled {
			out.ScheduledAppointments++
		}
	}

	// Últimas N citas, la más nueva primero (el store lista en orden
	// de inserción, así que el sufijo invertido son las recientes).
	start := len(appts) - recentAppointmentLimit
	if start < 0 {
		start = 0
	}
	recent := appts[start:]
	out.RecentAppointments = make([]appointments.Appointment, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		out.RecentAppointments = append(out.RecentAppointments, recent[i])
	}

	cls, err := s.clients.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.TotalClients = len(cls)
	for _, c := range cls {
		if c.Status == clients.StatusActive {
			out.ActiveClients++
		}
	}

	ps, err := s.pets.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.TotalPets = len(ps)

	return out, nil
}
