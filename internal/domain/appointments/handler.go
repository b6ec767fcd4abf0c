package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
)

// Draft es lo que el handler necesita del borrador de cita; lo
// implementa drafts.AppointmentDraft. SetServices reemplaza la
// selección completa y recalcula nombres y monto.
type Draft interface {
	SetField(key, value string) error
	SetServices(ctx context.Context, serviceIDs []string)
	Commit(ctx context.Context) (Appointment, error)
}

type DraftFactory func(existing *Appointment) Draft

func RegisterRoutes(r chi.Router, svc *Service, draftFor DraftFactory, exp export.Exporter) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(draftFor))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/availability", availabilityHandler(svc))
		ar.Get("/export", exportAppointmentsHandler(svc, exp))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc, draftFor))
		ar.Patch("/{appointmentID}/status", updateAppointmentStatusHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type appointmentRequest struct {
	ClientID   string   `json:"client_id"`
	PetID      string   `json:"pet_id"`
	ServiceIDs []string `json:"service_ids"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Status     string   `json:"status"`
	Amount     string   `json:"amount"` // texto de formulario; vacío = suma de servicios
}

type appointmentResponse struct {
	ID         string   `json:"id"`
	ClientID   string   `json:"client_id"`
	ClientName string   `json:"client_name"`
	PetID      string   `json:"pet_id"`
	PetName    string   `json:"pet_name"`
	ServiceIDs []string `json:"service_ids"`
	Service    string   `json:"service"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Amount     float64  `json:"amount"`
	Status     string   `json:"status"`
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	ids := a.ServiceIDs
	if ids == nil {
		ids = []string{}
	}
	return appointmentResponse{
		ID:         a.ID,
		ClientID:   a.ClientID,
		ClientName: a.ClientName,
		PetID:      a.PetID,
		PetName:    a.PetName,
		ServiceIDs: ids,
		Service:    a.Service,
		Date:       a.Date,
		Time:       a.Time,
		Amount:     a.Amount,
		Status:     string(a.Status),
	}
}

// fillAppointmentDraft: primero la selección de servicios (que setea
// service y amount resueltos) y después el amount explícito si vino,
// para respetar el override manual del monto.
func fillAppointmentDraft(ctx context.Context, d Draft, req appointmentRequest) {
	_ = d.SetField("client_id", req.ClientID)
	_ = d.SetField("pet_id", req.PetID)
	_ = d.SetField("date", req.Date)
	_ = d.SetField("time", req.Time)
	if req.Status != "" {
		_ = d.SetField("status", req.Status)
	}

	if req.ServiceIDs != nil {
		d.SetServices(ctx, req.ServiceIDs)
	}
	if strings.TrimSpace(req.Amount) != "" {
		_ = d.SetField("amount", req.Amount)
	}
}

func createAppointmentHandler(draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(nil)
		fillAppointmentDraft(r.Context(), d, req)

		a, err := d.Commit(r.Context())
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

// availabilityHandler responde el aviso del formulario: si el slot
// está ocupado y cuántas citas hay ese día. Advisory: el POST/PUT no
// consulta esto ni bloquea.
func availabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		date := q.Get("date")
		timeOfDay := q.Get("time")
		if date == "" || timeOfDay == "" {
			http.Error(w, "date and time are required", http.StatusBadRequest)
			return
		}

		taken, err := svc.IsSlotTaken(r.Context(), date, timeOfDay, q.Get("exclude"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		onDate, err := svc.CountOnDate(r.Context(), date)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		webutil.WriteJSON(w, http.StatusOK, map[string]any{
			"slot_taken":           taken,
			"appointments_on_date": onDate,
		})
	}
}

func updateAppointmentHandler(svc *Service, draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(&current)
		fillAppointmentDraft(r.Context(), d, req)

		a, err := d.Commit(r.Context())
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func updateAppointmentStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), req.Status)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			writeAppointmentError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportAppointmentsHandler(svc *Service, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, a := range items {
			rows = append(rows, []string{
				a.ID, a.ClientName, a.PetName, a.Service,
				a.Date, a.Time, fmt.Sprintf("%.2f", a.Amount), string(a.Status),
			})
		}

		header := []string{"id", "client_name", "pet_name", "service", "date", "time", "amount", "status"}
		webutil.WriteExport(w, exp, "appointments", header, rows)
	}
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		webutil.WriteValidationOr500(w, err)
	}
}
