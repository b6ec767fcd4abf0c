package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
)

// Draft es el contrato mínimo que el handler necesita del borrador de
// cliente. Lo implementa drafts.ClientDraft; se inyecta como fábrica
// desde el router para no acoplar este paquete al controller.
type Draft interface {
	SetField(key, value string) error
	Commit(ctx context.Context) (Client, error)
}

type DraftFactory func(existing *Client) Draft

func RegisterRoutes(r chi.Router, svc *Service, draftFor DraftFactory, exp export.Exporter) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", createClientHandler(draftFor))
		cr.Get("/", listClientsHandler(svc))
		cr.Get("/export", exportClientsHandler(svc, exp))
		cr.Put("/{clientID}", updateClientHandler(svc, draftFor))
		cr.Patch("/{clientID}/status", updateClientStatusHandler(svc))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

type clientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type clientResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	TotalSpent float64 `json:"total_spent"`
	JoinDate   string  `json:"join_date"`
	Status     string  `json:"status"`
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		TotalSpent: c.TotalSpent,
		JoinDate:   c.JoinDate,
		Status:     string(c.Status),
	}
}

// fillClientDraft vuelca el request al draft tal cual; los requeridos
// los valida Commit.
func fillClientDraft(d Draft, req clientRequest) {
	_ = d.SetField("name", req.Name)
	_ = d.SetField("email", req.Email)
	_ = d.SetField("phone", req.Phone)
	if req.Status != "" {
		_ = d.SetField("status", req.Status)
	}
}

func createClientHandler(draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(nil)
		fillClientDraft(d, req)

		c, err := d.Commit(r.Context())
		if err != nil {
			writeClientError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func updateClientHandler(svc *Service, draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			writeClientError(w, err)
			return
		}

		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(&current)
		fillClientDraft(d, req)

		c, err := d.Commit(r.Context())
		if err != nil {
			writeClientError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func updateClientStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "clientID"), req.Status)
		if err != nil {
			writeClientError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "clientID")); err != nil {
			writeClientError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportClientsHandler(svc *Service, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, c := range items {
			rows = append(rows, []string{
				c.ID, c.Name, c.Email, c.Phone,
				fmt.Sprintf("%.2f", c.TotalSpent), c.JoinDate, string(c.Status),
			})
		}

		header := []string{"id", "name", "email", "phone", "total_spent", "join_date", "status"}
		webutil.WriteExport(w, exp, "clients", header, rows)
	}
}

func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		webutil.WriteValidationOr500(w, err)
	}
}
