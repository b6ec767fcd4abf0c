package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
)

type Draft interface {
	SetField(key, value string) error
	Commit(ctx context.Context) (Service, error)
}

type DraftFactory func(existing *Service) Draft

func RegisterRoutes(r chi.Router, mgr *Manager, draftFor DraftFactory, exp export.Exporter) {
	r.Route("/services", func(sr chi.Router) {
		sr.Post("/", createServiceHandler(draftFor))
		sr.Get("/", listServicesHandler(mgr))
		sr.Get("/export", exportServicesHandler(mgr, exp))
		sr.Put("/{serviceID}", updateServiceHandler(mgr, draftFor))
		sr.Patch("/{serviceID}/status", updateServiceStatusHandler(mgr))
		sr.Delete("/{serviceID}", deleteServiceHandler(mgr))
	})
}

type serviceRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

type serviceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Status   string  `json:"status"`
}

func toServiceResponse(s Service) serviceResponse {
	return serviceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: string(s.Category),
		Price:    s.Price,
		Duration: s.Duration,
		Status:   string(s.Status),
	}
}

func fillServiceDraft(d Draft, req serviceRequest) {
	_ = d.SetField("name", req.Name)
	_ = d.SetField("category", req.Category)
	_ = d.SetField("price", req.Price)
	_ = d.SetField("duration", req.Duration)
	if req.Status != "" {
		_ = d.SetField("status", req.Status)
	}
}

func createServiceHandler(draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req serviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(nil)
		fillServiceDraft(d, req)

		s, err := d.Commit(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toServiceResponse(s))
	}
}

func listServicesHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := mgr.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]serviceResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toServiceResponse(s))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func updateServiceHandler(mgr *Manager, draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := mgr.GetByID(r.Context(), chi.URLParam(r, "serviceID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req serviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(&current)
		fillServiceDraft(d, req)

		s, err := d.Commit(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func updateServiceStatusHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := mgr.UpdateStatus(r.Context(), chi.URLParam(r, "serviceID"), req.Status)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func deleteServiceHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := mgr.Delete(r.Context(), chi.URLParam(r, "serviceID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportServicesHandler(mgr *Manager, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := mgr.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, s := range items {
			rows = append(rows, []string{
				s.ID, s.Name, string(s.Category),
				fmt.Sprintf("%.2f", s.Price), strconv.Itoa(s.Duration), string(s.Status),
			})
		}

		header := []string{"id", "name", "category", "price", "duration", "status"}
		webutil.WriteExport(w, exp, "services", header, rows)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "service not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		webutil.WriteValidationOr500(w, err)
	}
}
