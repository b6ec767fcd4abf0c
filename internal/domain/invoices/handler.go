package invoices

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

type Draft interface {
	SetField(key, value string) error
	Commit(ctx context.Context) (Invoice, error)
}

type DraftFactory func(existing *Invoice) Draft

func RegisterRoutes(r chi.Router, svc *Service, draftFor DraftFactory, exp export.Exporter) {
	r.Route("/invoices", func(ir chi.Router) {
		ir.Post("/", createInvoiceHandler(draftFor))
		ir.Get("/", listInvoicesHandler(svc))
		ir.Get("/export", exportInvoicesHandler(svc, exp))
		ir.Put("/{invoiceID}", updateInvoiceHandler(svc, draftFor))
		ir.Patch("/{invoiceID}/status", updateInvoiceStatusHandler(svc))
		ir.Delete("/{invoiceID}", deleteInvoiceHandler(svc))
	})
}

type invoiceRequest struct {
	ClientID string `json:"client_id"`
	Amount   string `json:"amount"` // texto de formulario
	Date     string `json:"date"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
}

type invoiceResponse struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientID      string  `json:"client_id"`
	ClientName    string  `json:"client_name"`
	Date          string  `json:"date"`
	DueDate       string  `json:"due_date"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}

func toInvoiceResponse(inv Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Amount:        inv.Amount,
		Status:        string(inv.Status),
	}
}

func fillInvoiceDraft(d Draft, req invoiceRequest) {
	_ = d.SetField("client_id", req.ClientID)
	_ = d.SetField("amount", req.Amount)
	_ = d.SetField("date", req.Date)
	_ = d.SetField("due_date", req.DueDate)
	if req.Status != "" {
		_ = d.SetField("status", req.Status)
	}
}

func createInvoiceHandler(draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req invoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(nil)
		fillInvoiceDraft(d, req)

		inv, err := d.Commit(r.Context())
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toInvoiceResponse(inv))
	}
}

func listInvoicesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]invoiceResponse, 0, len(items))
		for _, inv := range items {
			out = append(out, toInvoiceResponse(inv))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func updateInvoiceHandler(svc *Service, draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "invoiceID"))
		if err != nil {
			writeInvoiceError(w, err)
			return
		}

		var req invoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(&current)
		fillInvoiceDraft(d, req)

		inv, err := d.Commit(r.Context())
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
	}
}

func updateInvoiceStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		inv, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "invoiceID"), req.Status)
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
	}
}

func deleteInvoiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "invoiceID")); err != nil {
			writeInvoiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportInvoicesHandler(svc *Service, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, inv := range items {
			rows = append(rows, []string{
				inv.ID, inv.InvoiceNumber, inv.ClientName,
				inv.Date, inv.DueDate, fmt.Sprintf("%.2f", inv.Amount), string(inv.Status),
			})
		}

		header := []string{"id", "invoice_number", "client_name", "date", "due_date", "amount", "status"}
		webutil.WriteExport(w, exp, "invoices", header, rows)
	}
}

func writeInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		webutil.WriteValidationOr500(w, err)
	}
}
