package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
)

func RegisterRoutes(r chi.Router, svc *Service, exp export.Exporter) {
	r.Route("/feedback", func(fr chi.Router) {
		fr.Get("/", listFeedbackHandler(svc))
		fr.Get("/export", exportFeedbackHandler(svc, exp))
		fr.Get("/{feedbackID}", getFeedbackHandler(svc))
		fr.Delete("/{feedbackID}", deleteFeedbackHandler(svc))
	})
}

type feedbackResponse struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	Category    string `json:"category"`
	Subject     string `json:"subject"`
	Rating      int    `json:"rating"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

func toFeedbackResponse(e Entry) feedbackResponse {
	return feedbackResponse{
		ID:          e.ID,
		UserName:    e.UserName,
		UserEmail:   e.UserEmail,
		Category:    e.Category,
		Subject:     e.Subject,
		Rating:      e.Rating,
		Message:     e.Message,
		Status:      string(e.Status),
		SubmittedAt: e.SubmittedAt,
	}
}

func listFeedbackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]feedbackResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toFeedbackResponse(e))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

// getFeedbackHandler respalda el botón "View" (muestra el mensaje
// completo de la reseña).
func getFeedbackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "feedbackID"))
		if err != nil {
			writeFeedbackError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toFeedbackResponse(e))
	}
}

func deleteFeedbackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "feedbackID")); err != nil {
			writeFeedbackError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportFeedbackHandler(svc *Service, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, e := range items {
			rows = append(rows, []string{
				e.ID, e.UserName, e.UserEmail, e.Category, e.Subject,
				strconv.Itoa(e.Rating), e.Message, string(e.Status), e.SubmittedAt,
			})
		}

		header := []string{"id", "user_name", "user_email", "category", "subject", "rating", "message", "status", "submitted_at"}
		webutil.WriteExport(w, exp, "feedback", header, rows)
	}
}

func writeFeedbackError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "feedback not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
