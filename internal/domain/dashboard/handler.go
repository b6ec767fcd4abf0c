package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard/summary", summaryHandler(svc))
}

type recentAppointment struct {
	ID         string  `json:"id"`
	ClientName string  `json:"client_name"`
	PetName    string  `json:"pet_name"`
	Service    string  `json:"service"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type summaryResponse struct {
	Summary
	Recent []recentAppointment `json:"recent_appointments"`
}

func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := summaryResponse{Summary: sum, Recent: make([]recentAppointment, 0, len(sum.RecentAppointments))}
		for _, a := range sum.RecentAppointments {
			resp.Recent = append(resp.Recent, recentAppointment{
				ID:         a.ID,
				ClientName: a.ClientName,
				PetName:    a.PetName,
				Service:    a.Service,
				Date:       a.Date,
				Time:       a.Time,
				Amount:     a.Amount,
				Status:     string(a.Status),
			})
		}

		webutil.WriteJSON(w, http.StatusOK, resp)
	}
}
