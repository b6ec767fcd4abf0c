package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
)

// Draft es lo que el handler necesita del borrador de mascota;
// lo implementa drafts.PetDraft.
type Draft interface {
	SetField(key, value string) error
	Commit(ctx context.Context) (Pet, error)
}

type DraftFactory func(existing *Pet) Draft

func RegisterRoutes(r chi.Router, svc *Service, draftFor DraftFactory, exp export.Exporter) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(draftFor))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/export", exportPetsHandler(svc, exp))
		pr.Put("/{petID}", updatePetHandler(svc, draftFor))
		pr.Patch("/{petID}/status", updatePetStatusHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})

	// Mascotas de un cliente (selector de dueño en los formularios)
	r.Get("/clients/{clientID}/pets", listByOwnerHandler(svc))
}

// Los campos numéricos viajan como texto, igual que en el formulario;
// el draft hace la coerción (inválido => 0).
type petRequest struct {
	Name         string `json:"name"`
	Species      string `json:"species"`
	Breed        string `json:"breed"`
	Age          string `json:"age"`
	Weight       string `json:"weight"`
	OwnerID      string `json:"owner_id"`
	MedicalNotes string `json:"medical_notes"`
	Status       string `json:"status"`
	LastVisit    string `json:"last_visit"`
}

type petResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	OwnerID      string  `json:"owner_id"`
	MedicalNotes string  `json:"medical_notes"`
	Status       string  `json:"status"`
	LastVisit    string  `json:"last_visit"`
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Age:          p.Age,
		Weight:       p.Weight,
		OwnerID:      p.OwnerID,
		MedicalNotes: p.MedicalNotes,
		Status:       string(p.Status),
		LastVisit:    p.LastVisit,
	}
}

func fillPetDraft(d Draft, req petRequest) {
	_ = d.SetField("name", req.Name)
	_ = d.SetField("species", req.Species)
	_ = d.SetField("breed", req.Breed)
	_ = d.SetField("age", req.Age)
	_ = d.SetField("weight", req.Weight)
	_ = d.SetField("owner_id", req.OwnerID)
	_ = d.SetField("medical_notes", req.MedicalNotes)
	if req.Status != "" {
		_ = d.SetField("status", req.Status)
	}
	if req.LastVisit != "" {
		_ = d.SetField("last_visit", req.LastVisit)
	}
}

func createPetHandler(draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(nil)
		fillPetDraft(d, req)

		p, err := d.Commit(r.Context())
		if err != nil {
			writePetError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func listByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func updatePetHandler(svc *Service, draftFor DraftFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writePetError(w, err)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := draftFor(&current)
		fillPetDraft(d, req)

		p, err := d.Commit(r.Context())
		if err != nil {
			writePetError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "petID"), req.Status)
		if err != nil {
			writePetError(w, err)
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writePetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func exportPetsHandler(svc *Service, exp export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), webutil.QueryFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rows := make([][]string, 0, len(items))
		for _, p := range items {
			rows = append(rows, []string{
				p.ID, p.Name, p.Species, p.Breed,
				strconv.Itoa(p.Age), strconv.FormatFloat(p.Weight, 'f', -1, 64),
				p.OwnerID, string(p.Status), p.LastVisit,
			})
		}

		header := []string{"id", "name", "species", "breed", "age", "weight", "owner_id", "status", "last_visit"}
		webutil.WriteExport(w, exp, "pets", header, rows)
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		webutil.WriteValidationOr500(w, err)
	}
}
