// Package webutil tiene los helpers HTTP compartidos por los
// handlers de los seis módulos. (Empezaron duplicados por módulo como
// en el MVP; con seis tabs ya dolía.)
package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-admin/internal/domain/filter"
	"clinic-admin/internal/ports/export"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// QueryFrom arma el filtro de listado desde los query params
// ?status= y ?q= (status también cubre especie/categoría según tab).
func QueryFrom(r *http.Request) filter.Query {
	return filter.Query{
		Filter: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
}

// WriteExport responde el artefacto del exportador con los headers de
// descarga.
func WriteExport(w http.ResponseWriter, exp export.Exporter, kind string, header []string, rows [][]string) {
	b, err := exp.Export(kind, header, rows)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", exp.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+exp.Filename(kind))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// WriteValidationOr500 mapea el ValidationError del draft a 400 con
// la lista de campos faltantes; cualquier otro error es 500. Se
// detecta por interfaz para no importar drafts desde los dominios.
func WriteValidationOr500(w http.ResponseWriter, err error) {
	var fieldsErr interface{ MissingFields() []string }
	if errors.As(err, &fieldsErr) {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":          "validation failed",
			"missing_fields": fieldsErr.MissingFields(),
		})
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
