// Package filter implementa el filtrado de dos etapas de las tablas
// del dashboard: un predicado por status/categoría y una búsqueda por
// substring sobre la proyección de texto de cada registro.
//
// Ambas etapas son AND y el resultado se re-deriva en cada consulta:
// Apply es función pura de (registros, query), nunca cachea.
package filter

import "strings"

// All es el valor centinela que desactiva la primera etapa.
const All = "all"

// Query agrupa los dos parámetros de listado que usa cada tab.
type Query struct {
	Filter string // "all" o un valor exacto del campo clave del kind
	Search string // término libre; vacío = acepta todo
}

// Apply filtra items preservando el orden de entrada.
//   - key: campo de la primera etapa (status, categoría, o especie en minúscula
//     para pets). Comparación exacta contra q.Filter salvo centinela.
//   - searchText: proyección fija de campos de texto del kind; se unen con un
//     espacio y se compara en minúsculas por substring.
func Apply[T any](items []T, q Query, key func(T) string, searchText func(T) []string) []T {
	term := strings.ToLower(q.Search)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if q.Filter != "" && q.Filter != All && key(it) != q.Filter {
			continue
		}
		if term != "" {
			haystack := strings.ToLower(strings.Join(searchText(it), " "))
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}
