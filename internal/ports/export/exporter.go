package export

// Exporter es el colaborador de exportación: recibe la lista ya
// filtrada y su proyección de columnas, y produce el artefacto
// delimitado. No forma parte de la superficie de correctitud del
// core; los handlers solo lo invocan.
type Exporter interface {
	// Export produce el archivo para un kind dado.
	Export(kind string, header []string, rows [][]string) ([]byte, error)

	// ContentType del artefacto (p.ej. "text/csv").
	ContentType() string

	// Filename sugiere el nombre de descarga para el kind.
	Filename(kind string) string
}
