// Package csv implementa el exportador de tablas como CSV con
// encoding/csv (quoting RFC 4180, separador coma).
package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"fmt"

	"clinic-admin/internal/ports/export"
)

type Exporter struct{}

func New() export.Exporter {
	return Exporter{}
}

func (Exporter) Export(kind string, header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := stdcsv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv export %s: %w", kind, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv export %s: %w", kind, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv export %s: %w", kind, err)
	}
	return buf.Bytes(), nil
}

func (Exporter) ContentType() string { return "text/csv" }

func (Exporter) Filename(kind string) string {
	return kind + ".csv"
}
