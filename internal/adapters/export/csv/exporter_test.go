package csv

import (
	"strings"
	"testing"
)

func TestExport(t *testing.T) {
	e := New()

	b, err := e.Export("clients",
		[]string{"id", "name", "email"},
		[][]string{
			{"1", "Alice Smith", "alice@example.com"},
			{"2", `Bob "Bobby" Johnson`, "bob@example.com"},
		})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d: %q", len(lines), string(b))
	}
	if lines[0] != "id,name,email" {
		t.Fatalf("header = %q", lines[0])
	}
	// Las comillas del valor se escapan estilo RFC 4180.
	if lines[2] != `2,"Bob ""Bobby"" Johnson",bob@example.com` {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestExport_EmptyRows(t *testing.T) {
	e := New()
	b, err := e.Export("pets", []string{"id", "name"}, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(string(b)) != "id,name" {
		t.Fatalf("got %q, want solo el header", string(b))
	}
}

func TestHeadersAndFilename(t *testing.T) {
	e := New()
	if ct := e.ContentType(); ct != "text/csv" {
		t.Fatalf("ContentType = %q", ct)
	}
	if fn := e.Filename("invoices"); fn != "invoices.csv" {
		t.Fatalf("Filename = %q", fn)
	}
}
