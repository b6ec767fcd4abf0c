package filter

import "testing"

type row struct {
	status string
	name   string
	email  string
}

func keyOf(r row) string      { return r.status }
func searchOf(r row) []string { return []string{r.name, r.email} }

var rows = []row{
	{"active", "Alice Smith", "alice@example.com"},
	{"inactive", "Bob Johnson", "bob@example.com"},
	{"active", "Carol White", "carol@example.com"},
}

func names(got []row) []string {
	out := make([]string, len(got))
	for i, r := range got {
		out[i] = r.name
	}
	return out
}

func TestApply_AllAndEmptyPassEverything(t *testing.T) {
	for _, q := range []Query{
		{},
		{Filter: All},
		{Filter: "all", Search: ""},
	} {
		got := Apply(rows, q, keyOf, searchOf)
		if len(got) != len(rows) {
			t.Fatalf("query %+v: got %d rows, want %d", q, len(got), len(rows))
		}
		// El orden de entrada se preserva.
		for i := range rows {
			if got[i] != rows[i] {
				t.Fatalf("query %+v: orden alterado en %d", q, i)
			}
		}
	}
}

func TestApply_StatusStage(t *testing.T) {
	got := Apply(rows, Query{Filter: "active"}, keyOf, searchOf)
	want := []string{"Alice Smith", "Carol White"}
	if len(got) != 2 || got[0].name != want[0] || got[1].name != want[1] {
		t.Fatalf("got %v, want %v", names(got), want)
	}

	// Valor sin matches: resultado vacío, no error.
	got = Apply(rows, Query{Filter: "archived"}, keyOf, searchOf)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", names(got))
	}
}

func TestApply_SearchStage(t *testing.T) {
	// Case-insensitive, substring, sobre cualquier campo proyectado.
	got := Apply(rows, Query{Search: "BOB@"}, keyOf, searchOf)
	if len(got) != 1 || got[0].name != "Bob Johnson" {
		t.Fatalf("got %v, want [Bob Johnson]", names(got))
	}

	// Las dos etapas son AND.
	got = Apply(rows, Query{Filter: "active", Search: "bob"}, keyOf, searchOf)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty (AND de etapas)", names(got))
	}

	got = Apply(rows, Query{Filter: "active", Search: "smith"}, keyOf, searchOf)
	if len(got) != 1 || got[0].name != "Alice Smith" {
		t.Fatalf("got %v, want [Alice Smith]", names(got))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Query{Filter: "active", Search: "x"}, keyOf, searchOf)
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}
