package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	csvexport "clinic-admin/internal/adapters/export/csv"
	"clinic-admin/internal/router"
)

type captureNotifier struct {
	calls []string
}

func (n *captureNotifier) SessionEnded(_ context.Context, userID string) error {
	n.calls = append(n.calls, userID)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *captureNotifier) {
	t.Helper()
	notifier := &captureNotifier{}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Exporter:     csvexport.New(),
		OnLogout:     notifier,
		SeedDemoData: true,
	}))
	t.Cleanup(ts.Close)
	return ts, notifier
}

func doReq(t *testing.T, base, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, base+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode list: %v body=%s", err, string(body))
	}
	return out
}

func decodeObj(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode object: %v body=%s", err, string(body))
	}
	return out
}

func TestHTTP_EndToEnd_ClientLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Los datos de demo arrancan con dos clientes
	st, body := doReq(t, ts.URL, "GET", "/clients", nil)
	if st != http.StatusOK {
		t.Fatalf("list: %d body=%s", st, body)
	}
	if got := len(decodeList(t, body)); got != 2 {
		t.Fatalf("seed clients = %d, want 2", got)
	}

	// 2) Filtro por status y búsqueda
	st, body = doReq(t, ts.URL, "GET", "/clients?status=active", nil)
	if st != http.StatusOK || len(decodeList(t, body)) != 1 {
		t.Fatalf("status=active: %d body=%s", st, body)
	}
	st, body = doReq(t, ts.URL, "GET", "/clients?q=BOB", nil)
	list := decodeList(t, body)
	if st != http.StatusOK || len(list) != 1 || list[0]["name"] != "Bob Johnson" {
		t.Fatalf("q=BOB: %d body=%s", st, body)
	}

	// 3) Alta incompleta: 400 con la lista de campos faltantes
	st, body = doReq(t, ts.URL, "POST", "/clients", map[string]any{
		"name": "Carol White",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("create incompleto: %d body=%s", st, body)
	}
	obj := decodeObj(t, body)
	missing, _ := obj["missing_fields"].([]any)
	if len(missing) != 2 || missing[0] != "email" || missing[1] != "phone" {
		t.Fatalf("missing_fields = %v", obj["missing_fields"])
	}

	// 4) Alta completa: el server asigna id, join_date y total_spent
	st, body = doReq(t, ts.URL, "POST", "/clients", map[string]any{
		"name": "Carol White", "email": "carol@example.com", "phone": "555-9999",
	})
	if st != http.StatusCreated {
		t.Fatalf("create: %d body=%s", st, body)
	}
	created := decodeObj(t, body)
	id, _ := created["id"].(string)
	if id == "" || created["join_date"] == "" {
		t.Fatalf("create response incompleta: %s", body)
	}
	if created["total_spent"] != float64(0) {
		t.Fatalf("total_spent = %v, want 0", created["total_spent"])
	}
	if created["status"] != "active" {
		t.Fatalf("status = %v, want active por defecto", created["status"])
	}

	// 5) Editar preserva join_date y total_spent
	st, body = doReq(t, ts.URL, "PUT", "/clients/"+id, map[string]any{
		"name": "Carol W.", "email": "carol@example.com", "phone": "555-9999",
	})
	if st != http.StatusOK {
		t.Fatalf("update: %d body=%s", st, body)
	}
	updated := decodeObj(t, body)
	if updated["name"] != "Carol W." || updated["join_date"] != created["join_date"] {
		t.Fatalf("update response: %s", body)
	}

	// 6) Cambio de status puntual
	st, body = doReq(t, ts.URL, "PATCH", "/clients/"+id+"/status", map[string]any{
		"status": "inactive",
	})
	if st != http.StatusOK || decodeObj(t, body)["status"] != "inactive" {
		t.Fatalf("patch status: %d body=%s", st, body)
	}

	// 7) Borrar; la lista vuelve a dos
	st, _ = doReq(t, ts.URL, "DELETE", "/clients/"+id, nil)
	if st != http.StatusNoContent {
		t.Fatalf("delete: %d", st)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/clients/"+id, nil)
	if st != http.StatusNotFound {
		t.Fatalf("double delete: %d, want 404", st)
	}
	_, body = doReq(t, ts.URL, "GET", "/clients", nil)
	if got := len(decodeList(t, body)); got != 2 {
		t.Fatalf("clients tras delete = %d, want 2", got)
	}
}

func TestHTTP_EndToEnd_PetsFilterAndOwner(t *testing.T) {
	ts, _ := newTestServer(t)

	// El tab de pets filtra por especie en minúscula, no por status.
	st, body := doReq(t, ts.URL, "GET", "/pets?status=dog", nil)
	list := decodeList(t, body)
	if st != http.StatusOK || len(list) != 2 {
		t.Fatalf("species=dog: %d body=%s", st, body)
	}
	if list[0]["name"] != "Bella" || list[1]["name"] != "Daisy" {
		t.Fatalf("dogs = %v", list)
	}

	// La búsqueda alcanza el nombre del dueño.
	st, body = doReq(t, ts.URL, "GET", "/pets?q=alice", nil)
	if st != http.StatusOK || len(decodeList(t, body)) != 2 {
		t.Fatalf("q=alice: %d body=%s", st, body)
	}

	// Mascotas de un cliente.
	st, body = doReq(t, ts.URL, "GET", "/clients/1/pets", nil)
	list = decodeList(t, body)
	if st != http.StatusOK || len(list) != 2 {
		t.Fatalf("pets of client 1: %d body=%s", st, body)
	}
}

func TestHTTP_EndToEnd_AppointmentsAndAvailability(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Alta con servicios del catálogo: nombres y monto resueltos
	st, body := doReq(t, ts.URL, "POST", "/appointments", map[string]any{
		"client_id":   "1",
		"pet_id":      "a",
		"service_ids": []string{"s1", "s2"},
		"date":        "2026-09-01",
		"time":        "10:00",
	})
	if st != http.StatusCreated {
		t.Fatalf("create: %d body=%s", st, body)
	}
	appt := decodeObj(t, body)
	apptID, _ := appt["id"].(string)
	if appt["client_name"] != "Alice Smith" || appt["pet_name"] != "Bella" {
		t.Fatalf("snapshots: %s", body)
	}
	if appt["service"] != "General Checkup, Vaccination" || appt["amount"] != float64(150) {
		t.Fatalf("service/amount: %s", body)
	}

	// 2) El slot quedó tomado, salvo excluyendo la propia cita
	st, body = doReq(t, ts.URL, "GET", "/appointments/availability?date=2026-09-01&time=10:00", nil)
	avail := decodeObj(t, body)
	if st != http.StatusOK || avail["slot_taken"] != true || avail["appointments_on_date"] != float64(1) {
		t.Fatalf("availability: %d body=%s", st, body)
	}
	_, body = doReq(t, ts.URL, "GET", "/appointments/availability?date=2026-09-01&time=10:00&exclude="+apptID, nil)
	if decodeObj(t, body)["slot_taken"] != false {
		t.Fatalf("availability con exclude: %s", body)
	}

	// 3) El conflicto es advisory: otra cita en el mismo slot entra igual
	st, body = doReq(t, ts.URL, "POST", "/appointments", map[string]any{
		"client_id": "2", "pet_id": "c", "date": "2026-09-01", "time": "10:00",
	})
	if st != http.StatusCreated {
		t.Fatalf("create en slot tomado: %d body=%s", st, body)
	}
	otherID, _ := decodeObj(t, body)["id"].(string)

	// 4) Cancelar libera el slot
	st, body = doReq(t, ts.URL, "PATCH", "/appointments/"+otherID+"/status", map[string]any{
		"status": "cancelled",
	})
	if st != http.StatusOK {
		t.Fatalf("patch status: %d body=%s", st, body)
	}
	_, body = doReq(t, ts.URL, "GET", "/appointments/availability?date=2026-09-01&time=10:00&exclude="+apptID, nil)
	avail = decodeObj(t, body)
	if avail["slot_taken"] != false || avail["appointments_on_date"] != float64(1) {
		t.Fatalf("availability tras cancelar: %s", body)
	}

	// 5) Sin fecha u hora el endpoint es 400
	st, _ = doReq(t, ts.URL, "GET", "/appointments/availability?date=2026-09-01", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("availability sin time: %d", st)
	}
}

func TestHTTP_EndToEnd_InvoicesAndDashboard(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Alta de factura: numeración secuencial y nombre resuelto
	st, body := doReq(t, ts.URL, "POST", "/invoices", map[string]any{
		"client_id": "1", "amount": "340", "date": "2026-09-01", "due_date": "2026-09-30",
	})
	if st != http.StatusCreated {
		t.Fatalf("create invoice: %d body=%s", st, body)
	}
	inv := decodeObj(t, body)
	if inv["invoice_number"] != "INV-10001" || inv["client_name"] != "Alice Smith" {
		t.Fatalf("invoice: %s", body)
	}
	if inv["status"] != "pending" {
		t.Fatalf("status = %v, want pending por defecto", inv["status"])
	}

	// 2) Resumen del dashboard sobre los datos de demo + la nueva
	st, body = doReq(t, ts.URL, "GET", "/dashboard/summary", nil)
	if st != http.StatusOK {
		t.Fatalf("summary: %d body=%s", st, body)
	}
	sum := decodeObj(t, body)
	if sum["total_revenue"] != float64(200) {
		t.Fatalf("total_revenue = %v, want 200 (solo pagas)", sum["total_revenue"])
	}
	if sum["pending_revenue"] != float64(490) || sum["unpaid_invoices"] != float64(2) {
		t.Fatalf("pending = %v / %v", sum["pending_revenue"], sum["unpaid_invoices"])
	}
	if sum["total_clients"] != float64(2) || sum["active_clients"] != float64(1) || sum["total_pets"] != float64(4) {
		t.Fatalf("counts: %s", body)
	}
}

func TestHTTP_EndToEnd_ExportAndFeedback(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Export respeta el filtro activo y trae headers de descarga
	req, _ := http.NewRequest("GET", ts.URL+"/clients/export?status=active", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "attachment; filename=clients.csv" {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	b, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 { // header + Alice
		t.Fatalf("csv lines = %d body=%s", len(lines), b)
	}
	if !strings.HasPrefix(lines[0], "id,name,email,phone") {
		t.Fatalf("csv header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Alice Smith") {
		t.Fatalf("csv row = %q", lines[1])
	}

	// 2) Feedback: listar, ver y borrar
	st, body := doReq(t, ts.URL, "GET", "/feedback", nil)
	if st != http.StatusOK || len(decodeList(t, body)) != 2 {
		t.Fatalf("feedback list: %d body=%s", st, body)
	}
	st, body = doReq(t, ts.URL, "GET", "/feedback/f1", nil)
	if st != http.StatusOK || decodeObj(t, body)["subject"] != "Great service!" {
		t.Fatalf("feedback get: %d body=%s", st, body)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/feedback/f1", nil)
	if st != http.StatusNoContent {
		t.Fatalf("feedback delete: %d", st)
	}
	_, body = doReq(t, ts.URL, "GET", "/feedback?status=new", nil)
	if len(decodeList(t, body)) != 0 {
		t.Fatalf("feedback tras delete: %s", body)
	}
}

func TestHTTP_Logout(t *testing.T) {
	ts, notifier := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/logout", map[string]any{"user_id": "admin-1"})
	if st != http.StatusAccepted {
		t.Fatalf("logout: %d body=%s", st, body)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "admin-1" {
		t.Fatalf("notifier calls = %v", notifier.calls)
	}
}
