package appointments

import "testing"

func slotAppt(id, date, timeOfDay string, status Status) Appointment {
	return Appointment{ID: id, Date: date, Time: timeOfDay, Status: status}
}

func TestSlotTaken(t *testing.T) {
	appts := []Appointment{
		slotAppt("a1", "2026-09-01", "10:00", StatusScheduled),
		slotAppt("a2", "2026-09-01", "11:00", StatusCancelled),
		slotAppt("a3", "2026-09-02", "10:00", StatusCompleted),
		slotAppt("a4", "2026-09-01", "12:00", StatusNoShow),
	}

	if !SlotTaken(appts, "2026-09-01", "10:00", "") {
		t.Fatal("slot con cita scheduled debería estar tomado")
	}
	// Canceladas y no-show liberan el horario.
	if SlotTaken(appts, "2026-09-01", "11:00", "") {
		t.Fatal("cita cancelada no debería ocupar el slot")
	}
	if SlotTaken(appts, "2026-09-01", "12:00", "") {
		t.Fatal("cita no-show no debería ocupar el slot")
	}
	// Completed sigue ocupando (la tabla histórica lo muestra así).
	if !SlotTaken(appts, "2026-09-02", "10:00", "") {
		t.Fatal("cita completed debería ocupar el slot")
	}
	if SlotTaken(appts, "2026-09-03", "10:00", "") {
		t.Fatal("fecha sin citas no debería estar tomada")
	}
}

// Editar una cita sin moverla de horario no choca consigo misma.
func TestSlotTaken_ExcludesEditingTarget(t *testing.T) {
	appts := []Appointment{
		slotAppt("a1", "2026-09-01", "10:00", StatusScheduled),
	}

	if SlotTaken(appts, "2026-09-01", "10:00", "a1") {
		t.Fatal("la propia cita no cuenta como conflicto")
	}

	// Pero otra cita en el mismo slot sí.
	appts = append(appts, slotAppt("a2", "2026-09-01", "10:00", StatusScheduled))
	if !SlotTaken(appts, "2026-09-01", "10:00", "a1") {
		t.Fatal("otra cita en el slot debería contar aun excluyendo a1")
	}
}

func TestOnDate(t *testing.T) {
	appts := []Appointment{
		slotAppt("a1", "2026-09-01", "10:00", StatusScheduled),
		slotAppt("a2", "2026-09-01", "11:00", StatusCompleted),
		slotAppt("a3", "2026-09-01", "12:00", StatusCancelled),
		slotAppt("a4", "2026-09-02", "10:00", StatusScheduled),
	}

	if got := OnDate(appts, "2026-09-01"); got != 2 {
		t.Fatalf("OnDate = %d, want 2 (cancelada no cuenta)", got)
	}
	if got := OnDate(appts, "2026-09-03"); got != 0 {
		t.Fatalf("OnDate = %d, want 0", got)
	}
}
