package appointments

// Chequeo de disponibilidad de slots. Es advisory: detectar un
// conflicto NO bloquea el commit, solo se muestra como aviso en el
// formulario. Ambas funciones son puras sobre el snapshot de citas.

// SlotTaken reporta si algún appointment ocupa (date, time).
// excludeID permite que una edición in-place no choque consigo misma;
// vacío = sin exclusión.
func SlotTaken(appts []Appointment, date, timeOfDay, excludeID string) bool {
	for _, a := range appts {
		if a.Date == date && a.Time == timeOfDay && a.Status.Blocks() && a.ID != excludeID {
			return true
		}
	}
	return false
}

// OnDate cuenta las citas que ocupan slot en la fecha dada.
func OnDate(appts []Appointment, date string) int {
	n := 0
	for _, a := range appts {
		if a.Date == date && a.Status.Blocks() {
			n++
		}
	}
	return n
}
