package session

import "context"

// Notifier es el colaborador de sesión: el core no guarda estado de
// sesión propio, solo avisa hacia afuera cuando alguien sale.
type Notifier interface {
	SessionEnded(ctx context.Context, userID string) error
}
