// Package webhook notifica el fin de sesión a un endpoint externo
// configurado por env. Si no hay URL configurada se usa el Noop.
package webhook

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-admin/internal/platform/httpclient"
	"clinic-admin/internal/ports/session"
)

type Notifier struct {
	client *httpclient.Client
	url    string
	now    func() time.Time
}

func New(client *httpclient.Client, url string) (*Notifier, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("webhook: empty url")
	}
	if client == nil {
		client = httpclient.New(httpclient.DefaultTimeout)
	}
	return &Notifier{
		client: client,
		url:    strings.TrimSpace(url),
		now:    time.Now,
	}, nil
}

type sessionEndedPayload struct {
	UserID  string `json:"user_id"`
	EndedAt string `json:"ended_at"`
}

func (n *Notifier) SessionEnded(ctx context.Context, userID string) error {
	return n.client.PostJSON(ctx, n.url, sessionEndedPayload{
		UserID:  userID,
		EndedAt: n.now().UTC().Format(time.RFC3339),
	}, nil)
}

// Noop descarta la notificación (modo dev sin webhook configurado).
type Noop struct{}

func (Noop) SessionEnded(context.Context, string) error { return nil }

var _ session.Notifier = (*Notifier)(nil)
var _ session.Notifier = Noop{}
