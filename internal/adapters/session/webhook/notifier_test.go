package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-admin/internal/platform/httpclient"
)

func TestSessionEnded_PostsPayload(t *testing.T) {
	var got sessionEndedPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n, err := New(httpclient.New(time.Second), srv.URL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	n.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	if err := n.SessionEnded(context.Background(), "admin-1"); err != nil {
		t.Fatalf("session ended: %v", err)
	}
	if got.UserID != "admin-1" || got.EndedAt != "2026-09-01T12:00:00Z" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestSessionEnded_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	n, err := New(httpclient.New(time.Second), srv.URL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	err = n.SessionEnded(context.Background(), "admin-1")
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("got %v, want HTTPError 502", err)
	}
}

func TestNew_RejectsEmptyURL(t *testing.T) {
	if _, err := New(nil, "   "); err == nil {
		t.Fatal("expected error on empty url")
	}
}
