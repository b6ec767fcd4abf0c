package main

import (
	"net/http"
	"os"
	"time"

	csvexport "clinic-admin/internal/adapters/export/csv"
	"clinic-admin/internal/adapters/session/webhook"
	"clinic-admin/internal/platform/httpclient"
	"clinic-admin/internal/platform/logger"
	"clinic-admin/internal/ports/session"
	"clinic-admin/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Webhook de sesiones: opcional; sin URL queda en no-op.
	var notifier session.Notifier = webhook.Noop{}
	if url := os.Getenv("LOGOUT_WEBHOOK_URL"); url != "" {
		n, err := webhook.New(httpclient.New(5*time.Second), url)
		if err != nil {
			log.Warn("invalid LOGOUT_WEBHOOK_URL, logout notifications disabled", map[string]any{"error": err.Error()})
		} else {
			notifier = n
		}
	}

	r := router.NewRouter(router.Options{
		Logger:       log,
		Exporter:     csvexport.New(),
		OnLogout:     notifier,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
