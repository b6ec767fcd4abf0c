// Package router arma la aplicación: elige storage (memory o
// Postgres), construye services, resolver y drafts, y registra las
// rutas de cada módulo sobre chi.
package router

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	csvexport "clinic-admin/internal/adapters/export/csv"
	mem "clinic-admin/internal/adapters/storage/memory"
	pg "clinic-admin/internal/adapters/storage/postgres"
	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/catalog"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/dashboard"
	"clinic-admin/internal/domain/drafts"
	"clinic-admin/internal/domain/feedback"
	"clinic-admin/internal/domain/invoices"
	"clinic-admin/internal/domain/pets"
	"clinic-admin/internal/domain/resolve"
	"clinic-admin/internal/middleware"
	"clinic-admin/internal/platform/logger"
	"clinic-admin/internal/platform/webutil"
	"clinic-admin/internal/ports/export"
	"clinic-admin/internal/ports/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory (o DB_DSN).
	DB *sql.DB

	Logger   logger.Logger
	Exporter export.Exporter

	// OnLogout recibe el aviso de sesión terminada. Puede ser nil.
	OnLogout session.Notifier

	// SeedDemoData carga los datos de demo en los repos in-memory.
	// Se ignora con Postgres: ahí los datos viven en la base.
	SeedDemoData bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		clientRepo   clients.Repository
		petRepo      pets.Repository
		catalogRepo  catalog.Repository
		apptRepo     appointments.Repository
		invoiceRepo  invoices.Repository
		feedbackRepo feedback.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		clientRepo = pg.NewClientsRepo(db)
		petRepo = pg.NewPetsRepo(db)
		catalogRepo = pg.NewCatalogRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		invoiceRepo = pg.NewInvoicesRepo(db)
		feedbackRepo = pg.NewFeedbackRepo(db)
	} else {
		clientRepo = mem.NewClientRepo()
		petRepo = mem.NewPetRepo()
		catalogRepo = mem.NewCatalogRepo()
		apptRepo = mem.NewAppointmentRepo()
		invoiceRepo = mem.NewInvoiceRepo()
		feedbackRepo = mem.NewFeedbackRepo()

		if opts.SeedDemoData {
			err := mem.Seed(context.Background(), mem.SeedSet{
				Clients:  clientRepo,
				Pets:     petRepo,
				Catalog:  catalogRepo,
				Invoices: invoiceRepo,
				Feedback: feedbackRepo,
			})
			if err != nil {
				log.Error("seed failed", map[string]any{"error": err.Error()})
			}
		}
	}

	// Resolver de referencias cruzadas (nunca falla, degrada a "").
	resolver := resolve.New(clientRepo, petRepo, catalogRepo)

	// Services por módulo
	clientSvc := clients.NewService(clientRepo)
	petSvc := pets.NewService(petRepo, resolver.OwnerName)
	catalogMgr := catalog.NewManager(catalogRepo)
	apptSvc := appointments.NewService(apptRepo)
	invoiceSvc := invoices.NewService(invoiceRepo)
	feedbackSvc := feedback.NewService(feedbackRepo)
	dashboardSvc := dashboard.NewService(clientRepo, petRepo, apptRepo, invoiceRepo)

	// Los drafts comparten un controller con todas las dependencias;
	// cada módulo recibe su fábrica ya tipada.
	dc := drafts.NewController(clientSvc, petSvc, catalogMgr, apptSvc, invoiceSvc, resolver)

	exp := opts.Exporter
	if exp == nil {
		exp = csvexport.New()
	}

	// Rutas por módulo
	clients.RegisterRoutes(r, clientSvc, func(existing *clients.Client) clients.Draft {
		return dc.Client(existing)
	}, exp)
	pets.RegisterRoutes(r, petSvc, func(existing *pets.Pet) pets.Draft {
		return dc.Pet(existing)
	}, exp)
	catalog.RegisterRoutes(r, catalogMgr, func(existing *catalog.Service) catalog.Draft {
		return dc.Service(existing)
	}, exp)
	appointments.RegisterRoutes(r, apptSvc, func(existing *appointments.Appointment) appointments.Draft {
		return dc.Appointment(existing)
	}, exp)
	invoices.RegisterRoutes(r, invoiceSvc, func(existing *invoices.Invoice) invoices.Draft {
		return dc.Invoice(existing)
	}, exp)
	feedback.RegisterRoutes(r, feedbackSvc, exp)
	dashboard.RegisterRoutes(r, dashboardSvc)

	r.Post("/logout", logoutHandler(opts.OnLogout, log))

	return r
}

// logoutHandler avisa al webhook de sesiones y responde 202: el panel
// no espera a que el aviso llegue para cerrar sesión.
func logoutHandler(notifier session.Notifier, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"user_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		if notifier != nil {
			if err := notifier.SessionEnded(r.Context(), req.UserID); err != nil {
				log.Warn("logout notification failed", map[string]any{"error": err.Error()})
			}
		}
		webutil.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "logged out"})
	}
}
