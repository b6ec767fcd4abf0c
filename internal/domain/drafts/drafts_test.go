package drafts

import (
	"context"
	"errors"
	"testing"

	mem "clinic-admin/internal/adapters/storage/memory"
	"clinic-admin/internal/domain/appointments"
	"clinic-admin/internal/domain/catalog"
	"clinic-admin/internal/domain/clients"
	"clinic-admin/internal/domain/invoices"
	"clinic-admin/internal/domain/pets"
	"clinic-admin/internal/domain/resolve"
)

type testEnv struct {
	ctl *Controller

	clientSvc  *clients.Service
	petSvc     *pets.Service
	catalogMgr *catalog.Manager
	apptSvc    *appointments.Service

	apptRepo appointments.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clientRepo := mem.NewClientRepo()
	petRepo := mem.NewPetRepo()
	catalogRepo := mem.NewCatalogRepo()
	apptRepo := mem.NewAppointmentRepo()
	invoiceRepo := mem.NewInvoiceRepo()

	resolver := resolve.New(clientRepo, petRepo, catalogRepo)

	clientSvc := clients.NewService(clientRepo)
	petSvc := pets.NewService(petRepo, resolver.OwnerName)
	catalogMgr := catalog.NewManager(catalogRepo)
	apptSvc := appointments.NewService(apptRepo)
	invoiceSvc := invoices.NewService(invoiceRepo)

	return &testEnv{
		ctl:        NewController(clientSvc, petSvc, catalogMgr, apptSvc, invoiceSvc, resolver),
		clientSvc:  clientSvc,
		petSvc:     petSvc,
		catalogMgr: catalogMgr,
		apptSvc:    apptSvc,
		apptRepo:   apptRepo,
	}
}

func (e *testEnv) seedClientAndPet(t *testing.T, ctx context.Context) (clients.Client, pets.Pet) {
	t.Helper()
	c, err := e.clientSvc.Create(ctx, clients.Input{
		Name: "Alice Smith", Email: "alice@example.com", Phone: "555-1234",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	p, err := e.petSvc.Create(ctx, pets.Input{
		Name: "Bella", Species: "Dog", Breed: "Golden Retriever", OwnerID: c.ID,
	})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return c, p
}

func (e *testEnv) seedService(t *testing.T, ctx context.Context, name string, price float64) catalog.Service {
	t.Helper()
	s, err := e.catalogMgr.Create(ctx, catalog.Input{
		Name: name, Category: string(catalog.CategoryWellness), Price: price, Duration: 30,
	})
	if err != nil {
		t.Fatalf("seed service %s: %v", name, err)
	}
	return s
}

func TestAppointmentDraft_MissingRequiredDoesNotCommit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	d := env.ctl.Appointment(nil)
	_ = d.SetField("client_id", "1")
	_ = d.SetField("date", "2026-09-01")
	// pet_id y time quedan vacíos.

	_, err := d.Commit(ctx)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	want := []string{"pet_id", "time"}
	if len(verr.Missing) != len(want) || verr.Missing[0] != want[0] || verr.Missing[1] != want[1] {
		t.Fatalf("Missing = %v, want %v", verr.Missing, want)
	}

	// El store no se tocó.
	all, err := env.apptRepo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("commit fallido dejó %d citas en el store", len(all))
	}
}

func TestAppointmentDraft_ToggleServiceRecomputes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	checkup := env.seedService(t, ctx, "Checkup", 50)
	vaccine := env.seedService(t, ctx, "Vaccination", 30)

	d := env.ctl.Appointment(nil)

	d.ToggleService(ctx, checkup.ID)
	if got := d.Field("service"); got != "Checkup" {
		t.Fatalf("service = %q, want Checkup", got)
	}
	if got := d.Field("amount"); got != "50" {
		t.Fatalf("amount = %q, want 50", got)
	}

	d.ToggleService(ctx, vaccine.ID)
	if got := d.Field("service"); got != "Checkup, Vaccination" {
		t.Fatalf("service = %q", got)
	}
	if got := d.Field("amount"); got != "80" {
		t.Fatalf("amount = %q, want 80", got)
	}

	// Toggle de un servicio ya elegido lo quita y recalcula.
	d.ToggleService(ctx, checkup.ID)
	if got := d.Field("service"); got != "Vaccination" {
		t.Fatalf("service = %q, want Vaccination", got)
	}
	if got := d.Field("amount"); got != "30" {
		t.Fatalf("amount = %q, want 30", got)
	}
}

func TestAppointmentDraft_CommitDenormalizesNames(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, p := env.seedClientAndPet(t, ctx)
	checkup := env.seedService(t, ctx, "Checkup", 50)

	d := env.ctl.Appointment(nil)
	_ = d.SetField("client_id", c.ID)
	_ = d.SetField("pet_id", p.ID)
	_ = d.SetField("date", "2026-09-01")
	_ = d.SetField("time", "10:00")
	d.SetServices(ctx, []string{checkup.ID})

	a, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if a.ClientName != "Alice Smith" || a.PetName != "Bella" {
		t.Fatalf("snapshots = (%q, %q)", a.ClientName, a.PetName)
	}
	if a.Service != "Checkup" || a.Amount != 50 {
		t.Fatalf("service/amount = (%q, %v)", a.Service, a.Amount)
	}
	if a.Status != appointments.StatusScheduled {
		t.Fatalf("status = %q, want scheduled por defecto", a.Status)
	}
}

// Un monto tipeado a mano pisa la suma de servicios.
func TestAppointmentDraft_AmountOverride(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, p := env.seedClientAndPet(t, ctx)
	checkup := env.seedService(t, ctx, "Checkup", 50)

	d := env.ctl.Appointment(nil)
	_ = d.SetField("client_id", c.ID)
	_ = d.SetField("pet_id", p.ID)
	_ = d.SetField("date", "2026-09-01")
	_ = d.SetField("time", "10:00")
	d.SetServices(ctx, []string{checkup.ID})
	_ = d.SetField("amount", "99.5")

	a, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if a.Amount != 99.5 {
		t.Fatalf("amount = %v, want 99.5 (override manual)", a.Amount)
	}
}

// Referencias colgantes degradan a "" en los snapshots, nunca a error.
func TestAppointmentDraft_DanglingReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	d := env.ctl.Appointment(nil)
	_ = d.SetField("client_id", "no-such-client")
	_ = d.SetField("pet_id", "no-such-pet")
	_ = d.SetField("date", "2026-09-01")
	_ = d.SetField("time", "10:00")

	a, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if a.ClientName != "" || a.PetName != "" {
		t.Fatalf("snapshots = (%q, %q), want vacíos", a.ClientName, a.PetName)
	}
}

func TestClientDraft_UpdatePreservesServerFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, err := env.clientSvc.Create(ctx, clients.Input{
		Name: "Alice Smith", Email: "alice@example.com", Phone: "555-1234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d := env.ctl.Client(&c)
	_ = d.SetField("name", "Alice Cooper")

	updated, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if updated.ID != c.ID {
		t.Fatalf("id cambió: %s -> %s", c.ID, updated.ID)
	}
	if updated.Name != "Alice Cooper" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.JoinDate != c.JoinDate || updated.TotalSpent != c.TotalSpent {
		t.Fatalf("joinDate/totalSpent no preservados: %+v", updated)
	}
}

func TestInvoiceDraft_NumberSequenceAndPreserve(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	open := func() *InvoiceDraft {
		d := env.ctl.Invoice(nil)
		_ = d.SetField("client_id", "1")
		_ = d.SetField("amount", "120")
		_ = d.SetField("date", "2026-09-01")
		_ = d.SetField("due_date", "2026-09-15")
		return d
	}

	first, err := open().Commit(ctx)
	if err != nil {
		t.Fatalf("commit 1: %v", err)
	}
	second, err := open().Commit(ctx)
	if err != nil {
		t.Fatalf("commit 2: %v", err)
	}
	if first.InvoiceNumber != "INV-10001" || second.InvoiceNumber != "INV-10002" {
		t.Fatalf("numeración = (%s, %s)", first.InvoiceNumber, second.InvoiceNumber)
	}

	// Editar no re-numera.
	d := env.ctl.Invoice(&first)
	_ = d.SetField("amount", "300")
	updated, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit update: %v", err)
	}
	if updated.InvoiceNumber != "INV-10001" {
		t.Fatalf("invoiceNumber = %s tras editar", updated.InvoiceNumber)
	}
	if updated.Amount != 300 {
		t.Fatalf("amount = %v", updated.Amount)
	}
}

func TestPetDraft_LastVisitDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, _ := env.seedClientAndPet(t, ctx)

	d := env.ctl.Pet(nil)
	_ = d.SetField("name", "Rocky")
	_ = d.SetField("species", "Dog")
	_ = d.SetField("owner_id", c.ID)
	_ = d.SetField("age", "not a number") // texto inválido vale 0

	p, err := d.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if p.LastVisit == "" {
		t.Fatal("last_visit vacío, debería defaultear a hoy")
	}
	if p.Age != 0 {
		t.Fatalf("age = %d, want 0 en coerción de texto inválido", p.Age)
	}
}

func TestDraft_UnknownFieldRejected(t *testing.T) {
	env := newTestEnv(t)

	d := env.ctl.Client(nil)
	if err := d.SetField("join_date", "2020-01-01"); err == nil {
		t.Fatal("join_date no es campo del formulario, SetField debería fallar")
	}
}
