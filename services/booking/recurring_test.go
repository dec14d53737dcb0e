// File: services/booking/recurring_test.go
package booking

import (
	"context"
	"testing"
	"time"

	"afinare/models"
)

func weeklyTemplate() models.RecurringAppointment {
	return models.RecurringAppointment{
		ID:           "tpl-1",
		ClienteNome:  "Ana Costa",
		ClienteEmail: "ana@example.com",
		ClientePhone: "61988887777",
		ServicoID:    "limpeza-de-pele",
		ServicoNome:  "Limpeza de Pele",
		ServicoPreco: 150,
		Hora:         "10:00",
		Tipo:         models.RecurrenceWeekly,
		DiaSemana:    1, // Monday
		Ativo:        true,
	}
}

func newExpanderService(repo *fakeApptRepo, tpls ...models.RecurringAppointment) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Recurring: &fakeRecurringRepo{templates: tpls},
		Now:       func() time.Time { return fixedNow }, // Monday 03/06/2024
	}
}

func TestExpandRecurringWeekly(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newExpanderService(repo, weeklyTemplate())

	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("ExpandRecurring returned error: %v", err)
	}

	// Mondays between 03/06/2024 and 02/08/2024 inclusive.
	if report.Created != 9 {
		t.Errorf("created = %d, want 9", report.Created)
	}
	if len(repo.appts) != 9 {
		t.Fatalf("persisted %d appointments, want 9", len(repo.appts))
	}

	first := repo.appts[0]
	if first.Data != "03/06/2024" {
		t.Errorf("first date = %q, want 03/06/2024 (window includes today)", first.Data)
	}
	if first.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want %q", first.Status, models.StatusConfirmed)
	}
	if !first.IsRecurring || first.RecurringID != "tpl-1" {
		t.Errorf("materialized appointment missing recurring provenance: %+v", first)
	}
	last := repo.appts[len(repo.appts)-1]
	if last.Data != "29/07/2024" {
		t.Errorf("last date = %q, want 29/07/2024", last.Data)
	}
	for _, a := range repo.appts {
		if repo.counters[slotKey(a.Data, a.Hora)] != 1 {
			t.Errorf("materialized appointment on %s does not hold capacity", a.Data)
		}
	}
}

func TestExpandRecurringMonthly(t *testing.T) {
	tpl := weeklyTemplate()
	tpl.Tipo = models.RecurrenceMonthly
	tpl.DiaMes = 15

	repo := newFakeApptRepo()
	svc := newExpanderService(repo, tpl)

	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("ExpandRecurring returned error: %v", err)
	}
	// 15/06 and 15/07 fall inside the window; 15/08 does not.
	if report.Created != 2 {
		t.Errorf("created = %d, want 2", report.Created)
	}
}

func TestExpandRecurringMonthlyDay31SkipsShortMonths(t *testing.T) {
	tpl := weeklyTemplate()
	tpl.Tipo = models.RecurrenceMonthly
	tpl.DiaMes = 31

	repo := newFakeApptRepo()
	svc := newExpanderService(repo, tpl)

	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("ExpandRecurring returned error: %v", err)
	}
	// June has 30 days; only 31/07 matches.
	if report.Created != 1 {
		t.Errorf("created = %d, want 1", report.Created)
	}
	if repo.appts[0].Data != "31/07/2024" {
		t.Errorf("date = %q, want 31/07/2024", repo.appts[0].Data)
	}
}

func TestExpandRecurringIdempotent(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newExpanderService(repo, weeklyTemplate())

	if _, err := svc.ExpandRecurring(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if report.Created != 0 {
		t.Errorf("second run created = %d, want 0", report.Created)
	}
	if report.Skipped != 9 {
		t.Errorf("second run skipped = %d, want 9", report.Skipped)
	}
	if len(repo.appts) != 9 {
		t.Errorf("re-run duplicated appointments: %d", len(repo.appts))
	}
}

func TestExpandRecurringSkipsInactive(t *testing.T) {
	tpl := weeklyTemplate()
	tpl.Ativo = false

	repo := newFakeApptRepo()
	svc := newExpanderService(repo, tpl)

	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("ExpandRecurring returned error: %v", err)
	}
	if report.Templates != 0 || report.Created != 0 {
		t.Errorf("inactive template expanded: %+v", report)
	}
}

func TestExpandRecurringDropsFullSlots(t *testing.T) {
	repo := newFakeApptRepo()
	// The first Monday is already at capacity.
	repo.counters[slotKey("03/06/2024", "10:00")] = models.SlotCapacity
	svc := newExpanderService(repo, weeklyTemplate())

	report, err := svc.ExpandRecurring(context.Background())
	if err != nil {
		t.Fatalf("ExpandRecurring returned error: %v", err)
	}
	if report.Created != 8 {
		t.Errorf("created = %d, want 8", report.Created)
	}
	if report.SlotsFull != 1 {
		t.Errorf("slotsFull = %d, want 1", report.SlotsFull)
	}
}
