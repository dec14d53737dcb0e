// File: services/booking/booking_test.go
package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"afinare/models"
)

// fixedNow is a Monday.
var fixedNow = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

func newBookingService(repo *fakeApptRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: repo,
		Catalog: &fakeCatalogRepo{services: map[string]models.Service{
			"botox": {ID: "botox", Name: "Botox", PrecoOriginal: 800, PrecoPromocional: 600},
		}},
		Settings: &fakeSettingsRepo{cfg: &models.ClinicConfig{WhatsApp: "5561986543099"}},
		Now:      func() time.Time { return fixedNow },
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		ServicoID:    "botox",
		Data:         "10/06/2024",
		Hora:         "10:00",
		ClienteNome:  "Maria Silva",
		ClienteEmail: "maria@example.com",
		ClientePhone: "61999998888",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeApptRepo()
	notifier := &fakeNotifier{}
	svc := newBookingService(repo)
	svc.Notifier = notifier

	result, err := svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	appt := result.Appointment
	if appt.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", appt.Status, models.StatusPending)
	}
	if appt.ServicoNome != "Botox" || appt.ServicoPreco != 600 {
		t.Errorf("service snapshot = %q %.0f, want Botox 600", appt.ServicoNome, appt.ServicoPreco)
	}
	if repo.counters[slotKey("10/06/2024", "10:00")] != 1 {
		t.Errorf("slot counter = %d, want 1", repo.counters[slotKey("10/06/2024", "10:00")])
	}
	if len(notifier.created) != 1 {
		t.Errorf("notifier received %d events, want 1", len(notifier.created))
	}
	if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/5561986543099?text=") {
		t.Errorf("unexpected WhatsApp URL: %q", result.WhatsAppURL)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookingRequest)
		wantErr error
	}{
		{"missing name", func(r *BookingRequest) { r.ClienteNome = "  " }, ErrMissingFields},
		{"missing phone", func(r *BookingRequest) { r.ClientePhone = "" }, ErrMissingFields},
		{"invalid slot", func(r *BookingRequest) { r.Hora = "10:30" }, ErrInvalidSlot},
		{"invalid date", func(r *BookingRequest) { r.Data = "2024-06-10" }, ErrInvalidDate},
		{"sunday", func(r *BookingRequest) { r.Data = "09/06/2024" }, ErrSundayClosed},
		{"past date", func(r *BookingRequest) { r.Data = "01/06/2024" }, ErrPastDate},
		{"unknown service", func(r *BookingRequest) { r.ServicoID = "massagem" }, ErrUnknownService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo()
			svc := newBookingService(repo)

			req := validRequest()
			tt.mutate(&req)

			if _, err := svc.CreateBooking(context.Background(), req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.appts) != 0 {
				t.Errorf("rejected booking must not be persisted")
			}
			if repo.counters[slotKey(req.Data, req.Hora)] != 0 {
				t.Errorf("rejected booking must not hold capacity")
			}
		})
	}
}

func TestCreateBookingToday(t *testing.T) {
	svc := newBookingService(newFakeApptRepo())

	req := validRequest()
	req.Data = "03/06/2024" // same day as fixedNow

	if _, err := svc.CreateBooking(context.Background(), req); err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
}

func TestCreateBookingSlotFull(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newBookingService(repo)

	for i := 0; i < models.SlotCapacity; i++ {
		if _, err := svc.CreateBooking(context.Background(), validRequest()); err != nil {
			t.Fatalf("booking %d rejected: %v", i+1, err)
		}
	}

	if _, err := svc.CreateBooking(context.Background(), validRequest()); !errors.Is(err, ErrSlotFull) {
		t.Fatalf("err = %v, want ErrSlotFull", err)
	}
	if len(repo.appts) != models.SlotCapacity {
		t.Errorf("persisted %d appointments, want %d", len(repo.appts), models.SlotCapacity)
	}
}

func TestCreateBookingReleasesSlotOnInsertFailure(t *testing.T) {
	repo := newFakeApptRepo()
	repo.createErr = errors.New("write failed")
	svc := newBookingService(repo)

	if _, err := svc.CreateBooking(context.Background(), validRequest()); err == nil {
		t.Fatal("expected error when insert fails")
	}
	if repo.counters[slotKey("10/06/2024", "10:00")] != 0 {
		t.Errorf("claimed capacity must be released on insert failure")
	}
}
