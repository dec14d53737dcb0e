// File: services/booking/status_test.go
package booking

import (
	"context"
	"errors"
	"testing"

	"afinare/models"
)

func seedAppointment(repo *fakeApptRepo, status string) models.Appointment {
	appt := models.Appointment{
		ID:     "appt-x",
		Data:   "10/06/2024",
		Hora:   "10:00",
		Status: status,
	}
	repo.appts = append(repo.appts, appt)
	if models.HoldsSlot(status) {
		repo.counters[slotKey(appt.Data, appt.Hora)]++
	}
	return appt
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusCompleted, models.StatusCancelled, true},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusPending, true},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			repo := newFakeApptRepo()
			appt := seedAppointment(repo, tt.from)
			svc := &DefaultBookingService{Repo: repo}

			updated, err := svc.UpdateStatus(context.Background(), appt.ID, tt.to)
			if tt.allowed {
				if err != nil {
					t.Fatalf("transition rejected: %v", err)
				}
				if updated.Status != tt.to {
					t.Errorf("status = %q, want %q", updated.Status, tt.to)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("err = %v, want ErrInvalidTransition", err)
			}
			stored, _ := repo.GetByID(context.Background(), appt.ID)
			if stored.Status != tt.from {
				t.Errorf("stored status changed to %q on rejected transition", stored.Status)
			}
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := newFakeApptRepo()
	appt := seedAppointment(repo, models.StatusPending)
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, "agendado"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	repo := newFakeApptRepo()
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.UpdateStatus(context.Background(), "no-such-id", models.StatusConfirmed); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}
}

func TestUpdateStatusReleasesCapacity(t *testing.T) {
	repo := newFakeApptRepo()
	appt := seedAppointment(repo, models.StatusConfirmed)
	svc := &DefaultBookingService{Repo: repo}
	key := slotKey(appt.Data, appt.Hora)

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if repo.counters[key] != 0 {
		t.Errorf("counter = %d after cancel, want 0", repo.counters[key])
	}
}

func TestUpdateStatusReactivationReclaimsCapacity(t *testing.T) {
	repo := newFakeApptRepo()
	appt := seedAppointment(repo, models.StatusCancelled)
	svc := &DefaultBookingService{Repo: repo}
	key := slotKey(appt.Data, appt.Hora)

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusPending); err != nil {
		t.Fatalf("reactivation failed: %v", err)
	}
	if repo.counters[key] != 1 {
		t.Errorf("counter = %d after reactivation, want 1", repo.counters[key])
	}
}

func TestUpdateStatusReactivationBlockedWhenSlotFull(t *testing.T) {
	repo := newFakeApptRepo()
	appt := seedAppointment(repo, models.StatusCancelled)
	// Other bookings have since filled the slot.
	repo.counters[slotKey(appt.Data, appt.Hora)] = models.SlotCapacity
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusPending); !errors.Is(err, ErrSlotFull) {
		t.Fatalf("err = %v, want ErrSlotFull", err)
	}
	stored, _ := repo.GetByID(context.Background(), appt.ID)
	if stored.Status != models.StatusCancelled {
		t.Errorf("status changed to %q despite full slot", stored.Status)
	}
}
