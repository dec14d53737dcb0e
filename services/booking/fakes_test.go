// File: services/booking/fakes_test.go
package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "afinare/database/repository/appointment"
	catalogRepo "afinare/database/repository/catalog"
	recurringRepo "afinare/database/repository/recurring"
	settingsRepo "afinare/database/repository/settings"
	"afinare/models"
)

// fakeApptRepo is an in-memory AppointmentRepository with the same capacity
// semantics as the Mongo implementation.
type fakeApptRepo struct {
	appts    []models.Appointment
	counters map[string]int
	nextID   int

	occupancyErr error
	createErr    error
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{counters: map[string]int{}}
}

func slotKey(date, hora string) string {
	return date + "|" + hora
}

func (r *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	if appt.ID == "" {
		r.nextID++
		appt.ID = fmt.Sprintf("appt-%d", r.nextID)
	}
	r.appts = append(r.appts, *appt)
	return appt.ID, nil
}

func (r *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			return &appt, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (r *fakeApptRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (r *fakeApptRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return append([]models.Appointment(nil), r.appts...), nil
}

func (r *fakeApptRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Data == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClienteEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) OccupancyByDate(ctx context.Context, date string) (map[string]int, error) {
	if r.occupancyErr != nil {
		return nil, r.occupancyErr
	}
	counts := map[string]int{}
	for _, a := range r.appts {
		if a.Data == date && models.HoldsSlot(a.Status) {
			counts[a.Hora]++
		}
	}
	return counts, nil
}

func (r *fakeApptRepo) ExistsByDateTimePhone(ctx context.Context, date, hora, phone string) (bool, error) {
	for _, a := range r.appts {
		if a.Data == date && a.Hora == hora && a.ClientePhone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApptRepo) ReserveSlot(ctx context.Context, date, hora string) error {
	key := slotKey(date, hora)
	if r.counters[key] >= models.SlotCapacity {
		return appointmentRepo.ErrSlotFull
	}
	r.counters[key]++
	return nil
}

func (r *fakeApptRepo) ReleaseSlot(ctx context.Context, date, hora string) error {
	key := slotKey(date, hora)
	if r.counters[key] > 0 {
		r.counters[key]--
	}
	return nil
}

// fakeCatalogRepo only answers GetService; the embedded interface panics on
// anything the booking service should never call.
type fakeCatalogRepo struct {
	catalogRepo.CatalogRepository
	services map[string]models.Service
}

func (r *fakeCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &svc, nil
}

type fakeRecurringRepo struct {
	recurringRepo.RecurringRepository
	templates []models.RecurringAppointment
}

func (r *fakeRecurringRepo) ListAll(ctx context.Context) ([]models.RecurringAppointment, error) {
	return append([]models.RecurringAppointment(nil), r.templates...), nil
}

type fakeSettingsRepo struct {
	settingsRepo.SettingsRepository
	cfg *models.ClinicConfig
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*models.ClinicConfig, error) {
	if r.cfg == nil {
		return nil, errors.New("not found")
	}
	return r.cfg, nil
}

type fakeNotifier struct {
	created []models.Appointment
}

func (n *fakeNotifier) BookingCreated(appt models.Appointment) {
	n.created = append(n.created, appt)
}
