// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	appointmentRepo "afinare/database/repository/appointment"
	catalogRepo "afinare/database/repository/catalog"
	recurringRepo "afinare/database/repository/recurring"
	settingsRepo "afinare/database/repository/settings"
	"afinare/models"
)

// BookingRequest carries the validated multi-step form input.
type BookingRequest struct {
	ServicoID    string `json:"servicoId" binding:"required"`
	Data         string `json:"data" binding:"required"`
	Hora         string `json:"hora" binding:"required"`
	ClienteNome  string `json:"clienteNome" binding:"required"`
	ClienteEmail string `json:"clienteEmail" binding:"required"`
	ClientePhone string `json:"clientePhone" binding:"required"`
}

// BookingResult is what a successful booking hands back to the client,
// including the pre-filled WhatsApp deep link side channel.
type BookingResult struct {
	Appointment models.Appointment `json:"appointment"`
	WhatsAppURL string             `json:"whatsappUrl,omitempty"`
}

// ExpansionReport summarizes one recurring-expander run.
type ExpansionReport struct {
	Created    int `json:"created"`
	Skipped    int `json:"skipped"`   // already materialized (date, hora, phone)
	SlotsFull  int `json:"slotsFull"` // dates dropped because the slot was at cap
	Templates  int `json:"templates"` // active templates considered
	WindowDays int `json:"windowDays"`
}

// BookingNotifier receives booking events for the admin side channel.
type BookingNotifier interface {
	BookingCreated(appt models.Appointment)
}

// BookingService is the core appointment engine: availability snapshots,
// cap-checked booking writes, status transitions and recurring expansion.
type BookingService interface {
	GetAvailability(ctx context.Context, date string) (*models.Availability, error)
	CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error)
	UpdateStatus(ctx context.Context, id, target string) (*models.Appointment, error)
	ExpandRecurring(ctx context.Context) (*ExpansionReport, error)

	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Recurring recurringRepo.RecurringRepository
	Catalog   catalogRepo.CatalogRepository
	Settings  settingsRepo.SettingsRepository
	Notifier  BookingNotifier

	// Now is overridable so date arithmetic is testable; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultBookingService) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.Repo.ListByDate(ctx, date)
}

func (s *DefaultBookingService) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	return s.Repo.ListByEmail(ctx, email)
}
