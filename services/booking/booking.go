// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "afinare/database/repository/appointment"
	"afinare/models"
	"afinare/utils"

	"go.uber.org/zap"
)

func parseBookingDate(date string) (time.Time, error) {
	return time.Parse(models.DateLayout, date)
}

func (s *DefaultBookingService) validateBookingRequest(req BookingRequest) (time.Time, error) {
	if strings.TrimSpace(req.ServicoID) == "" ||
		strings.TrimSpace(req.Data) == "" ||
		strings.TrimSpace(req.Hora) == "" ||
		strings.TrimSpace(req.ClienteNome) == "" ||
		strings.TrimSpace(req.ClienteEmail) == "" ||
		strings.TrimSpace(req.ClientePhone) == "" {
		return time.Time{}, ErrMissingFields
	}
	if !models.IsValidSlot(req.Hora) {
		return time.Time{}, ErrInvalidSlot
	}

	day, err := parseBookingDate(req.Data)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if day.Weekday() == time.Sunday {
		return time.Time{}, ErrSundayClosed
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return time.Time{}, ErrPastDate
	}
	return day, nil
}

// CreateBooking validates the form input, claims slot capacity atomically and
// persists a new pending appointment. The returned result carries the WhatsApp
// deep link the client device opens with the booking summary.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	logger := utils.GetLogger()

	if _, err := s.validateBookingRequest(req); err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetService(ctx, req.ServicoID)
	if err != nil {
		return nil, ErrUnknownService
	}

	// Capacity is claimed before the insert; a full slot never reaches the
	// appointment collection.
	if err := s.Repo.ReserveSlot(ctx, req.Data, req.Hora); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotFull) {
			return nil, ErrSlotFull
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	appt := models.Appointment{
		ClienteNome:  strings.TrimSpace(req.ClienteNome),
		ClienteEmail: strings.TrimSpace(req.ClienteEmail),
		ClientePhone: strings.TrimSpace(req.ClientePhone),
		ServicoID:    svc.ID,
		ServicoNome:  svc.Name,
		ServicoPreco: svc.PrecoPromocional,
		Data:         req.Data,
		Hora:         req.Hora,
		Status:       models.StatusPending,
		CreatedAt:    s.now(),
	}

	if _, err := s.Repo.Create(ctx, &appt); err != nil {
		// Give the claimed capacity back; the booking never existed.
		if relErr := s.Repo.ReleaseSlot(ctx, req.Data, req.Hora); relErr != nil {
			logger.Error("CreateBooking: failed to release slot after insert failure",
				zap.String("data", req.Data), zap.String("hora", req.Hora), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}

	logger.Info("CreateBooking: appointment created",
		zap.String("id", appt.ID), zap.String("data", appt.Data), zap.String("hora", appt.Hora))

	if s.Notifier != nil {
		s.Notifier.BookingCreated(appt)
	}

	return &BookingResult{
		Appointment: appt,
		WhatsAppURL: s.whatsAppLink(ctx, appt),
	}, nil
}
