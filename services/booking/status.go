// File: services/booking/status.go
package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "afinare/database/repository/appointment"
	"afinare/models"
	"afinare/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the server-side status state machine. The admin UI
// historically implied these edges through which buttons it rendered; here
// they are enforced on the write path.
var allowedTransitions = map[string]map[string]bool{
	models.StatusPending:   {models.StatusConfirmed: true, models.StatusCancelled: true},
	models.StatusConfirmed: {models.StatusCompleted: true, models.StatusCancelled: true},
	models.StatusCompleted: {models.StatusCancelled: true},
	models.StatusCancelled: {models.StatusPending: true}, // reactivation
}

// CanTransition reports whether the status change from -> to is allowed.
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// UpdateStatus moves an appointment to the target status, rejecting
// transitions outside the state machine. Slot capacity follows the status:
// leaving pendente/confirmado frees the slot, reactivating a cancelled
// appointment re-claims it and can fail with ErrSlotFull.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, target string) (*models.Appointment, error) {
	if !models.IsValidStatus(target) {
		return nil, ErrUnknownStatus
	}

	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	if !CanTransition(appt.Status, target) {
		return nil, ErrInvalidTransition
	}

	wasHolding := models.HoldsSlot(appt.Status)
	willHold := models.HoldsSlot(target)

	// Re-claim capacity before the write so a full slot blocks reactivation.
	if !wasHolding && willHold {
		if err := s.Repo.ReserveSlot(ctx, appt.Data, appt.Hora); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotFull) {
				return nil, ErrSlotFull
			}
			return nil, fmt.Errorf("failed to re-claim slot: %w", err)
		}
	}

	if err := s.Repo.UpdateStatus(ctx, id, target); err != nil {
		if !wasHolding && willHold {
			if relErr := s.Repo.ReleaseSlot(ctx, appt.Data, appt.Hora); relErr != nil {
				utils.GetLogger().Error("UpdateStatus: failed to release re-claimed slot",
					zap.String("id", id), zap.Error(relErr))
			}
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if wasHolding && !willHold {
		if err := s.Repo.ReleaseSlot(ctx, appt.Data, appt.Hora); err != nil {
			utils.GetLogger().Error("UpdateStatus: failed to release slot",
				zap.String("id", id), zap.String("data", appt.Data), zap.String("hora", appt.Hora), zap.Error(err))
		}
	}

	appt.Status = target
	return appt, nil
}
