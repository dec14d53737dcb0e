// File: services/booking/availability.go
package booking

import (
	"context"
	"fmt"

	"afinare/models"
	"afinare/utils"

	"go.uber.org/zap"
)

// GetAvailability returns the occupancy snapshot for one date: a per-slot
// count of pending/confirmed appointments and the subset of slots at cap.
//
// A failed read fails closed: the error propagates instead of silently
// presenting every slot as available.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, date string) (*models.Availability, error) {
	if date == "" {
		return &models.Availability{Counts: map[string]int{}, FullSlots: []string{}}, nil
	}
	if _, err := parseBookingDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	counts, err := s.Repo.OccupancyByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Error("GetAvailability: occupancy query failed",
			zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to load availability for %s: %w", date, err)
	}

	fullSlots := []string{}
	for _, slot := range models.TimeSlots {
		if counts[slot] >= models.SlotCapacity {
			fullSlots = append(fullSlots, slot)
		}
	}

	return &models.Availability{
		Date:      date,
		Counts:    counts,
		FullSlots: fullSlots,
	}, nil
}
