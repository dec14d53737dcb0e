// File: services/booking/recurring.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "afinare/database/repository/appointment"
	"afinare/models"
	"afinare/utils"

	"go.uber.org/zap"
)

// expansionWindowDays is the forward window materialized per expander run.
const expansionWindowDays = 60

// expandDates computes the concrete calendar dates matching a template's
// cadence between start and end (both inclusive). Months without the
// template's day-of-month contribute nothing.
func expandDates(tpl models.RecurringAppointment, start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch tpl.Tipo {
		case models.RecurrenceWeekly:
			if int(d.Weekday()) == tpl.DiaSemana {
				dates = append(dates, d)
			}
		case models.RecurrenceMonthly:
			if d.Day() == tpl.DiaMes {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

// ExpandRecurring materializes concrete appointments for every active
// template over the next 60 days. Dates already holding an identical
// (data, hora, clientePhone) appointment are skipped, which makes re-runs
// idempotent. Materialized appointments are created as confirmado and claim
// slot capacity like any other booking.
func (s *DefaultBookingService) ExpandRecurring(ctx context.Context) (*ExpansionReport, error) {
	logger := utils.GetLogger()

	templates, err := s.Recurring.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, expansionWindowDays)

	report := &ExpansionReport{WindowDays: expansionWindowDays}

	for _, tpl := range templates {
		if !tpl.Ativo {
			continue
		}
		report.Templates++

		for _, day := range expandDates(tpl, today, end) {
			date := day.Format(models.DateLayout)

			exists, err := s.Repo.ExistsByDateTimePhone(ctx, date, tpl.Hora, tpl.ClientePhone)
			if err != nil {
				return report, fmt.Errorf("dedup check failed for %s %s: %w", date, tpl.Hora, err)
			}
			if exists {
				report.Skipped++
				continue
			}

			if err := s.Repo.ReserveSlot(ctx, date, tpl.Hora); err != nil {
				if errors.Is(err, appointmentRepo.ErrSlotFull) {
					report.SlotsFull++
					logger.Warn("ExpandRecurring: slot at capacity, date dropped",
						zap.String("template", tpl.ID), zap.String("data", date), zap.String("hora", tpl.Hora))
					continue
				}
				return report, fmt.Errorf("failed to reserve slot %s %s: %w", date, tpl.Hora, err)
			}

			appt := models.Appointment{
				ClienteNome:  tpl.ClienteNome,
				ClienteEmail: tpl.ClienteEmail,
				ClientePhone: tpl.ClientePhone,
				ServicoID:    tpl.ServicoID,
				ServicoNome:  tpl.ServicoNome,
				ServicoPreco: tpl.ServicoPreco,
				Data:         date,
				Hora:         tpl.Hora,
				Status:       models.StatusConfirmed,
				IsRecurring:  true,
				RecurringID:  tpl.ID,
				CreatedAt:    s.now(),
			}
			if _, err := s.Repo.Create(ctx, &appt); err != nil {
				if relErr := s.Repo.ReleaseSlot(ctx, date, tpl.Hora); relErr != nil {
					logger.Error("ExpandRecurring: failed to release slot after insert failure",
						zap.String("data", date), zap.String("hora", tpl.Hora), zap.Error(relErr))
				}
				return report, fmt.Errorf("failed to materialize appointment for %s %s: %w", date, tpl.Hora, err)
			}
			report.Created++
		}
	}

	logger.Info("ExpandRecurring: run complete",
		zap.Int("templates", report.Templates),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("slotsFull", report.SlotsFull))
	return report, nil
}
