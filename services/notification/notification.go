// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"afinare/models"
	"afinare/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotifyAdminsNewBooking pushes a booking summary to every admin device with
// a registered FCM token. Individual send failures are logged but do not stop
// the remaining sends.
func (s *DefaultNotificationService) NotifyAdminsNewBooking(ctx context.Context, appt models.Appointment) error {
	logger := utils.GetLogger()

	admins, err := s.Users.ListAdmins(ctx)
	if err != nil {
		return fmt.Errorf("NotifyAdminsNewBooking: could not list admins: %w", err)
	}

	title := "Novo agendamento"
	body := fmt.Sprintf("%s - %s às %s (%s)", appt.ClienteNome, appt.Data, appt.Hora, appt.ServicoNome)

	sent := 0
	for _, admin := range admins {
		if admin.FCMToken == "" {
			continue
		}
		msg := &messaging.Message{
			Token: admin.FCMToken,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: map[string]string{
				"appointmentId": appt.ID,
				"data":          appt.Data,
				"hora":          appt.Hora,
			},
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			logger.Warn("NotifyAdminsNewBooking: push failed",
				zap.String("admin", admin.ID), zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("NotifyAdminsNewBooking: pushes sent",
		zap.String("appointment", appt.ID), zap.Int("sent", sent))
	return nil
}
