// File: services/notification/interface.go
package notification

import (
	"context"

	userRepo "afinare/database/repository/user"
	"afinare/models"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	NotifyAdminsNewBooking(ctx context.Context, appt models.Appointment) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// NewDefaultNotificationService wires the service to the user store, where
// admin devices register their FCM tokens.
func NewDefaultNotificationService(users userRepo.UserRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Users: users}
}
