package cron

import (
	"encoding/json"

	"afinare/models"
	"afinare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingEnqueuer hands booking events to the async worker. It implements
// the booking service's notifier hook; enqueueing is best effort and a
// failure never blocks the booking itself.
type BookingEnqueuer struct {
	client *asynq.Client
}

// NewBookingEnqueuer creates the asynq client for booking events.
func NewBookingEnqueuer() *BookingEnqueuer {
	return &BookingEnqueuer{client: asynq.NewClient(redisOpts())}
}

// BookingCreated enqueues an admin notification for a new appointment.
func (e *BookingEnqueuer) BookingCreated(appt models.Appointment) {
	payload, err := json.Marshal(appt)
	if err != nil {
		utils.GetLogger().Error("BookingCreated: failed to marshal payload", zap.Error(err))
		return
	}
	task := asynq.NewTask(TypeBookingCreated, payload)
	if _, err := e.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		utils.GetLogger().Error("BookingCreated: failed to enqueue notification",
			zap.String("appointment", appt.ID), zap.Error(err))
	}
}
