package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"afinare/config"
	"afinare/models"
	"afinare/services/notification"

	"github.com/hibiken/asynq"
)

const TypeBookingCreated = "booking:created"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingWorker runs the async notification worker in background.
func InitBookingWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingCreated, handleBookingCreated(notifSvc))

	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingCreated(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var appt models.Appointment
		if err := json.Unmarshal(t.Payload(), &appt); err != nil {
			log.Printf("[BookingWorker] bad payload: %v", err)
			return nil // not retryable
		}
		return notifSvc.NotifyAdminsNewBooking(ctx, appt)
	}
}
