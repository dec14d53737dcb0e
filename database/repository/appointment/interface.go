// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"afinare/database"
	"afinare/models"
	"afinare/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists appointments and the per-slot occupancy
// counters that enforce the booking cap at write time.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListAll(ctx context.Context) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Appointment, error)

	// OccupancyByDate tallies pending/confirmed appointments per time slot.
	OccupancyByDate(ctx context.Context, date string) (map[string]int, error)

	// ExistsByDateTimePhone backs the recurring expander's dedup check.
	ExistsByDateTimePhone(ctx context.Context, date, hora, phone string) (bool, error)

	// ReserveSlot atomically claims one unit of capacity for (date, hora),
	// failing with ErrSlotFull once the cap is reached. ReleaseSlot gives the
	// unit back when an appointment stops holding its slot.
	ReserveSlot(ctx context.Context, date, hora string) error
	ReleaseSlot(ctx context.Context, date, hora string) error
}

type mongoAppointmentRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
// ReserveSlot depends on the unique (data, hora) counter index, so index
// creation failure is fatal.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	repo := &mongoAppointmentRepo{
		coll:     db.Collection("agendamentos"),
		counters: db.Collection("slot-counters"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("appointment repo: failed to ensure indexes: %v", err)
	}
	return repo
}
