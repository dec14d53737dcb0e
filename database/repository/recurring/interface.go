// File: database/repository/recurring/interface.go
package recurringRepo

import (
	"context"

	"afinare/database"
	"afinare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecurringRepository persists recurring appointment templates.
type RecurringRepository interface {
	Create(ctx context.Context, tpl *models.RecurringAppointment) (string, error)
	Update(ctx context.Context, tpl *models.RecurringAppointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.RecurringAppointment, error)
	ListAll(ctx context.Context) ([]models.RecurringAppointment, error)
}

type mongoRecurringRepo struct {
	coll *mongo.Collection
}

// NewMongoRecurringRepo constructs a new MongoDB RecurringRepository.
func NewMongoRecurringRepo() RecurringRepository {
	db := database.DB()
	return &mongoRecurringRepo{
		coll: db.Collection("agendamentos-fixos"),
	}
}
