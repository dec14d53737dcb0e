// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"afinare/database"
	"afinare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository persists the singleton clinic config record.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.ClinicConfig, error)
	Save(ctx context.Context, cfg *models.ClinicConfig) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.DB()
	return &mongoSettingsRepo{
		coll: db.Collection("config"),
	}
}
