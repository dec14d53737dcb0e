// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"afinare/models"
)

// The config collection holds a single document addressed by a fixed id.
const singletonID = "clinic"

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.ClinicConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cfg models.ClinicConfig
	if err := r.coll.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoSettingsRepo) Save(ctx context.Context, cfg *models.ClinicConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := bson.M{
		"_id":       singletonID,
		"whatsapp":  cfg.WhatsApp,
		"instagram": cfg.Instagram,
		"endereco":  cfg.Endereco,
		"horarios":  cfg.Horarios,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": singletonID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save clinic config: %w", err)
	}
	return nil
}
