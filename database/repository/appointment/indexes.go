// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the agendamentos and
// slot-counters collections.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	apptModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Availability queries and the day view filter on date
		{
			Keys:    bson.D{{Key: "data", Value: 1}, {Key: "hora", Value: 1}},
			Options: options.Index().SetName("data_hora_idx"),
		},
		// Recurring-expander dedup lookup
		{
			Keys:    bson.D{{Key: "data", Value: 1}, {Key: "hora", Value: 1}, {Key: "clientePhone", Value: 1}},
			Options: options.Index().SetName("data_hora_phone_idx"),
		},
		// Client history ordered by creation time
		{
			Keys:    bson.D{{Key: "clienteEmail", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("email_created_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, apptModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	// The unique (data, hora) index is what turns an at-cap upsert into a
	// duplicate key error in ReserveSlot.
	counterModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "data", Value: 1}, {Key: "hora", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_data_hora"),
	}
	if _, err := r.counters.Indexes().CreateOne(ctx, counterModel); err != nil {
		return fmt.Errorf("failed to create slot counter index: %w", err)
	}
	return nil
}
