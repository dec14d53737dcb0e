// File: database/repository/appointment/counters.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"afinare/models"
)

// ErrSlotFull indicates the (date, hora) slot has reached its booking cap.
var ErrSlotFull = errors.New("slot capacity reached")

// ReserveSlot claims one unit of capacity for the slot. The filter only
// matches counters below the cap, so the increment can never overshoot.
//
// A duplicate key error does not by itself mean the slot is full: two
// requests racing to create the same fresh counter both miss the filter and
// both attempt the upsert insert, and the unique (data, hora) index rejects
// the loser even though capacity remains. Per Mongo's documented upsert-race
// behavior the loser retries the same update without upsert; only when that
// retry matches nothing is the counter genuinely at the cap.
func (r *mongoAppointmentRepo) ReserveSlot(ctx context.Context, date, hora string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"data":  date,
		"hora":  hora,
		"count": bson.M{"$lt": models.SlotCapacity},
	}
	update := bson.M{"$inc": bson.M{"count": 1}}

	_, err := r.counters.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	res, err := r.counters.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotFull
	}
	return nil
}

// ReleaseSlot gives one unit of capacity back. Releasing an unknown or
// already-empty counter is a no-op.
func (r *mongoAppointmentRepo) ReleaseSlot(ctx context.Context, date, hora string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"data":  date,
		"hora":  hora,
		"count": bson.M{"$gt": 0},
	}
	update := bson.M{"$inc": bson.M{"count": -1}}

	if _, err := r.counters.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	return nil
}
