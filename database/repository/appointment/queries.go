// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"afinare/models"
)

// OccupancyByDate tallies appointments per time slot for the given date.
// Only statuses that hold capacity (pendente, confirmado) are counted.
func (r *mongoAppointmentRepo) OccupancyByDate(ctx context.Context, date string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"data":   date,
			"status": bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
		}},
		{"$group": bson.M{
			"_id":   "$hora",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate slot occupancy: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Hora  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode slot occupancy: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Hora] = row.Count
	}
	return counts, nil
}

// ExistsByDateTimePhone reports whether an appointment with the identical
// (data, hora, clientePhone) triple already exists.
func (r *mongoAppointmentRepo) ExistsByDateTimePhone(ctx context.Context, date, hora, phone string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"data": date, "hora": hora, "clientePhone": phone}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing appointment: %w", err)
	}
	return n > 0, nil
}
