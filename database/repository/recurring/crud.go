// File: database/repository/recurring/crud.go
package recurringRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"afinare/models"
)

func (r *mongoRecurringRepo) Create(ctx context.Context, tpl *models.RecurringAppointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, tpl); err != nil {
		return "", fmt.Errorf("failed to insert recurring template: %w", err)
	}
	return tpl.ID, nil
}

func (r *mongoRecurringRepo) Update(ctx context.Context, tpl *models.RecurringAppointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": tpl.ID}, tpl)
	if err != nil {
		return fmt.Errorf("failed to update recurring template: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRecurringRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete recurring template: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRecurringRepo) GetByID(ctx context.Context, id string) (*models.RecurringAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tpl models.RecurringAppointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *mongoRecurringRepo) ListAll(ctx context.Context) ([]models.RecurringAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tpls []models.RecurringAppointment
	if err := cursor.All(ctx, &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}
