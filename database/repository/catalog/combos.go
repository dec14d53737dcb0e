// File: database/repository/catalog/combos.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"afinare/models"
)

func (r *mongoCatalogRepo) ListCombos(ctx context.Context) ([]models.Combo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.combos.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var combos []models.Combo
	if err := cursor.All(ctx, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

func (r *mongoCatalogRepo) UpsertCombo(ctx context.Context, combo *models.Combo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.combos.ReplaceOne(ctx, bson.M{"id": combo.ID}, combo, opts); err != nil {
		return fmt.Errorf("failed to upsert combo: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) DeleteCombo(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.combos.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete combo: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
