// File: database/repository/catalog/courses.go
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

func (r *mongoCatalogRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.courses.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCatalogRepo) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := r.courses.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *mongoCatalogRepo) UpsertCourse(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.courses.ReplaceOne(ctx, bson.M{"id": course.ID}, course, opts); err != nil {
		return fmt.Errorf("failed to upsert course: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) DeleteCourse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.courses.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
