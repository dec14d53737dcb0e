// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"afinare/database"
	"afinare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository persists the public catalog: services, combos and courses.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	UpsertService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string) error

	ListCombos(ctx context.Context) ([]models.Combo, error)
	UpsertCombo(ctx context.Context, combo *models.Combo) error
	DeleteCombo(ctx context.Context, id string) error

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	UpsertCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	combos   *mongo.Collection
	courses  *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services: db.Collection("servicos"),
		combos:   db.Collection("combos"),
		courses:  db.Collection("cursos"),
	}
}
