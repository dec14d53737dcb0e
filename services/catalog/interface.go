// File: services/catalog/interface.go
package catalog

import (
	"context"

	catalogRepo "afinare/database/repository/catalog"
	"afinare/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService manages the public catalog entities and their cached reads.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	SaveService(ctx context.Context, svc *models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	SeedServices(ctx context.Context) (int, error)

	ListCombos(ctx context.Context) ([]models.Combo, error)
	SaveCombo(ctx context.Context, combo *models.Combo) (*models.Combo, error)
	DeleteCombo(ctx context.Context, id string) error
	SeedCombos(ctx context.Context) (int, error)

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	SaveCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	SeedCourses(ctx context.Context) (int, error)
}

// DefaultCatalogService is the production implementation. Cache is optional;
// a nil client disables caching entirely.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}
