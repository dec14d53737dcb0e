// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"afinare/models"
	"afinare/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidPrice is returned for negative price values.
	ErrInvalidPrice = errors.New("preços não podem ser negativos")

	// ErrMissingName is returned when a catalog entry has no name to derive
	// its slug from.
	ErrMissingName = errors.New("nome inválido: não foi possível gerar o identificador")
)

const (
	cacheKeyServices = "catalog:servicos"
	cacheKeyCombos   = "catalog:combos"
	cacheKeyCourses  = "catalog:cursos"
	cacheTTL         = 5 * time.Minute
)

// cachedList serves a list read through the Redis cache. Cache failures are
// logged and fall through to the store; writes below invalidate the key.
func cachedList[T any](ctx context.Context, s *DefaultCatalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var items []T
			if err := json.Unmarshal([]byte(data), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *DefaultCatalogService) invalidate(ctx context.Context, key string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func validatePrices(original, promotional float64) error {
	if original < 0 || promotional < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return cachedList(ctx, s, cacheKeyServices, s.Repo.ListServices)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetService(ctx, id)
}

func (s *DefaultCatalogService) SaveService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := validatePrices(svc.PrecoOriginal, svc.PrecoPromocional); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = utils.Slugify(svc.Name)
	}
	if svc.ID == "" {
		return nil, ErrMissingName
	}
	if err := s.Repo.UpsertService(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyServices)
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.Repo.DeleteService(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyServices)
	return nil
}

func (s *DefaultCatalogService) ListCombos(ctx context.Context) ([]models.Combo, error) {
	return cachedList(ctx, s, cacheKeyCombos, s.Repo.ListCombos)
}

func (s *DefaultCatalogService) SaveCombo(ctx context.Context, combo *models.Combo) (*models.Combo, error) {
	if err := validatePrices(combo.PrecoOriginal, combo.PrecoPromocional); err != nil {
		return nil, err
	}
	if combo.ID == "" {
		combo.ID = utils.Slugify(combo.Name)
	}
	if combo.ID == "" {
		return nil, ErrMissingName
	}
	if err := s.Repo.UpsertCombo(ctx, combo); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyCombos)
	return combo, nil
}

func (s *DefaultCatalogService) DeleteCombo(ctx context.Context, id string) error {
	if err := s.Repo.DeleteCombo(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyCombos)
	return nil
}

func (s *DefaultCatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return cachedList(ctx, s, cacheKeyCourses, s.Repo.ListCourses)
}

func (s *DefaultCatalogService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.GetCourse(ctx, id)
}

func (s *DefaultCatalogService) SaveCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.Preco < 0 {
		return nil, ErrInvalidPrice
	}
	if course.ID == "" {
		course.ID = utils.Slugify(course.Name)
	}
	if course.ID == "" {
		return nil, ErrMissingName
	}
	if err := s.Repo.UpsertCourse(ctx, course); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyCourses)
	return course, nil
}

func (s *DefaultCatalogService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.Repo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyCourses)
	return nil
}
