// File: services/catalog/catalog_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"afinare/models"
)

type memCatalogRepo struct {
	services map[string]models.Service
	combos   map[string]models.Combo
	courses  map[string]models.Course
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{
		services: map[string]models.Service{},
		combos:   map[string]models.Combo{},
		courses:  map[string]models.Course{},
	}
}

func (r *memCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *memCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (r *memCatalogRepo) UpsertService(ctx context.Context, svc *models.Service) error {
	r.services[svc.ID] = *svc
	return nil
}

func (r *memCatalogRepo) DeleteService(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return errors.New("not found")
	}
	delete(r.services, id)
	return nil
}

func (r *memCatalogRepo) ListCombos(ctx context.Context) ([]models.Combo, error) {
	var out []models.Combo
	for _, c := range r.combos {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCatalogRepo) UpsertCombo(ctx context.Context, combo *models.Combo) error {
	r.combos[combo.ID] = *combo
	return nil
}

func (r *memCatalogRepo) DeleteCombo(ctx context.Context, id string) error {
	if _, ok := r.combos[id]; !ok {
		return errors.New("not found")
	}
	delete(r.combos, id)
	return nil
}

func (r *memCatalogRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCatalogRepo) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &c, nil
}

func (r *memCatalogRepo) UpsertCourse(ctx context.Context, course *models.Course) error {
	r.courses[course.ID] = *course
	return nil
}

func (r *memCatalogRepo) DeleteCourse(ctx context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return errors.New("not found")
	}
	delete(r.courses, id)
	return nil
}

func TestSaveServiceDerivesSlug(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	saved, err := svc.SaveService(context.Background(), &models.Service{
		Name:             "Limpeza de Pele Profunda",
		PrecoOriginal:    200,
		PrecoPromocional: 150,
	})
	if err != nil {
		t.Fatalf("SaveService returned error: %v", err)
	}
	if saved.ID != "limpeza-de-pele-profunda" {
		t.Errorf("id = %q, want limpeza-de-pele-profunda", saved.ID)
	}
	if _, ok := repo.services[saved.ID]; !ok {
		t.Errorf("service not persisted under derived slug")
	}
}

func TestSaveServiceKeepsExplicitID(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	saved, err := svc.SaveService(context.Background(), &models.Service{
		ID:   "botox",
		Name: "Botox Full Face",
	})
	if err != nil {
		t.Fatalf("SaveService returned error: %v", err)
	}
	if saved.ID != "botox" {
		t.Errorf("id = %q, explicit id must be preserved", saved.ID)
	}
}

func TestSaveServiceRejectsNegativePrices(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemCatalogRepo()}

	_, err := svc.SaveService(context.Background(), &models.Service{
		Name:          "Peeling",
		PrecoOriginal: -10,
	})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("err = %v, want ErrInvalidPrice", err)
	}
}

func TestSaveServiceRejectsUnsluggableName(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemCatalogRepo()}

	_, err := svc.SaveService(context.Background(), &models.Service{Name: "???"})
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("err = %v, want ErrMissingName", err)
	}
}

func TestSeedIsIdempotentAndPreservesEdits(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	ctx := context.Background()

	first, err := svc.SeedServices(ctx)
	if err != nil {
		t.Fatalf("SeedServices returned error: %v", err)
	}
	if first == 0 {
		t.Fatal("first seed inserted nothing")
	}

	// Edit one seeded entry, then re-seed.
	var editedID string
	for id, s := range repo.services {
		s.PrecoPromocional = 1
		repo.services[id] = s
		editedID = id
		break
	}

	second, err := svc.SeedServices(ctx)
	if err != nil {
		t.Fatalf("second SeedServices returned error: %v", err)
	}
	if second != 0 {
		t.Errorf("second seed inserted %d entries, want 0", second)
	}
	if repo.services[editedID].PrecoPromocional != 1 {
		t.Errorf("seed overwrote an existing document")
	}
}

func TestSeedCombosAndCourses(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	ctx := context.Background()

	combos, err := svc.SeedCombos(ctx)
	if err != nil {
		t.Fatalf("SeedCombos returned error: %v", err)
	}
	if combos != len(repo.combos) || combos == 0 {
		t.Errorf("combos seeded = %d, stored = %d", combos, len(repo.combos))
	}

	courses, err := svc.SeedCourses(ctx)
	if err != nil {
		t.Fatalf("SeedCourses returned error: %v", err)
	}
	if courses != len(repo.courses) || courses == 0 {
		t.Errorf("courses seeded = %d, stored = %d", courses, len(repo.courses))
	}
}

func TestDeleteServiceRemoves(t *testing.T) {
	repo := newMemCatalogRepo()
	repo.services["botox"] = models.Service{ID: "botox", Name: "Botox"}
	svc := &DefaultCatalogService{Repo: repo}

	if err := svc.DeleteService(context.Background(), "botox"); err != nil {
		t.Fatalf("DeleteService returned error: %v", err)
	}
	if _, ok := repo.services["botox"]; ok {
		t.Error("service still present after delete")
	}
}
