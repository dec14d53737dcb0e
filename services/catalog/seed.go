// File: services/catalog/seed.go
package catalog

import (
	"context"
	"fmt"

	"afinare/models"
)

// Stock catalog inserted by the admin "initialize" actions. Seeding only adds
// entries whose id is not already present, so it never overwrites edits.

var defaultServices = []models.Service{
	{ID: "massagens", Name: "Massagens", Description: "Massagens relaxantes e terapêuticas para alívio do estresse, tensão muscular e promoção do bem-estar geral.", PrecoOriginal: 200, PrecoPromocional: 150, Category: "wellness"},
	{ID: "limpeza-facial", Name: "Limpeza Facial", Description: "Tratamento facial profundo para remoção de impurezas, desobstrução de poros e renovação da pele.", PrecoOriginal: 160, PrecoPromocional: 120, Category: "facial"},
	{ID: "acupuntura", Name: "Acupuntura", Description: "Terapia milenar chinesa para equilíbrio energético, alívio de dores e promoção da saúde integral.", PrecoOriginal: 180, PrecoPromocional: 140, Category: "wellness"},
	{ID: "terapias-combinadas", Name: "Terapias Combinadas", Description: "Protocolos personalizados que combinam diferentes técnicas para resultados otimizados.", PrecoOriginal: 300, PrecoPromocional: 250, Category: "wellness"},
	{ID: "criolipolise", Name: "Criolipólise", Description: "Redução de gordura localizada através do congelamento controlado das células adiposas.", PrecoOriginal: 800, PrecoPromocional: 650, Category: "body"},
	{ID: "depilacao-cera", Name: "Depilação à Cera", Description: "Depilação profissional com cera de alta qualidade para uma pele lisa e macia por mais tempo.", PrecoOriginal: 100, PrecoPromocional: 80, Category: "body"},
	{ID: "epilacao-laser", Name: "Epilação a Laser", Description: "Remoção definitiva de pelos com tecnologia laser, segura e eficaz para todos os tipos de pele.", PrecoOriginal: 400, PrecoPromocional: 320, Category: "laser"},
	{ID: "botox", Name: "Botox", Description: "Tratamento para suavizar rugas e linhas de expressão, proporcionando aspecto rejuvenescido.", PrecoOriginal: 500, PrecoPromocional: 400, Category: "injectable"},
	{ID: "peelings", Name: "Peelings", Description: "Peelings de diamante, mar morto e outros para renovação celular e tratamento de imperfeições.", PrecoOriginal: 250, PrecoPromocional: 200, Category: "facial"},
	{ID: "remocao-tatuagens", Name: "Remoção de Tatuagens", Description: "Remoção segura e eficaz de tatuagens com tecnologia laser de última geração.", PrecoOriginal: 350, PrecoPromocional: 280, Category: "laser"},
	{ID: "despigmentacao-sobrancelhas", Name: "Despigmentação de Sobrancelhas", Description: "Correção da pigmentação das sobrancelhas para um visual natural e harmonioso.", PrecoOriginal: 300, PrecoPromocional: 240, Category: "laser"},
	{ID: "lipo-enzimatica", Name: "Lipo Enzimática", Description: "Redução de medidas através da aplicação de enzimas que dissolvem a gordura localizada.", PrecoOriginal: 450, PrecoPromocional: 360, Category: "body"},
	{ID: "hidrolipoclasia", Name: "Hidrolipoclasia", Description: "Tratamento para redução de gordura localizada através da infusão de solução fisiológica.", PrecoOriginal: 500, PrecoPromocional: 400, Category: "body"},
}

var defaultCombos = []models.Combo{
	{ID: "beleza-completa", Name: "Beleza Completa", Description: "Limpeza Facial + Drenagem Linfática + Acupuntura", Services: []string{"Limpeza Facial", "Drenagem Linfática", "Acupuntura"}, PrecoOriginal: 450, PrecoPromocional: 350, Economia: 100, Sessions: 3},
	{ID: "rejuvenescimento-total", Name: "Rejuvenescimento Total", Description: "Botox + Limpeza Facial + Drenagem", Services: []string{"Botox", "Limpeza Facial", "Drenagem Linfática"}, PrecoOriginal: 670, PrecoPromocional: 550, Economia: 120, Sessions: 3},
	{ID: "relaxamento-profundo", Name: "Relaxamento Profundo", Description: "Acupuntura + Massagem + Drenagem", Services: []string{"Acupuntura", "Massagens", "Drenagem Linfática"}, PrecoOriginal: 450, PrecoPromocional: 320, Economia: 130, Sessions: 3},
	{ID: "pele-perfeita", Name: "Pele Perfeita", Description: "Pacote de 4 Limpezas Faciais", Services: []string{"4 Sessões de Limpeza Facial"}, PrecoOriginal: 640, PrecoPromocional: 420, Economia: 220, Sessions: 4},
}

var defaultCourses = []models.Course{
	{
		ID:          "curso-remocao-tatuagem-laser",
		Name:        "Curso de Remoção de Tatuagem a Laser",
		Description: "Aprenda a técnica mais moderna e segura de remoção de tatuagens com laser Q-Switched",
		Preco:       3500,
		Duration:    "40 horas",
		Format:      "Presencial + Material Online",
		Certificate: "Certificado de Conclusão",
		Students:    "Turmas de até 8 alunos",
		Benefits: []string{
			"Teoria completa sobre tipos de pele e tatuagens",
			"Prática supervisionada com equipamentos profissionais",
			"Protocolos de segurança e biossegurança",
			"Gestão de clientes e precificação",
			"Material didático completo",
			"Certificado reconhecido",
			"Suporte pós-curso",
			"Networking com profissionais da área",
		},
		Modules: []models.CourseModule{
			{Title: "Módulo 1: Fundamentos", Topics: []string{"Anatomia da pele", "Tipos de tatuagens", "Tecnologia laser", "Segurança e biossegurança"}},
			{Title: "Módulo 2: Prática", Topics: []string{"Manuseio do equipamento", "Protocolos de tratamento", "Gestão de expectativas", "Casos práticos supervisionados"}},
			{Title: "Módulo 3: Gestão", Topics: []string{"Precificação de serviços", "Marketing e captação", "Gestão de clientes", "Aspectos legais"}},
		},
		TargetAudience: []string{"Esteticistas", "Biomédicos", "Enfermeiros", "Profissionais da área da saúde e estética", "Empreendedores do setor"},
	},
}

// SeedServices inserts the stock services missing from the store and returns
// how many were added.
func (s *DefaultCatalogService) SeedServices(ctx context.Context) (int, error) {
	existing, err := s.Repo.ListServices(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list services before seeding: %w", err)
	}
	ids := make(map[string]bool, len(existing))
	for _, svc := range existing {
		ids[svc.ID] = true
	}

	added := 0
	for _, svc := range defaultServices {
		if ids[svc.ID] {
			continue
		}
		svc := svc
		if err := s.Repo.UpsertService(ctx, &svc); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.invalidate(ctx, cacheKeyServices)
	}
	return added, nil
}

// SeedCombos inserts the stock combos missing from the store.
func (s *DefaultCatalogService) SeedCombos(ctx context.Context) (int, error) {
	existing, err := s.Repo.ListCombos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list combos before seeding: %w", err)
	}
	ids := make(map[string]bool, len(existing))
	for _, combo := range existing {
		ids[combo.ID] = true
	}

	added := 0
	for _, combo := range defaultCombos {
		if ids[combo.ID] {
			continue
		}
		combo := combo
		if err := s.Repo.UpsertCombo(ctx, &combo); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.invalidate(ctx, cacheKeyCombos)
	}
	return added, nil
}

// SeedCourses inserts the stock courses missing from the store.
func (s *DefaultCatalogService) SeedCourses(ctx context.Context) (int, error) {
	existing, err := s.Repo.ListCourses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list courses before seeding: %w", err)
	}
	ids := make(map[string]bool, len(existing))
	for _, course := range existing {
		ids[course.ID] = true
	}

	added := 0
	for _, course := range defaultCourses {
		if ids[course.ID] {
			continue
		}
		course := course
		if err := s.Repo.UpsertCourse(ctx, &course); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.invalidate(ctx, cacheKeyCourses)
	}
	return added, nil
}
