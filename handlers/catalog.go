// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"afinare/models"
	"afinare/services/catalog"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public catalog and its admin CRUD.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// ListServicesHandler handles GET /api/servicos.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	svcs, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// GetServiceHandler handles GET /api/servicos/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Service.GetService(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "serviço não encontrado"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListCombosHandler handles GET /api/combos.
func (h *CatalogHandler) ListCombosHandler(c *gin.Context) {
	logger := utils.GetLogger()
	combos, err := h.Service.ListCombos(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list combos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, combos)
}

// ListCoursesHandler handles GET /api/cursos.
func (h *CatalogHandler) ListCoursesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	courses, err := h.Service.ListCourses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseHandler handles GET /api/cursos/:id.
func (h *CatalogHandler) GetCourseHandler(c *gin.Context) {
	id := c.Param("id")
	course, err := h.Service.GetCourse(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "curso não encontrado"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// SaveServiceHandler handles PUT /api/admin/servicos.
func (h *CatalogHandler) SaveServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.SaveService(c.Request.Context(), &svc)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPrice) || errors.Is(err, catalog.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteServiceHandler handles DELETE /api/admin/servicos/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteService(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço removido"})
}

// SaveComboHandler handles PUT /api/admin/combos.
func (h *CatalogHandler) SaveComboHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var combo models.Combo
	if err := c.ShouldBindJSON(&combo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.SaveCombo(c.Request.Context(), &combo)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPrice) || errors.Is(err, catalog.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save combo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteComboHandler handles DELETE /api/admin/combos/:id.
func (h *CatalogHandler) DeleteComboHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteCombo(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete combo", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Combo removido"})
}

// SaveCourseHandler handles PUT /api/admin/cursos.
func (h *CatalogHandler) SaveCourseHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.SaveCourse(c.Request.Context(), &course)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPrice) || errors.Is(err, catalog.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteCourseHandler handles DELETE /api/admin/cursos/:id.
func (h *CatalogHandler) DeleteCourseHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteCourse(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete course", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Curso removido"})
}

// SeedCatalogHandler handles POST /api/admin/catalogo/seed.
// Seeding inserts only entries whose id is absent; existing documents are
// never overwritten.
func (h *CatalogHandler) SeedCatalogHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	svcCount, err := h.Service.SeedServices(ctx)
	if err != nil {
		logger.Error("Failed to seed services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	comboCount, err := h.Service.SeedCombos(ctx)
	if err != nil {
		logger.Error("Failed to seed combos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	courseCount, err := h.Service.SeedCourses(ctx)
	if err != nil {
		logger.Error("Failed to seed courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"servicos": svcCount,
		"combos":   comboCount,
		"cursos":   courseCount,
	})
}
