// File: handlers/settings.go
package handlers

import (
	"net/http"

	settingsRepo "afinare/database/repository/settings"
	"afinare/models"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler serves the clinic config singleton.
type SettingsHandler struct {
	Repo settingsRepo.SettingsRepository
}

// GetSettingsHandler handles GET /api/config. Public: the storefront needs
// the WhatsApp number and opening hours.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	cfg, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load clinic config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateSettingsHandler handles PUT /api/admin/config. The document is a
// singleton; the write replaces it whole.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var cfg models.ClinicConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Repo.Save(c.Request.Context(), &cfg); err != nil {
		logger.Error("Failed to save clinic config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
