// File: handlers/recurring.go
package handlers

import (
	"net/http"

	recurringRepo "afinare/database/repository/recurring"
	"afinare/models"
	"afinare/services/booking"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecurringHandler manages recurring appointment templates and triggers
// their expansion into concrete appointments.
type RecurringHandler struct {
	Repo    recurringRepo.RecurringRepository
	Service booking.BookingService
}

// ListRecurringHandler handles GET /api/admin/agendamentos-fixos.
func (h *RecurringHandler) ListRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()
	tpls, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recurring templates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpls)
}

// CreateRecurringHandler handles POST /api/admin/agendamentos-fixos.
func (h *RecurringHandler) CreateRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var tpl models.RecurringAppointment
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := validateRecurring(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &tpl)
	if err != nil {
		logger.Error("Failed to create recurring template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	tpl.ID = id
	c.JSON(http.StatusCreated, tpl)
}

// UpdateRecurringHandler handles PUT /api/admin/agendamentos-fixos/:id.
func (h *RecurringHandler) UpdateRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var tpl models.RecurringAppointment
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	tpl.ID = id
	if err := validateRecurring(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &tpl); err != nil {
		logger.Error("Failed to update recurring template", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeleteRecurringHandler handles DELETE /api/admin/agendamentos-fixos/:id.
// Already materialized appointments are left untouched.
func (h *RecurringHandler) DeleteRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete recurring template", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agendamento fixo removido"})
}

// ExpandRecurringHandler handles POST /api/admin/agendamentos-fixos/expandir.
func (h *RecurringHandler) ExpandRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()

	report, err := h.Service.ExpandRecurring(c.Request.Context())
	if err != nil {
		logger.Error("Recurring expansion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func validateRecurring(tpl *models.RecurringAppointment) error {
	if !models.IsValidSlot(tpl.Hora) {
		return booking.ErrInvalidSlot
	}
	switch tpl.Tipo {
	case models.RecurrenceWeekly:
		if tpl.DiaSemana < 0 || tpl.DiaSemana > 6 {
			return booking.ErrInvalidRecurrence
		}
	case models.RecurrenceMonthly:
		if tpl.DiaMes < 1 || tpl.DiaMes > 31 {
			return booking.ErrInvalidRecurrence
		}
	default:
		return booking.ErrInvalidRecurrence
	}
	return nil
}
