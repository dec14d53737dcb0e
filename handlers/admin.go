// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"afinare/services/booking"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office appointment views.
type AdminHandler struct {
	Service booking.BookingService
}

// ListAppointmentsHandler handles GET /api/admin/agendamentos.
// An optional ?data=DD/MM/YYYY query narrows the list to one day.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	if date := c.Query("data"); date != "" {
		appts, err := h.Service.ListAppointmentsByDate(ctx, date)
		if err != nil {
			logger.Error("Failed to list appointments by date", zap.String("data", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	appts, err := h.Service.ListAppointments(ctx)
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// AdminDayViewHandler handles GET /api/admin/agendamentos/dia/:data.
// It returns the day's appointments together with the slot occupancy
// snapshot, which is what the agenda screen renders.
func (h *AdminHandler) AdminDayViewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()
	date := c.Param("data")

	appts, err := h.Service.ListAppointmentsByDate(ctx, date)
	if err != nil {
		logger.Error("Failed to load day view", zap.String("data", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	avail, err := h.Service.GetAvailability(ctx, date)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load day availability", zap.String("data", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agendamentos":    appts,
		"disponibilidade": avail,
	})
}

// UpdateStatusHandler handles PATCH /api/admin/agendamentos/:id/status.
func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update appointment status",
				zap.String("id", id), zap.String("status", req.Status), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AppointmentStatsHandler handles GET /api/admin/agendamentos/stats.
// It tallies appointments per status for the dashboard cards.
func (h *AdminHandler) AppointmentStatsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	appts, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute appointment stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := make(map[string]int)
	for _, a := range appts {
		stats[a.Status]++
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     len(appts),
		"porStatus": stats,
	})
}
