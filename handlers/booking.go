// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"afinare/services/booking"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the appointment engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// GetAvailabilityHandler handles GET /api/agendamentos/availability?data=DD/MM/YYYY.
// If occupancy cannot be determined the request fails; no slot is ever
// reported free on a guess.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("data")

	avail, err := h.Service.GetAvailability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute availability", zap.String("data", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Não foi possível verificar a disponibilidade. Tente novamente."})
		return
	}
	c.JSON(http.StatusOK, avail)
}

// CreateBookingHandler handles POST /api/agendamentos.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrUnknownService):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrMissingFields),
			errors.Is(err, booking.ErrInvalidSlot),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrPastDate),
			errors.Is(err, booking.ErrSundayClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível concluir o agendamento."})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
