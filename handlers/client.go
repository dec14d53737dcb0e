// File: handlers/client.go
package handlers

import (
	"net/http"

	"afinare/services/booking"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves the signed-in client's own booking history.
type ClientHandler struct {
	Service booking.BookingService
}

// MyAppointmentsHandler handles GET /api/users/agendamentos. History is keyed
// by the session's e-mail, so bookings made before the account existed are
// still included.
func (h *ClientHandler) MyAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	emailVal, ok := c.Get("userEmail")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	email, ok := emailVal.(string)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	appts, err := h.Service.ListAppointmentsByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list client appointments", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}
