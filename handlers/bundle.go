// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "afinare/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Public booking endpoints
	GetAvailabilityHandler gin.HandlerFunc
	CreateBookingHandler   gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc
	ListCombosHandler   gin.HandlerFunc
	ListCoursesHandler  gin.HandlerFunc
	GetCourseHandler    gin.HandlerFunc

	// Auth endpoints
	RegisterHandler    gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	LogoutHandler      gin.HandlerFunc
	MeHandler          gin.HandlerFunc
	SetFCMTokenHandler gin.HandlerFunc

	// Client endpoints
	MyAppointmentsHandler gin.HandlerFunc

	// Admin appointment endpoints
	ListAppointmentsHandler gin.HandlerFunc
	AdminDayViewHandler     gin.HandlerFunc
	UpdateStatusHandler     gin.HandlerFunc
	AppointmentStatsHandler gin.HandlerFunc

	// Admin recurring endpoints
	ListRecurringHandler   gin.HandlerFunc
	CreateRecurringHandler gin.HandlerFunc
	UpdateRecurringHandler gin.HandlerFunc
	DeleteRecurringHandler gin.HandlerFunc
	ExpandRecurringHandler gin.HandlerFunc

	// Admin catalog endpoints
	SaveServiceHandler   gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc
	SaveComboHandler     gin.HandlerFunc
	DeleteComboHandler   gin.HandlerFunc
	SaveCourseHandler    gin.HandlerFunc
	DeleteCourseHandler  gin.HandlerFunc
	SeedCatalogHandler   gin.HandlerFunc

	// Admin misc endpoints
	UploadImageHandler    gin.HandlerFunc
	DeleteImageHandler    gin.HandlerFunc
	GetSettingsHandler    gin.HandlerFunc
	UpdateSettingsHandler gin.HandlerFunc
}
