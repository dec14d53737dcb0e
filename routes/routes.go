// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"afinare/handlers"
	"afinare/middleware"
	"afinare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agendamentos")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.POST("", hb.CreateBookingHandler)
	}
}

// RegisterCatalogRoutes sets up the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/servicos", hb.ListServicesHandler)
		api.GET("/servicos/:id", hb.GetServiceHandler)
		api.GET("/combos", hb.ListCombosHandler)
		api.GET("/cursos", hb.ListCoursesHandler)
		api.GET("/cursos/:id", hb.GetCourseHandler)
		api.GET("/config", hb.GetSettingsHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
		api.PUT("/fcm-token", hb.SetFCMTokenHandler)
		api.GET("/agendamentos", hb.MyAppointmentsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations. Every
// route checks the role on the users document, not a claim in the token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware())
		adminGroup.Use(middleware.AdminOnlyMiddleware(hb.UserRepo))

		adminGroup.GET("/agendamentos", hb.ListAppointmentsHandler)
		adminGroup.GET("/agendamentos/dia/:data", hb.AdminDayViewHandler)
		adminGroup.GET("/agendamentos/stats", hb.AppointmentStatsHandler)
		adminGroup.PATCH("/agendamentos/:id/status", hb.UpdateStatusHandler)

		adminGroup.GET("/agendamentos-fixos", hb.ListRecurringHandler)
		adminGroup.POST("/agendamentos-fixos", hb.CreateRecurringHandler)
		adminGroup.PUT("/agendamentos-fixos/:id", hb.UpdateRecurringHandler)
		adminGroup.DELETE("/agendamentos-fixos/:id", hb.DeleteRecurringHandler)
		adminGroup.POST("/agendamentos-fixos/expandir", hb.ExpandRecurringHandler)

		adminGroup.PUT("/servicos", hb.SaveServiceHandler)
		adminGroup.DELETE("/servicos/:id", hb.DeleteServiceHandler)
		adminGroup.PUT("/combos", hb.SaveComboHandler)
		adminGroup.DELETE("/combos/:id", hb.DeleteComboHandler)
		adminGroup.PUT("/cursos", hb.SaveCourseHandler)
		adminGroup.DELETE("/cursos/:id", hb.DeleteCourseHandler)
		adminGroup.POST("/catalogo/seed", hb.SeedCatalogHandler)

		adminGroup.POST("/upload/:folder", hb.UploadImageHandler)
		adminGroup.POST("/upload/:folder/:id", hb.UploadImageHandler)
		adminGroup.DELETE("/upload/*publicId", hb.DeleteImageHandler)
		adminGroup.PUT("/config", hb.UpdateSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
