// File: afinare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afinare/config"
	"afinare/cron"
	"afinare/database"
	appointmentRepoPkg "afinare/database/repository/appointment"
	catalogRepoPkg "afinare/database/repository/catalog"
	recurringRepoPkg "afinare/database/repository/recurring"
	settingsRepoPkg "afinare/database/repository/settings"
	userRepoPkg "afinare/database/repository/user"
	"afinare/handlers"
	"afinare/routes"
	"afinare/services/booking"
	"afinare/services/catalog"
	"afinare/services/notification"
	"afinare/services/user"
	"afinare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	recRepo := recurringRepoPkg.NewMongoRecurringRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	cfgRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:     usrRepo,
		Sessions: utils.GetAuthCacheClient(),
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo:  catRepo,
		Cache: utils.GetCacheClient(),
	}

	notificationService := notification.NewDefaultNotificationService(usrRepo)

	bookingService := &booking.DefaultBookingService{
		Repo:      apptRepo,
		Recurring: recRepo,
		Catalog:   catRepo,
		Settings:  cfgRepo,
		Notifier:  cron.NewBookingEnqueuer(),
	}

	// Bootstrap the back-office account if configured.
	if config.AppConfig.AdminEmail != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userService.EnsureAdmin(ctx, config.AppConfig.AdminName,
			config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
			logger.Sugar().Warnf("main: failed to ensure admin account: %v", err)
		}
		cancel()
	}

	// Background worker delivering booking notifications to admin devices.
	go cron.InitBookingWorker(notificationService)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.Deps{
		Booking:   bookingService,
		Catalog:   catalogService,
		Users:     userService,
		Storage:   cloudinaryStorageService,
		Recurring: recRepo,
		Settings:  cfgRepo,
		UserRepo:  usrRepo,
	})
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
