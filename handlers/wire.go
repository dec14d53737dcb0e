// File: handlers/wire.go
package handlers

import (
	recurringRepo "afinare/database/repository/recurring"
	settingsRepo "afinare/database/repository/settings"
	userRepoPkg "afinare/database/repository/user"
	"afinare/services/booking"
	"afinare/services/catalog"
	"afinare/services/storage"
	"afinare/services/user"
)

// Deps holds the services and repositories the handlers depend on.
type Deps struct {
	Booking   booking.BookingService
	Catalog   catalog.CatalogService
	Users     user.UserService
	Storage   storage.StorageService
	Recurring recurringRepo.RecurringRepository
	Settings  settingsRepo.SettingsRepository
	UserRepo  userRepoPkg.UserRepository
}

// NewHandlerBundle wires every endpoint handler from the given dependencies.
func NewHandlerBundle(d Deps) *HandlerBundle {
	bookingH := &BookingHandler{Service: d.Booking}
	adminH := &AdminHandler{Service: d.Booking}
	recurringH := &RecurringHandler{Repo: d.Recurring, Service: d.Booking}
	catalogH := &CatalogHandler{Service: d.Catalog}
	authH := &AuthHandler{Service: d.Users}
	clientH := &ClientHandler{Service: d.Booking}
	storageH := &StorageHandler{StorageSvc: d.Storage}
	settingsH := &SettingsHandler{Repo: d.Settings}

	return &HandlerBundle{
		UserRepo: d.UserRepo,

		GetAvailabilityHandler: bookingH.GetAvailabilityHandler,
		CreateBookingHandler:   bookingH.CreateBookingHandler,

		ListServicesHandler: catalogH.ListServicesHandler,
		GetServiceHandler:   catalogH.GetServiceHandler,
		ListCombosHandler:   catalogH.ListCombosHandler,
		ListCoursesHandler:  catalogH.ListCoursesHandler,
		GetCourseHandler:    catalogH.GetCourseHandler,

		RegisterHandler:    authH.RegisterHandler,
		LoginHandler:       authH.LoginHandler,
		LogoutHandler:      authH.LogoutHandler,
		MeHandler:          authH.MeHandler,
		SetFCMTokenHandler: authH.SetFCMTokenHandler,

		MyAppointmentsHandler: clientH.MyAppointmentsHandler,

		ListAppointmentsHandler: adminH.ListAppointmentsHandler,
		AdminDayViewHandler:     adminH.AdminDayViewHandler,
		UpdateStatusHandler:     adminH.UpdateStatusHandler,
		AppointmentStatsHandler: adminH.AppointmentStatsHandler,

		ListRecurringHandler:   recurringH.ListRecurringHandler,
		CreateRecurringHandler: recurringH.CreateRecurringHandler,
		UpdateRecurringHandler: recurringH.UpdateRecurringHandler,
		DeleteRecurringHandler: recurringH.DeleteRecurringHandler,
		ExpandRecurringHandler: recurringH.ExpandRecurringHandler,

		SaveServiceHandler:   catalogH.SaveServiceHandler,
		DeleteServiceHandler: catalogH.DeleteServiceHandler,
		SaveComboHandler:     catalogH.SaveComboHandler,
		DeleteComboHandler:   catalogH.DeleteComboHandler,
		SaveCourseHandler:    catalogH.SaveCourseHandler,
		DeleteCourseHandler:  catalogH.DeleteCourseHandler,
		SeedCatalogHandler:   catalogH.SeedCatalogHandler,

		UploadImageHandler:    storageH.UploadImageHandler,
		DeleteImageHandler:    storageH.DeleteImageHandler,
		GetSettingsHandler:    settingsH.GetSettingsHandler,
		UpdateSettingsHandler: settingsH.UpdateSettingsHandler,
	}
}
