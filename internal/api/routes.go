package api

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts every portal endpoint on the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.yaml", HandleOpenAPISpec)
	e.GET("/swagger/*", SwaggerUI())

	g := e.Group("/api")

	g.GET("/ping", h.HandlePing)
	g.GET("/health", h.HandleHealth)

	g.POST("/health-reports", h.HandleCreateHealthReport)
	g.GET("/health-reports", h.HandleListHealthReports)
	g.PUT("/health-reports/:reportId", h.HandleUpdateHealthReport)

	g.POST("/appointments", h.HandleCreateAppointment)
	g.GET("/appointments", h.HandleListAppointments)
	g.PUT("/appointments/:bookingId", h.HandleUpdateAppointment)
	g.GET("/doctors/:doctorId/availability", h.HandleDoctorAvailability)

	g.POST("/scheme-applications", h.HandleCreateSchemeApplication)
	g.GET("/schemes", h.HandleListSchemes)
	g.GET("/scheme-applications", h.HandleListSchemeApplications)
	g.PUT("/scheme-applications/:applicationId", h.HandleUpdateSchemeApplication)
	g.POST("/scheme-applications/track", h.HandleTrackSchemeApplication)

	g.POST("/wildlife-sightings", h.HandleCreateWildlifeSighting)
	g.GET("/wildlife-sightings", h.HandleListWildlifeSightings)
	g.PUT("/wildlife-sightings/:reportId", h.HandleUpdateWildlifeSighting)
	g.GET("/wildlife-statistics", h.HandleWildlifeStatistics)

	g.GET("/translations", h.HandleTranslations)
	g.GET("/system-settings", h.HandleSystemSettings)
	g.PUT("/user-language", h.HandleUpdateUserLanguage)
	g.GET("/users/:userId/language", h.HandleUserLanguage)
	g.GET("/localized/schemes", h.HandleLocalizedSchemes)
	g.GET("/localized/animal-types", h.HandleLocalizedAnimalTypes)

	g.GET("/users/:userId/notifications", h.HandleUserNotifications)
	g.GET("/users/:userId/notifications/unread-count", h.HandleUnreadNotificationCount)
	g.PUT("/users/:userId/notifications/:notificationId/read", h.HandleMarkNotificationRead)
}
