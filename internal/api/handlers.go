// Package api contains the HTTP handlers for the portal REST API.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vetportal/internal/logging"
	"vetportal/internal/repository"
	"vetportal/internal/services"
)

// Handler holds the service dependencies for the API.
type Handler struct {
	health        *services.HealthReportService
	appointments  *services.AppointmentService
	schemes       *services.SchemeService
	wildlife      *services.WildlifeService
	notifications *services.NotificationService
	localization  *services.LocalizationService
	logger        *logging.Logger
}

// NewHandler creates a new Handler with required dependencies.
func NewHandler(
	health *services.HealthReportService,
	appointments *services.AppointmentService,
	schemes *services.SchemeService,
	wildlife *services.WildlifeService,
	notifications *services.NotificationService,
	localization *services.LocalizationService,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		health:        health,
		appointments:  appointments,
		schemes:       schemes,
		wildlife:      wildlife,
		notifications: notifications,
		localization:  localization,
		logger:        logger,
	}
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// HandlePing answers the connectivity probe.
// (GET /api/ping)
func (h *Handler) HandlePing(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "ping"})
}

// HandleHealth returns basic service health.
// (GET /api/health)
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	})
}

// dataResponse is the uniform list/read envelope.
func dataResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// serviceError maps service-layer failures to HTTP errors. Missing records
// become 404; everything else surfaces as a 500 with the error string.
func serviceError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// ErrorHandler renders every error as the {success:false, message} envelope
// the clients expect.
func ErrorHandler(logger *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed", "method", c.Request().Method,
				"path", c.Path(), "error", err)
		}

		if err := c.JSON(status, echo.Map{"success": false, "message": message}); err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
