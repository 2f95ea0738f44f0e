package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vetportal/internal/services"
	"vetportal/pkg/models"
)

// UpdateHealthReportRequest is the status-update payload for a report.
type UpdateHealthReportRequest struct {
	Status   string  `json:"status"`
	DoctorID *string `json:"doctorId,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// HandleCreateHealthReport submits a new animal health report.
// (POST /api/health-reports)
func (h *Handler) HandleCreateHealthReport(c echo.Context) error {
	var input services.HealthReportInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	reportID, err := h.health.Create(c.Request().Context(), input)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"reportId": reportID,
		"message":  "Health report submitted successfully",
	})
}

// HandleListHealthReports lists reports, highest priority first.
// (GET /api/health-reports)
func (h *Handler) HandleListHealthReports(c echo.Context) error {
	filter := models.HealthReportFilter{
		Status:   c.QueryParam("status"),
		Severity: c.QueryParam("severity"),
		Phone:    c.QueryParam("phone"),
		Village:  c.QueryParam("village"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	reports, err := h.health.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, reports)
}

// HandleUpdateHealthReport updates a report's status, assignee, and notes.
// (PUT /api/health-reports/:reportId)
func (h *Handler) HandleUpdateHealthReport(c echo.Context) error {
	var req UpdateHealthReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	report, err := h.health.Update(c.Request().Context(), c.Param("reportId"), req.Status, req.DoctorID, req.Notes)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Health report updated successfully",
		"report":  report,
	})
}
