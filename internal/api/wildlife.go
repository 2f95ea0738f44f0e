package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vetportal/internal/services"
	"vetportal/pkg/models"
)

// UpdateWildlifeSightingRequest is the status-update payload for a sighting.
type UpdateWildlifeSightingRequest struct {
	Status        string  `json:"status"`
	OfficerID     *string `json:"officerId,omitempty"`
	ResponseNotes *string `json:"responseNotes,omitempty"`
}

// HandleCreateWildlifeSighting reports a new wildlife sighting.
// (POST /api/wildlife-sightings)
func (h *Handler) HandleCreateWildlifeSighting(c echo.Context) error {
	var input services.WildlifeSightingInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	reportID, err := h.wildlife.Create(c.Request().Context(), input)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"reportId": reportID,
		"message":  "Wildlife sighting reported successfully",
	})
}

// HandleListWildlifeSightings lists sightings, most urgent first.
// (GET /api/wildlife-sightings)
func (h *Handler) HandleListWildlifeSightings(c echo.Context) error {
	filter := models.WildlifeSightingFilter{
		ThreatLevel: c.QueryParam("threatLevel"),
		Status:      c.QueryParam("status"),
		Phone:       c.QueryParam("phone"),
		Village:     c.QueryParam("village"),
		AnimalType:  c.QueryParam("animalType"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	sightings, err := h.wildlife.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, sightings)
}

// HandleUpdateWildlifeSighting updates a sighting's status and response notes.
// (PUT /api/wildlife-sightings/:reportId)
func (h *Handler) HandleUpdateWildlifeSighting(c echo.Context) error {
	var req UpdateWildlifeSightingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sighting, err := h.wildlife.Update(c.Request().Context(), c.Param("reportId"), req.Status, req.OfficerID, req.ResponseNotes)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Wildlife sighting updated successfully",
		"sighting": sighting,
	})
}

// HandleWildlifeStatistics returns the 30-day dashboards.
// (GET /api/wildlife-statistics)
func (h *Handler) HandleWildlifeStatistics(c echo.Context) error {
	stats, err := h.wildlife.Statistics(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, stats)
}
