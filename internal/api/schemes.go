package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vetportal/internal/services"
	"vetportal/pkg/models"
)

// UpdateSchemeApplicationRequest is the review-decision payload.
type UpdateSchemeApplicationRequest struct {
	Status         string   `json:"status"`
	ReviewerID     string   `json:"reviewerId"`
	ReviewNotes    *string  `json:"reviewNotes,omitempty"`
	ApprovedAmount *float64 `json:"approvedAmount,omitempty"`
}

// TrackSchemeApplicationRequest is the public tracking payload. Both fields
// must match the stored application.
type TrackSchemeApplicationRequest struct {
	ApplicationID string `json:"applicationId"`
	AadhaarNumber string `json:"aadhaarNumber"`
}

// HandleCreateSchemeApplication submits a new scheme application.
// (POST /api/scheme-applications)
func (h *Handler) HandleCreateSchemeApplication(c echo.Context) error {
	var input services.SchemeApplicationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	applicationID, err := h.schemes.CreateApplication(c.Request().Context(), input)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":       true,
		"applicationId": applicationID,
		"message":       "Scheme application submitted successfully",
	})
}

// HandleListSchemes returns the active scheme catalog.
// (GET /api/schemes)
func (h *Handler) HandleListSchemes(c echo.Context) error {
	schemes, err := h.schemes.Schemes(c.Request().Context(), languageParam(c))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, schemes)
}

// HandleListSchemeApplications lists applications, newest first.
// (GET /api/scheme-applications)
func (h *Handler) HandleListSchemeApplications(c echo.Context) error {
	filter := models.SchemeApplicationFilter{
		Status:   c.QueryParam("status"),
		Phone:    c.QueryParam("phone"),
		District: c.QueryParam("district"),
		SchemeID: c.QueryParam("schemeId"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	apps, err := h.schemes.ListApplications(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, apps)
}

// HandleUpdateSchemeApplication records a review decision.
// (PUT /api/scheme-applications/:applicationId)
func (h *Handler) HandleUpdateSchemeApplication(c echo.Context) error {
	var req UpdateSchemeApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	app, err := h.schemes.UpdateApplication(c.Request().Context(), c.Param("applicationId"),
		req.Status, req.ReviewerID, req.ReviewNotes, req.ApprovedAmount)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Scheme application updated successfully",
		"application": app,
	})
}

// HandleTrackSchemeApplication looks up an application by ID plus Aadhaar.
// (POST /api/scheme-applications/track)
func (h *Handler) HandleTrackSchemeApplication(c echo.Context) error {
	var req TrackSchemeApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ApplicationID == "" || req.AadhaarNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Application ID and Aadhaar number are required")
	}

	app, err := h.schemes.Track(c.Request().Context(), req.ApplicationID, req.AadhaarNumber)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, app)
}
