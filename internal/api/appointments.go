package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vetportal/internal/services"
	"vetportal/pkg/models"
)

// UpdateAppointmentRequest is the status-update payload for a booking.
type UpdateAppointmentRequest struct {
	Status   string  `json:"status"`
	DoctorID *string `json:"doctorId,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// HandleCreateAppointment books a new veterinary visit.
// (POST /api/appointments)
func (h *Handler) HandleCreateAppointment(c echo.Context) error {
	var input services.AppointmentInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	bookingID, err := h.appointments.Create(c.Request().Context(), input)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":   true,
		"bookingId": bookingID,
		"message":   "Appointment booked successfully",
	})
}

// HandleListAppointments lists bookings, earliest slot first.
// (GET /api/appointments)
func (h *Handler) HandleListAppointments(c echo.Context) error {
	filter := models.AppointmentFilter{
		Status:   c.QueryParam("status"),
		Phone:    c.QueryParam("phone"),
		DoctorID: c.QueryParam("doctorId"),
		Date:     c.QueryParam("date"),
	}

	appts, err := h.appointments.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, appts)
}

// HandleUpdateAppointment updates a booking's status, assignee, and notes.
// (PUT /api/appointments/:bookingId)
func (h *Handler) HandleUpdateAppointment(c echo.Context) error {
	var req UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	appt, err := h.appointments.Update(c.Request().Context(), c.Param("bookingId"), req.Status, req.DoctorID, req.Notes)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Appointment updated successfully",
		"appointment": appt,
	})
}

// HandleDoctorAvailability returns a doctor's windows and booked slots.
// (GET /api/doctors/:doctorId/availability)
func (h *Handler) HandleDoctorAvailability(c echo.Context) error {
	availability, err := h.appointments.Availability(c.Request().Context(), c.Param("doctorId"), c.QueryParam("date"))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, availability)
}
