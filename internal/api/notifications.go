package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HandleUserNotifications lists a user's notifications, newest first,
// localized to the requested language.
// (GET /api/users/:userId/notifications)
func (h *Handler) HandleUserNotifications(c echo.Context) error {
	limit := 0
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = n
	}

	notifications, err := h.notifications.List(c.Request().Context(), c.Param("userId"), languageParam(c), limit)
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, notifications)
}

// HandleMarkNotificationRead flips the read flag on one notification.
// (PUT /api/users/:userId/notifications/:notificationId/read)
func (h *Handler) HandleMarkNotificationRead(c echo.Context) error {
	err := h.notifications.MarkRead(c.Request().Context(), c.Param("notificationId"), c.Param("userId"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}

// HandleUnreadNotificationCount returns the user's unread count.
// (GET /api/users/:userId/notifications/unread-count)
func (h *Handler) HandleUnreadNotificationCount(c echo.Context) error {
	count, err := h.notifications.UnreadCount(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return serviceError(err)
	}
	return dataResponse(c, echo.Map{"count": count})
}
