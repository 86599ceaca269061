package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// NotificationHandler exposes the authenticated user's notification inbox.
type NotificationHandler struct {
	notifications ports.NotificationRepository
}

func NewNotificationHandler(notifications ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type listNotificationsResponse struct {
	Items []domain.Notification `json:"items"`
}

// List godoc
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50, max 100)"
// @Success      200    {object}  listNotificationsResponse
// @Router       /api/v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	items, err := h.notifications.ListByUser(c.Request().Context(),
		principal.UserID, queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listNotificationsResponse{Items: items})
}
