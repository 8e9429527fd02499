package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/notification"
)

type NotificationHandler struct {
	log notification.Store
}

func NewNotificationHandler(log notification.Store) *NotificationHandler {
	return &NotificationHandler{log: log}
}

func (h *NotificationHandler) List(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	kind := c.GetString(middleware.ContextAccountKind)

	ns, err := h.log.ListForRecipient(c.Request.Context(), kind, accountID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, ns)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	kind := c.GetString(middleware.ContextAccountKind)

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_notification_id", "Invalid notification id.")
		return
	}

	ok, err := h.log.MarkRead(c.Request.Context(), kind, accountID, uint(notificationID))
	if err != nil {
		httperr.Internal(c, "failed_to_mark_notification", "Something went wrong.")
		return
	}
	if !ok {
		// not owned or absent looks the same to the caller
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read."})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	kind := c.GetString(middleware.ContextAccountKind)

	if err := h.log.MarkAllRead(c.Request.Context(), kind, accountID); err != nil {
		httperr.Internal(c, "failed_to_mark_notifications", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read."})
}
