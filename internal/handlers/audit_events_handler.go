package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/httpresp"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
)

type AuditEventsHandler struct {
	db *gorm.DB
}

func NewAuditEventsHandler(db *gorm.DB) *AuditEventsHandler {
	return &AuditEventsHandler{db: db}
}

func (h *AuditEventsHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	q := h.db.Where("business_id = ?", businessID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var events []models.AuditEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_events", "Something went wrong.")
		return
	}

	httpresp.List(c, events)
}
