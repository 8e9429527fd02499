package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	kind := c.GetString(middleware.ContextAccountKind)

	switch kind {
	case middleware.KindCustomer:
		var customer models.Customer
		if err := h.db.First(&customer, accountID).Error; err != nil {
			httperr.NotFound(c, "account_not_found", "Account not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"kind": kind, "account": customer})

	case middleware.KindBusiness:
		var business models.Business
		if err := h.db.First(&business, accountID).Error; err != nil {
			httperr.NotFound(c, "account_not_found", "Account not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"kind": kind, "account": business})

	default:
		httperr.Unauthorized(c, "invalid_account_kind", "Invalid account kind.")
	}
}
