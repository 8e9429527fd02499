package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/audit"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/images"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/storage"
)

const maxUploadBytes = 5 << 20

type ProfileImageHandler struct {
	db    *gorm.DB
	store storage.Store
	audit audit.Sink
}

func NewProfileImageHandler(db *gorm.DB, store storage.Store, dispatcher audit.Sink) *ProfileImageHandler {
	return &ProfileImageHandler{
		db:    db,
		store: store,
		audit: dispatcher,
	}
}

func (h *ProfileImageHandler) Upload(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "The image must be at most 5MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Something went wrong.")
		return
	}
	defer f.Close()

	normalized, err := images.NormalizeProfileImage(f)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "The file is not a supported image.")
		return
	}

	key, err := h.store.PutProfileImage(c.Request.Context(), normalized)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Something went wrong.")
		return
	}

	if err := h.db.Model(&models.Business{}).
		Where("id = ?", businessID).
		Update("profile_image", key).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Something went wrong.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		ActorKind:  models.RecipientBusiness,
		ActorID:    &businessID,
		Action:     audit.ActionProfileImageUploaded,
		Entity:     "business",
		EntityID:   &businessID,
	})

	c.JSON(http.StatusOK, gin.H{"profile_image": key})
}
