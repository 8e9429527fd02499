package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/httpresp"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years" binding:"min=0"`
}

type UpdateBarberRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Status          *string `json:"status,omitempty"`
}

func isValidBarberStatus(s string) bool {
	return s == models.BarberStatusActive || s == models.BarberStatusInactive
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	var barbers []models.Barber
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Something went wrong.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber := models.Barber{
		BusinessID:      businessID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Status:          models.BarberStatusActive,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Something went wrong.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Something went wrong.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Status != nil && !isValidBarberStatus(*req.Status) {
		httperr.BadRequest(c, "invalid_barber_status", "Status must be ACTIVE or INACTIVE.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Email != nil {
		barber.Email = *req.Email
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Specialization != nil {
		barber.Specialization = *req.Specialization
	}
	if req.ExperienceYears != nil {
		barber.ExperienceYears = *req.ExperienceYears
	}
	if req.Status != nil {
		barber.Status = *req.Status
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.Barber{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Something went wrong.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
