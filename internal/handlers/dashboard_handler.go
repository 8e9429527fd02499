package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/cache"
	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/logger"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
)

const dashboardTTL = 30 * time.Second

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, ch *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: ch}
}

type DashboardStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	AcceptedBookings  int64 `json:"accepted_bookings"`
	DeclinedBookings  int64 `json:"declined_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`

	TotalServices int64 `json:"total_services"`
	TotalBarbers  int64 `json:"total_barbers"`

	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`

	RecentBookings []models.Booking `json:"recent_bookings"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)
	ctx := c.Request.Context()

	key := fmt.Sprintf("dashboard:business:%d", businessID)

	var stats DashboardStats
	if hit, err := h.cache.GetJSON(ctx, key, &stats); err == nil && hit {
		c.JSON(http.StatusOK, stats)
		return
	} else if err != nil {
		logger.WithFields(logrus.Fields{"business_id": businessID}).
			WithError(err).Debug("dashboard cache read failed")
	}

	countBookings := func(status string) (int64, error) {
		q := h.db.Model(&models.Booking{}).Where("business_id = ?", businessID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		var n int64
		err := q.Count(&n).Error
		return n, err
	}

	var err error
	if stats.TotalBookings, err = countBookings(""); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Something went wrong.")
		return
	}
	stats.PendingBookings, _ = countBookings(string(domain.StatusPending))
	stats.AcceptedBookings, _ = countBookings(string(domain.StatusAccepted))
	stats.DeclinedBookings, _ = countBookings(string(domain.StatusDeclined))
	stats.CompletedBookings, _ = countBookings(string(domain.StatusCompleted))

	h.db.Model(&models.Service{}).Where("business_id = ?", businessID).Count(&stats.TotalServices)
	h.db.Model(&models.Barber{}).Where("business_id = ?", businessID).Count(&stats.TotalBarbers)
	h.db.Model(&models.Review{}).Where("business_id = ?", businessID).Count(&stats.TotalReviews)

	if stats.TotalReviews > 0 {
		h.db.Model(&models.Review{}).
			Where("business_id = ?", businessID).
			Select("AVG(rating)").
			Scan(&stats.AverageRating)
	}

	if err := h.db.
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentBookings).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Something went wrong.")
		return
	}

	if err := h.cache.SetJSON(ctx, key, stats, dashboardTTL); err != nil {
		logger.WithFields(logrus.Fields{"business_id": businessID}).
			WithError(err).Debug("dashboard cache write failed")
	}

	c.JSON(http.StatusOK, stats)
}
