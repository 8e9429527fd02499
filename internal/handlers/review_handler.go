package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/httpresp"
	"github.com/queuely/queuely-api/internal/middleware"
	ucReview "github.com/queuely/queuely-api/internal/usecase/review"
)

type ReviewHandler struct {
	createUC *ucReview.CreateReview
	repo     domain.Repository
}

func NewReviewHandler(createUC *ucReview.CreateReview, repo domain.Repository) *ReviewHandler {
	return &ReviewHandler{
		createUC: createUC,
		repo:     repo,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rv, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		CustomerID: customerID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) ListForBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	reviews, err := h.repo.ListReviewsForBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Something went wrong.")
		return
	}

	httpresp.List(c, reviews)
}
