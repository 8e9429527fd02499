package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/middleware"
	ucBooking "github.com/queuely/queuely-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	updateStatusUC *ucBooking.UpdateBookingStatus
	listCustomerUC *ucBooking.ListBookingsForCustomer
	listBusinessUC *ucBooking.ListBookingsForBusiness
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateStatusUC *ucBooking.UpdateBookingStatus,
	listCustomerUC *ucBooking.ListBookingsForCustomer,
	listBusinessUC *ucBooking.ListBookingsForBusiness,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listCustomerUC: listCustomerUC,
		listBusinessUC: listBusinessUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BusinessID  uint    `json:"business_id" binding:"required"`
	ServiceName string  `json:"service_name" binding:"required"`
	BarberName  string  `json:"barber_name"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Amount      float64 `json:"amount"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:  customerID,
		BusinessID:  req.BusinessID,
		ServiceName: req.ServiceName,
		BarberName:  req.BarberName,
		Date:        req.Date,
		Time:        req.Time,
		Amount:      req.Amount,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST (scope follows the caller's account kind)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	kind := c.GetString(middleware.ContextAccountKind)

	switch kind {
	case middleware.KindCustomer:
		bookings, err := h.listCustomerUC.Execute(c.Request.Context(), accountID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Something went wrong.")
			return
		}
		c.JSON(http.StatusOK, bookings)

	case middleware.KindBusiness:
		recent := c.Query("recent") == "true"
		bookings, err := h.listBusinessUC.Execute(c.Request.Context(), accountID, recent)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Something went wrong.")
			return
		}
		c.JSON(http.StatusOK, bookings)

	default:
		httperr.Unauthorized(c, "invalid_account_kind", "Invalid account kind.")
	}
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextAccountID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		businessID,
		uint(bookingID),
		req.Status,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}
