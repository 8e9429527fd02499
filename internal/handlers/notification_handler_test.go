package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/handlers"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/mocks"
	"github.com/queuely/queuely-api/internal/models"
)

func notificationRouter(store *mocks.NotificationStore, kind string, accountID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := handlers.NewNotificationHandler(store)

	identity := func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, accountID)
		c.Set(middleware.ContextAccountKind, kind)
	}

	r.GET("/api/notifications", identity, h.List)
	r.POST("/api/notifications/read-all", identity, h.MarkAllRead)
	r.PATCH("/api/notifications/:id/read", identity, h.MarkRead)

	return r
}

func TestNotificationList(t *testing.T) {
	store := new(mocks.NotificationStore)
	r := notificationRouter(store, middleware.KindCustomer, 1)

	store.On("ListForRecipient", mock.Anything, middleware.KindCustomer, uint(1)).
		Return([]models.Notification{
			{ID: 2, RecipientKind: "customer", RecipientID: 1, Type: models.NotificationBookingPending},
		}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestNotificationMarkReadOwnership(t *testing.T) {
	// user B cannot mark user A's notification; the store reports no
	// owned row and the handler answers 404
	store := new(mocks.NotificationStore)
	r := notificationRouter(store, middleware.KindCustomer, 2)

	store.On("MarkRead", mock.Anything, middleware.KindCustomer, uint(2), uint(77)).
		Return(false, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/77/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertExpectations(t)
}

func TestNotificationMarkRead(t *testing.T) {
	store := new(mocks.NotificationStore)
	r := notificationRouter(store, middleware.KindBusiness, 10)

	store.On("MarkRead", mock.Anything, middleware.KindBusiness, uint(10), uint(5)).
		Return(true, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/5/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationMarkAllReadIdempotent(t *testing.T) {
	store := new(mocks.NotificationStore)
	r := notificationRouter(store, middleware.KindCustomer, 1)

	// second call finds zero unread rows and still succeeds
	store.On("MarkAllRead", mock.Anything, middleware.KindCustomer, uint(1)).
		Return(nil).Twice()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/notifications/read-all", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	store.AssertExpectations(t)
}
