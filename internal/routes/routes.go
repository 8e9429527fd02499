package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/audit"
	"github.com/queuely/queuely-api/internal/cache"
	"github.com/queuely/queuely-api/internal/config"
	"github.com/queuely/queuely-api/internal/handlers"
	infraRepo "github.com/queuely/queuely-api/internal/infra/repository"
	"github.com/queuely/queuely-api/internal/mailer"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/notification"
	"github.com/queuely/queuely-api/internal/storage"
	ucBooking "github.com/queuely/queuely-api/internal/usecase/booking"
	ucReview "github.com/queuely/queuely-api/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	notifier := notification.New(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.New(cfg)
	otpMailer := mailer.New(cfg)
	assetStore := storage.NewS3(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	listCustomerBookingsUC := ucBooking.NewListBookingsForCustomer(bookingRepo)
	listBusinessBookingsUC := ucBooking.NewListBookingsForBusiness(bookingRepo)

	createReviewUC := ucReview.NewCreateReview(
		bookingRepo,
		notifier,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	passwordResetHandler := handlers.NewPasswordResetHandler(db, otpMailer)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingStatusUC,
		listCustomerBookingsUC,
		listBusinessBookingsUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC, bookingRepo)
	notificationHandler := handlers.NewNotificationHandler(notifier)
	dashboardHandler := handlers.NewDashboardHandler(db, statsCache)
	profileImageHandler := handlers.NewProfileImageHandler(db, assetStore, auditDispatcher)
	auditEventsHandler := handlers.NewAuditEventsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/customer/register", authHandler.RegisterCustomer)
		api.POST("/auth/customer/login", authHandler.LoginCustomer)
		api.POST("/auth/business/register", authHandler.RegisterBusiness)
		api.POST("/auth/business/login", authHandler.LoginBusiness)

		api.POST("/auth/customer/forgot-password", passwordResetHandler.Forgot(middleware.KindCustomer))
		api.POST("/auth/customer/verify-otp", passwordResetHandler.VerifyOTP(middleware.KindCustomer))
		api.POST("/auth/customer/reset-password", passwordResetHandler.Reset(middleware.KindCustomer))
		api.POST("/auth/business/forgot-password", passwordResetHandler.Forgot(middleware.KindBusiness))
		api.POST("/auth/business/verify-otp", passwordResetHandler.VerifyOTP(middleware.KindBusiness))
		api.POST("/auth/business/reset-password", passwordResetHandler.Reset(middleware.KindBusiness))

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings",
				middleware.RequireKind(middleware.KindCustomer), bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/status",
				middleware.RequireKind(middleware.KindBusiness), bookingHandler.UpdateStatus)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews",
				middleware.RequireKind(middleware.KindCustomer), reviewHandler.Create)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// BUSINESS CATALOG & DASHBOARD
			// ------------------------------
			business := secured.Group("/me")
			business.Use(middleware.RequireKind(middleware.KindBusiness))
			{
				business.GET("/services", serviceHandler.List)
				business.POST("/services", serviceHandler.Create)
				business.PATCH("/services/:id", serviceHandler.Update)
				business.DELETE("/services/:id", serviceHandler.Delete)

				business.GET("/barbers", barberHandler.List)
				business.POST("/barbers", barberHandler.Create)
				business.PATCH("/barbers/:id", barberHandler.Update)
				business.DELETE("/barbers/:id", barberHandler.Delete)

				business.GET("/reviews", reviewHandler.ListForBusiness)
				business.GET("/dashboard", dashboardHandler.Get)
				business.POST("/profile-image", profileImageHandler.Upload)
				business.GET("/audit-events", auditEventsHandler.List)
			}
		}
	}
}
