package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/logger"
	"github.com/queuely/queuely-api/internal/mailer"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
)

const otpTTL = 10 * time.Minute

type PasswordResetHandler struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

func NewPasswordResetHandler(db *gorm.DB, m mailer.Mailer) *PasswordResetHandler {
	return &PasswordResetHandler{db: db, mailer: m}
}

// --------- Requests ---------

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// resetAccount is the slice of either account kind the flow touches.
type resetAccount struct {
	ID             uint
	Name           string
	Email          string
	ResetCode      *string
	ResetExpiresAt *time.Time
	ResetVerified  *bool
}

func (h *PasswordResetHandler) findAccount(kind, email string) (*resetAccount, error) {
	switch kind {
	case middleware.KindCustomer:
		var cu models.Customer
		if err := h.db.Where("email = ?", email).First(&cu).Error; err != nil {
			return nil, err
		}
		return &resetAccount{
			ID: cu.ID, Name: cu.Name, Email: cu.Email,
			ResetCode: cu.ResetCode, ResetExpiresAt: cu.ResetExpiresAt, ResetVerified: cu.ResetVerified,
		}, nil
	case middleware.KindBusiness:
		var bz models.Business
		if err := h.db.Where("email = ?", email).First(&bz).Error; err != nil {
			return nil, err
		}
		return &resetAccount{
			ID: bz.ID, Name: bz.OwnerFirstName, Email: bz.Email,
			ResetCode: bz.ResetCode, ResetExpiresAt: bz.ResetExpiresAt, ResetVerified: bz.ResetVerified,
		}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (h *PasswordResetHandler) accountModel(kind string) any {
	if kind == middleware.KindBusiness {
		return &models.Business{}
	}
	return &models.Customer{}
}

// --------- Handlers ---------

// Forgot always answers 200 so the endpoint cannot be used to probe for
// registered emails.
func (h *PasswordResetHandler) Forgot(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		resp := gin.H{"message": "If the email is registered, a reset code has been sent."}

		acc, err := h.findAccount(kind, email)
		if err != nil {
			c.JSON(http.StatusOK, resp)
			return
		}

		code := generateOTP()
		expires := time.Now().Add(otpTTL)

		if err := h.db.Model(h.accountModel(kind)).
			Where("id = ?", acc.ID).
			Updates(map[string]any{
				"reset_code":       code,
				"reset_expires_at": expires,
				"reset_verified":   false,
			}).Error; err != nil {
			httperr.Internal(c, "failed_to_store_otp", "Something went wrong.")
			return
		}

		if err := h.mailer.SendOTP(c.Request.Context(), acc.Email, acc.Name, code); err != nil {
			logger.WithFields(logrus.Fields{"kind": kind}).WithError(err).Warn("OTP email failed")
		}

		c.JSON(http.StatusOK, resp)
	}
}

func (h *PasswordResetHandler) VerifyOTP(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		acc, err := h.findAccount(kind, email)
		if err != nil {
			httperr.BadRequest(c, "invalid_code", "Invalid code.")
			return
		}

		if acc.ResetCode == nil || acc.ResetExpiresAt == nil || *acc.ResetCode != req.Code {
			httperr.BadRequest(c, "invalid_code", "Invalid code.")
			return
		}

		if time.Now().After(*acc.ResetExpiresAt) {
			httperr.BadRequest(c, "code_expired", "The code has expired. Request a new one.")
			return
		}

		if err := h.db.Model(h.accountModel(kind)).
			Where("id = ?", acc.ID).
			Update("reset_verified", true).Error; err != nil {
			httperr.Internal(c, "failed_to_verify_otp", "Something went wrong.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Code verified."})
	}
}

func (h *PasswordResetHandler) Reset(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		acc, err := h.findAccount(kind, email)
		if err != nil {
			httperr.BadRequest(c, "otp_not_verified", "Verify the reset code first.")
			return
		}

		if acc.ResetVerified == nil || !*acc.ResetVerified {
			httperr.BadRequest(c, "otp_not_verified", "Verify the reset code first.")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Something went wrong.")
			return
		}

		// the OTP triple is consumed: fully cleared after a successful change
		if err := h.db.Model(h.accountModel(kind)).
			Where("id = ?", acc.ID).
			Updates(map[string]any{
				"password_hash":    string(hashed),
				"reset_code":       nil,
				"reset_expires_at": nil,
				"reset_verified":   nil,
			}).Error; err != nil {
			httperr.Internal(c, "failed_to_reset_password", "Something went wrong.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
	}
}

func generateOTP() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return fmt.Sprintf("%06d", n.Int64())
}
