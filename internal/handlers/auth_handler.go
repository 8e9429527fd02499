package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/config"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterBusinessRequest struct {
	ShopName       string   `json:"shop_name" binding:"required"`
	OwnerFirstName string   `json:"owner_first_name" binding:"required"`
	OwnerLastName  string   `json:"owner_last_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=6"`
	Phone          string   `json:"phone" binding:"required"`
	Country        string   `json:"country" binding:"required"`
	LocalLocation  string   `json:"local_location"`
	FocusTags      []string `json:"focus_tags"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	// uniqueness is per account kind, not global
	var count int64
	h.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Something went wrong.")
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Location:     req.Location,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Something went wrong.")
		return
	}

	token, err := h.generateToken(customer.ID, middleware.KindCustomer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": customer,
		"kind":    middleware.KindCustomer,
		"token":   token,
	})
}

func (h *AuthHandler) RegisterBusiness(c *gin.Context) {
	var req RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.Business{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Something went wrong.")
		return
	}

	business := models.Business{
		ShopName:       req.ShopName,
		OwnerFirstName: req.OwnerFirstName,
		OwnerLastName:  req.OwnerLastName,
		Email:          email,
		PasswordHash:   string(hashed),
		Phone:          req.Phone,
		Country:        req.Country,
		LocalLocation:  req.LocalLocation,
		FocusTags:      strings.Join(req.FocusTags, ","),
	}

	if err := h.db.Create(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_create_business", "Something went wrong.")
		return
	}

	token, err := h.generateToken(business.ID, middleware.KindBusiness)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": business,
		"kind":    middleware.KindBusiness,
		"token":   token,
	})
}

func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var customer models.Customer
	if err := h.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(customer.ID, middleware.KindCustomer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": customer,
		"kind":    middleware.KindCustomer,
		"token":   token,
	})
}

func (h *AuthHandler) LoginBusiness(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var business models.Business
	if err := h.db.Where("email = ?", email).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(business.ID, middleware.KindBusiness)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": business,
		"kind":    middleware.KindBusiness,
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(accountID uint, kind string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  accountID,
		"kind": kind,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
