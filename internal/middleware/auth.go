package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/queuely/queuely-api/internal/config"
)

const (
	ContextAccountID   = "accountID"
	ContextAccountKind = "accountKind"
)

const (
	KindCustomer = "customer"
	KindBusiness = "business"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		accountID, ok1 := claims["sub"].(float64)
		kind, ok2 := claims["kind"].(string)
		if !ok1 || !ok2 || (kind != KindCustomer && kind != KindBusiness) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextAccountID, uint(accountID))
		c.Set(ContextAccountKind, kind)

		c.Next()
	}
}

// RequireKind guards routes that only one account kind may call.
func RequireKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAccountKind) != kind {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wrong_account_kind"})
			return
		}
		c.Next()
	}
}
