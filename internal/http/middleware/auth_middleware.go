package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/gin-gonic/gin"
)

// AuthMW authenticates requests from a Bearer session token
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new authentication middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithJWT validates the Authorization header and puts the verified claims
// into the request context. Every token failure maps to 401, nothing leaks.
func (m *AuthMW) WithJWT() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.Validate(tokenParts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("mobile", claims.Mobile)
		if claims.RoleID != nil {
			c.Set("role_id", *claims.RoleID)
		}

		c.Next()
	})
}
