package middleware

import (
	"net/http"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/gin-gonic/gin"
)

// PermissionMW gates routes on the account's flattened permission set: the
// request passes when any assigned role grants the required permission.
type PermissionMW struct {
	accountRepo domain.AccountRepository
	policySvc   domain.PolicyService
}

// NewPermissionMW creates new permission middleware
func NewPermissionMW(accountRepo domain.AccountRepository, policySvc domain.PolicyService) *PermissionMW {
	return &PermissionMW{
		accountRepo: accountRepo,
		policySvc:   policySvc,
	}
}

// Require returns a middleware enforcing the named permission. Must run
// after WithJWT.
func (m *PermissionMW) Require(permission string) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		accountID, exists := c.Get("account_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
			c.Abort()
			return
		}

		account, err := m.accountRepo.FindByID(c.Request.Context(), accountID.(uint))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}

		for _, role := range account.Roles {
			allowed, err := m.policySvc.HasPermission(role.Name, permission)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	})
}
