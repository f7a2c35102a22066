package handlers

import (
	"errors"
	"net/http"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	logger  *zap.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		logger:  logger,
	}
}

// CheckMobileRequest represents the first authentication step request
type CheckMobileRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	ForceOTP bool   `json:"force_otp"`
}

// VerifyRequest represents the second authentication step request
type VerifyRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password,omitempty"`
	Code     string `json:"code,omitempty" binding:"omitempty,numeric,min=4,max=6"`
	RoleID   *uint  `json:"role_id,omitempty"`
}

// CheckMobile handles the first authentication step
func (h *AuthHandlers) CheckMobile(c *gin.Context) {
	var req CheckMobileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.CheckMobile(c.Request.Context(), req.Mobile, req.ForceOTP)
	if err != nil {
		h.logger.Error("check mobile failed", zap.String("mobile", req.Mobile), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check mobile number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"has_password": result.HasPassword,
			"otp_sent":     result.OTPSent,
		},
	})
}

// Verify handles the second authentication step
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Password and OTP code are mutually exclusive.
	if req.Password != "" && req.Code != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either a password or an OTP code, not both"})
		return
	}

	result, err := h.authSvc.Verify(c.Request.Context(), req.Mobile, req.Password, req.Code, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredentialRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either password or OTP code is required"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrOTPInvalidOrExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired OTP"})
		case errors.Is(err, domain.ErrNoRolesAssigned):
			c.JSON(http.StatusForbidden, gin.H{"error": "No roles assigned to this account"})
		case errors.Is(err, domain.ErrInvalidRoleID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role is not assigned to this account"})
		case errors.Is(err, domain.ErrRoleSelectionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role selection required"})
		default:
			h.logger.Error("verification failed", zap.String("mobile", req.Mobile), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	if result.RoleSelectionPending() {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"user":  sanitizeAccount(result.Account),
				"roles": result.Roles,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"token": result.Token,
			"user":  sanitizeAccount(result.Account),
		},
	})
}

// Me returns the authenticated account's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context"})
		return
	}

	profile, err := h.authSvc.GetAuthenticatedUser(c.Request.Context(), accountID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("profile lookup failed", zap.Any("account_id", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":          profile.ID,
			"mobile":      profile.Mobile,
			"first_name":  profile.FirstName,
			"last_name":   profile.LastName,
			"email":       profile.Email,
			"roles":       profile.Roles,
			"permissions": profile.Permissions,
		},
	})
}

// sanitizeAccount strips credentials and internal associations from an
// account before it goes over the wire.
func sanitizeAccount(account *domain.Account) gin.H {
	return gin.H{
		"id":         account.ID,
		"mobile":     account.Mobile,
		"first_name": account.FirstName,
		"last_name":  account.LastName,
		"email":      account.Email,
	}
}
