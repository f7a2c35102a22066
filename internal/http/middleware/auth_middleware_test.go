package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/Mr-Mosio/BaranBackend/internal/mocks"
	"github.com/gin-gonic/gin"
)

func TestAuthMW_WithJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockTokenService)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header without scheme",
			authHeader:     "some-raw-token",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(tokenSvc *mocks.MockTokenService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes through",
			authHeader: "Bearer valid-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					if token != "valid-token" {
						t.Errorf("expected raw token, got %q", token)
					}
					roleID := uint(7)
					return &domain.TokenClaims{AccountID: 42, Mobile: "09120000000", RoleID: &roleID}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tt.setupMocks(tokenSvc)
			mw := NewAuthMW(tokenSvc)

			nextCalled := false
			r := gin.New()
			r.GET("/protected", mw.WithJWT(), func(c *gin.Context) {
				nextCalled = true
				accountID, _ := c.Get("account_id")
				mobile, _ := c.Get("mobile")
				roleID, _ := c.Get("role_id")
				if accountID != uint(42) || mobile != "09120000000" || roleID != uint(7) {
					t.Errorf("unexpected context values: %v %v %v", accountID, mobile, roleID)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if nextCalled != tt.expectNext {
				t.Errorf("expected next called=%v, got %v", tt.expectNext, nextCalled)
			}
		})
	}
}

func TestPermissionMW_Require(t *testing.T) {
	gin.SetMode(gin.TestMode)

	accountWithRoles := &domain.Account{
		ID:     42,
		Mobile: "09120000000",
		Roles: []domain.Role{
			{ID: 1, Name: "customer"},
			{ID: 2, Name: "operator"},
		},
	}

	tests := []struct {
		name           string
		accountID      interface{}
		setupMocks     func(*mocks.MockAccountRepository, *mocks.MockPolicyService)
		expectedStatus int
	}{
		{
			name:           "unauthenticated request",
			accountID:      nil,
			setupMocks:     func(repo *mocks.MockAccountRepository, policy *mocks.MockPolicyService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "account no longer exists",
			accountID: uint(42),
			setupMocks: func(repo *mocks.MockAccountRepository, policy *mocks.MockPolicyService) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "no role grants the permission",
			accountID: uint(42),
			setupMocks: func(repo *mocks.MockAccountRepository, policy *mocks.MockPolicyService) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
					return accountWithRoles, nil
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "second role grants the permission",
			accountID: uint(42),
			setupMocks: func(repo *mocks.MockAccountRepository, policy *mocks.MockPolicyService) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
					return accountWithRoles, nil
				}
				policy.HasPermissionFunc = func(roleName, permission string) (bool, error) {
					return roleName == "operator" && permission == "profile.read", nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			policy := mocks.NewMockPolicyService()
			tt.setupMocks(repo, policy)
			mw := NewPermissionMW(repo, policy)

			r := gin.New()
			r.GET("/protected", func(c *gin.Context) {
				if tt.accountID != nil {
					c.Set("account_id", tt.accountID)
				}
			}, mw.Require("profile.read"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
