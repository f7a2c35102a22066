package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	CheckMobileFunc          func(ctx context.Context, mobile string, forceOTP bool) (*domain.CheckMobileResult, error)
	VerifyFunc               func(ctx context.Context, mobile, password, code string, roleID *uint) (*domain.VerifyResult, error)
	GetAuthenticatedUserFunc func(ctx context.Context, accountID uint) (*domain.Profile, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) CheckMobile(ctx context.Context, mobile string, forceOTP bool) (*domain.CheckMobileResult, error) {
	if m.CheckMobileFunc != nil {
		return m.CheckMobileFunc(ctx, mobile, forceOTP)
	}
	// Default behavior: unknown mobile, OTP sent
	return &domain.CheckMobileResult{HasPassword: false, OTPSent: true}, nil
}

func (m *MockAuthService) Verify(ctx context.Context, mobile, password, code string, roleID *uint) (*domain.VerifyResult, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, mobile, password, code, roleID)
	}
	// Default behavior: credential required
	return nil, domain.ErrCredentialRequired
}

func (m *MockAuthService) GetAuthenticatedUser(ctx context.Context, accountID uint) (*domain.Profile, error) {
	if m.GetAuthenticatedUserFunc != nil {
		return m.GetAuthenticatedUserFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
