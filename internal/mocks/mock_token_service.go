package mocks

import "github.com/Mr-Mosio/BaranBackend/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(accountID uint, mobile string, roleID *uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(accountID uint, mobile string, roleID *uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, mobile, roleID)
	}
	// Default behavior: opaque placeholder
	return "mock-token", nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
