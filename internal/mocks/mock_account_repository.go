package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc       func(ctx context.Context, account *domain.Account) error
	FindByMobileFunc func(ctx context.Context, mobile string) (*domain.Account, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Account, error)
	AssignRoleFunc   func(ctx context.Context, accountID uint, roleName string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

func (m *MockAccountRepository) FindByMobile(ctx context.Context, mobile string) (*domain.Account, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountRepository) AssignRole(ctx context.Context, accountID uint, roleName string) error {
	if m.AssignRoleFunc != nil {
		return m.AssignRoleFunc(ctx, accountID, roleName)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
