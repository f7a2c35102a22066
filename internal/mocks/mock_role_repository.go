package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockRoleRepository implements domain.RoleRepository for testing
type MockRoleRepository struct {
	CreateFunc     func(ctx context.Context, role *domain.Role) error
	FindByNameFunc func(ctx context.Context, name string) (*domain.Role, error)
	ListFunc       func(ctx context.Context) ([]domain.Role, error)
}

// NewMockRoleRepository creates a new MockRoleRepository with default behaviors
func NewMockRoleRepository() *MockRoleRepository {
	return &MockRoleRepository{}
}

func (m *MockRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, role)
	}
	// Default behavior: success
	return nil
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	// Default behavior: not found
	return nil, domain.ErrRoleNotFound
}

func (m *MockRoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.RoleRepository = (*MockRoleRepository)(nil)
