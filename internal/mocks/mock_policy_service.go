package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockPolicyService implements domain.PolicyService for testing
type MockPolicyService struct {
	SyncFromRolesFunc func(ctx context.Context) error
	HasPermissionFunc func(roleName, permission string) (bool, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

func (m *MockPolicyService) SyncFromRoles(ctx context.Context) error {
	if m.SyncFromRolesFunc != nil {
		return m.SyncFromRolesFunc(ctx)
	}
	// Default behavior: success
	return nil
}

func (m *MockPolicyService) HasPermission(roleName, permission string) (bool, error) {
	if m.HasPermissionFunc != nil {
		return m.HasPermissionFunc(roleName, permission)
	}
	// Default behavior: denied
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
