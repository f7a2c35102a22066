package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockOTPRepository implements domain.OTPRepository for testing
type MockOTPRepository struct {
	CreateIfAbsentFunc func(ctx context.Context, otp *domain.OTPCode) (bool, error)
	ConsumeFunc        func(ctx context.Context, mobile, code string) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

func (m *MockOTPRepository) CreateIfAbsent(ctx context.Context, otp *domain.OTPCode) (bool, error) {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, otp)
	}
	// Default behavior: created
	return true, nil
}

func (m *MockOTPRepository) Consume(ctx context.Context, mobile, code string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, mobile, code)
	}
	// Default behavior: no live code
	return domain.ErrOTPInvalidOrExpired
}

// Compile-time interface compliance verification
var _ domain.OTPRepository = (*MockOTPRepository)(nil)
