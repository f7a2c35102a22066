package mocks

import (
	"context"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueIfAbsentFunc func(ctx context.Context, mobile string) error
	ConsumeFunc       func(ctx context.Context, mobile, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) IssueIfAbsent(ctx context.Context, mobile string) error {
	if m.IssueIfAbsentFunc != nil {
		return m.IssueIfAbsentFunc(ctx, mobile)
	}
	// Default behavior: success
	return nil
}

func (m *MockOTPService) Consume(ctx context.Context, mobile, code string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, mobile, code)
	}
	// Default behavior: no live code
	return domain.ErrOTPInvalidOrExpired
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
