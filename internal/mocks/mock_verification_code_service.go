package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockVerificationCodeService implements domain.VerificationCodeService for testing
type MockVerificationCodeService struct {
	IssueFunc     func(ctx context.Context, mobileNumber string) (string, error)
	ConsumeFunc   func(ctx context.Context, mobileNumber, code string) (bool, error)
	CanResendFunc func(ctx context.Context, mobileNumber string) (bool, int64, error)
}

// NewMockVerificationCodeService creates a new MockVerificationCodeService
func NewMockVerificationCodeService() *MockVerificationCodeService {
	return &MockVerificationCodeService{}
}

// Issue issues a one-time code
func (m *MockVerificationCodeService) Issue(ctx context.Context, mobileNumber string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, mobileNumber)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Consume validates and consumes a one-time code
func (m *MockVerificationCodeService) Consume(ctx context.Context, mobileNumber, code string) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, mobileNumber, code)
	}
	// Default behavior: accept the fixed code
	if code == "123456" {
		return true, nil
	}
	return false, domain.ErrCodeInvalid
}

// CanResend reports whether a new code may be issued
func (m *MockVerificationCodeService) CanResend(ctx context.Context, mobileNumber string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, mobileNumber)
	}
	return true, 0, nil
}
