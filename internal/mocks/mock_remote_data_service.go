package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockRemoteDataService implements domain.RemoteDataService for testing
type MockRemoteDataService struct {
	VerifyAdminLoginFunc                func(ctx context.Context, username, password string) ([]domain.AdminRow, error)
	SendVerificationCodeFunc            func(ctx context.Context, mobileNumber string) (*domain.VerificationCodeResponse, error)
	VerifyMemberLoginFunc               func(ctx context.Context, mobileNumber, code string) (*domain.MemberLoginResponse, error)
	FindClientByMobileFunc              func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error)
	ActiveCategoriesFunc                func(ctx context.Context) ([]domain.EmploymentCategory, error)
	RegistrationsByClientAndCategoryFunc func(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error)
	ActiveRegistrationsByMobileFunc     func(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error)
	CreateRegistrationFunc              func(ctx context.Context, reg *domain.EmploymentRegistration) error
}

// NewMockRemoteDataService creates a new MockRemoteDataService with default behaviors
func NewMockRemoteDataService() *MockRemoteDataService {
	return &MockRemoteDataService{}
}

// VerifyAdminLogin exchanges credentials for admin rows
func (m *MockRemoteDataService) VerifyAdminLogin(ctx context.Context, username, password string) ([]domain.AdminRow, error) {
	if m.VerifyAdminLoginFunc != nil {
		return m.VerifyAdminLoginFunc(ctx, username, password)
	}
	// Default behavior: zero rows
	return nil, nil
}

// SendVerificationCode issues a one-time code
func (m *MockRemoteDataService) SendVerificationCode(ctx context.Context, mobileNumber string) (*domain.VerificationCodeResponse, error) {
	if m.SendVerificationCodeFunc != nil {
		return m.SendVerificationCodeFunc(ctx, mobileNumber)
	}
	// Default behavior: success with a fixed code
	return &domain.VerificationCodeResponse{Success: true, VerificationCode: "123456"}, nil
}

// VerifyMemberLogin consumes a code and returns the member record
func (m *MockRemoteDataService) VerifyMemberLogin(ctx context.Context, mobileNumber, code string) (*domain.MemberLoginResponse, error) {
	if m.VerifyMemberLoginFunc != nil {
		return m.VerifyMemberLoginFunc(ctx, mobileNumber, code)
	}
	// Default behavior: failure
	return &domain.MemberLoginResponse{Error: "Invalid verification code"}, nil
}

// FindClientByMobile looks up a client record by mobile number
func (m *MockRemoteDataService) FindClientByMobile(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
	if m.FindClientByMobileFunc != nil {
		return m.FindClientByMobileFunc(ctx, mobileNumber)
	}
	// Default behavior: not registered
	return nil, domain.ErrClientNotRegistered
}

// ActiveCategories lists active employment categories
func (m *MockRemoteDataService) ActiveCategories(ctx context.Context) ([]domain.EmploymentCategory, error) {
	if m.ActiveCategoriesFunc != nil {
		return m.ActiveCategoriesFunc(ctx)
	}
	return nil, nil
}

// RegistrationsByClientAndCategory queries registrations for an exact pair
func (m *MockRemoteDataService) RegistrationsByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
	if m.RegistrationsByClientAndCategoryFunc != nil {
		return m.RegistrationsByClientAndCategoryFunc(ctx, clientID, categoryID)
	}
	return nil, nil
}

// ActiveRegistrationsByMobile queries non-rejected registrations by mobile number
func (m *MockRemoteDataService) ActiveRegistrationsByMobile(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
	if m.ActiveRegistrationsByMobileFunc != nil {
		return m.ActiveRegistrationsByMobileFunc(ctx, mobileNumber)
	}
	return nil, nil
}

// CreateRegistration inserts an employment registration
func (m *MockRemoteDataService) CreateRegistration(ctx context.Context, reg *domain.EmploymentRegistration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	// Default behavior: success
	return nil
}
