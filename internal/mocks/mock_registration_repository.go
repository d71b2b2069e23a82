package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockRegistrationRepository implements domain.RegistrationRepository for testing
type MockRegistrationRepository struct {
	CreateFunc                  func(ctx context.Context, reg *domain.EmploymentRegistration) error
	FindByClientAndCategoryFunc func(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error)
	FindActiveByMobileFunc      func(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error)
	ListFunc                    func(ctx context.Context) ([]domain.EmploymentRegistration, error)
	UpdateStatusFunc            func(ctx context.Context, id, status string) error
}

// NewMockRegistrationRepository creates a new MockRegistrationRepository
func NewMockRegistrationRepository() *MockRegistrationRepository {
	return &MockRegistrationRepository{}
}

// Create creates a registration
func (m *MockRegistrationRepository) Create(ctx context.Context, reg *domain.EmploymentRegistration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reg)
	}
	return nil
}

// FindByClientAndCategory queries registrations for an exact pair
func (m *MockRegistrationRepository) FindByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
	if m.FindByClientAndCategoryFunc != nil {
		return m.FindByClientAndCategoryFunc(ctx, clientID, categoryID)
	}
	return nil, nil
}

// FindActiveByMobile queries non-rejected registrations by mobile number
func (m *MockRegistrationRepository) FindActiveByMobile(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
	if m.FindActiveByMobileFunc != nil {
		return m.FindActiveByMobileFunc(ctx, mobileNumber)
	}
	return nil, nil
}

// List lists all registrations
func (m *MockRegistrationRepository) List(ctx context.Context) ([]domain.EmploymentRegistration, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// UpdateStatus updates a registration's status
func (m *MockRegistrationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}
