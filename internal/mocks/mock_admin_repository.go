package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockAdminRepository implements domain.AdminRepository for testing
type MockAdminRepository struct {
	CreateFunc         func(ctx context.Context, admin *domain.AdminAccount) error
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.AdminAccount, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

// NewMockAdminRepository creates a new MockAdminRepository
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

// Create creates an admin account
func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

// FindByUsername finds an admin account by username
func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default behavior: not found
	return nil, domain.ErrAdminNotFound
}

// Count counts admin accounts
func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
