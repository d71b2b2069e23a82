package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockClientRepository implements domain.ClientRepository for testing
type MockClientRepository struct {
	CreateFunc       func(ctx context.Context, client *domain.ClientRecord) error
	FindByMobileFunc func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error)
}

// NewMockClientRepository creates a new MockClientRepository
func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{}
}

// Create creates a client record
func (m *MockClientRepository) Create(ctx context.Context, client *domain.ClientRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	return nil
}

// FindByMobile finds a client record by mobile number
func (m *MockClientRepository) FindByMobile(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobileNumber)
	}
	// Default behavior: not registered
	return nil, domain.ErrClientNotRegistered
}
