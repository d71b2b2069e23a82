package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockMemberRepository implements domain.MemberRepository for testing
type MockMemberRepository struct {
	CreateFunc       func(ctx context.Context, member *domain.TeamMember) error
	FindByMobileFunc func(ctx context.Context, mobileNumber string) (*domain.TeamMember, error)
	MarkVerifiedFunc func(ctx context.Context, id string) error
}

// NewMockMemberRepository creates a new MockMemberRepository
func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{}
}

// Create creates a team member
func (m *MockMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

// FindByMobile finds a team member by mobile number
func (m *MockMemberRepository) FindByMobile(ctx context.Context, mobileNumber string) (*domain.TeamMember, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobileNumber)
	}
	// Default behavior: not found
	return nil, domain.ErrMemberNotFound
}

// MarkVerified marks a team member as verified
func (m *MockMemberRepository) MarkVerified(ctx context.Context, id string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id)
	}
	return nil
}
