package mocks

import (
	"context"

	"github.com/elifesajna/self-employ-final/domain"
)

// MockCategoryRepository implements domain.CategoryRepository for testing
type MockCategoryRepository struct {
	CreateFunc     func(ctx context.Context, category *domain.EmploymentCategory) error
	UpdateFunc     func(ctx context.Context, category *domain.EmploymentCategory) error
	DeleteFunc     func(ctx context.Context, id string) error
	FindByIDFunc   func(ctx context.Context, id string) (*domain.EmploymentCategory, error)
	ListFunc       func(ctx context.Context) ([]domain.EmploymentCategory, error)
	ListActiveFunc func(ctx context.Context) ([]domain.EmploymentCategory, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

// Create creates a category
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.EmploymentCategory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

// Update updates a category
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.EmploymentCategory) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

// Delete deletes a category
func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// FindByID finds a category by ID
func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.EmploymentCategory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCategoryNotFound
}

// List lists all categories
func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.EmploymentCategory, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// ListActive lists active categories
func (m *MockCategoryRepository) ListActive(ctx context.Context) ([]domain.EmploymentCategory, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}
