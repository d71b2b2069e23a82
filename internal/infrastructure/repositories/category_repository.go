package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// CategoryRepositoryImpl implements domain.CategoryRepository using GORM
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// DBEmploymentCategory represents the database model for EmploymentCategory
type DBEmploymentCategory struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;size:255"`
	Description string `gorm:"size:512"`
	IsActive    bool   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBEmploymentCategory) TableName() string {
	return "employment_categories"
}

// NewCategoryRepository creates a new employment category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// Create implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *domain.EmploymentCategory) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	dbCategory := r.domainToDB(category)
	return r.db.WithContext(ctx).Create(dbCategory).Error
}

// Update implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *domain.EmploymentCategory) error {
	result := r.db.WithContext(ctx).Model(&DBEmploymentCategory{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"is_active":   category.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBEmploymentCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// FindByID implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.EmploymentCategory, error) {
	var dbCategory DBEmploymentCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCategory).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCategory), nil
}

// List implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]domain.EmploymentCategory, error) {
	var dbCategories []DBEmploymentCategory
	if err := r.db.WithContext(ctx).Order("name").Find(&dbCategories).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbCategories), nil
}

// ListActive implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) ListActive(ctx context.Context) ([]domain.EmploymentCategory, error) {
	var dbCategories []DBEmploymentCategory
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&dbCategories).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbCategories), nil
}

func (r *CategoryRepositoryImpl) domainToDB(category *domain.EmploymentCategory) *DBEmploymentCategory {
	return &DBEmploymentCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
	}
}

func (r *CategoryRepositoryImpl) dbToDomain(dbCategory *DBEmploymentCategory) *domain.EmploymentCategory {
	return &domain.EmploymentCategory{
		ID:          dbCategory.ID,
		Name:        dbCategory.Name,
		Description: dbCategory.Description,
		IsActive:    dbCategory.IsActive,
	}
}

func (r *CategoryRepositoryImpl) dbToDomainSlice(dbCategories []DBEmploymentCategory) []domain.EmploymentCategory {
	categories := make([]domain.EmploymentCategory, 0, len(dbCategories))
	for i := range dbCategories {
		categories = append(categories, *r.dbToDomain(&dbCategories[i]))
	}
	return categories
}
