package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// AdminRepositoryImpl implements domain.AdminRepository using GORM
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// DBAdminAccount represents the database model for AdminAccount
type DBAdminAccount struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password"`
	Role         string    `gorm:"index;size:64"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAdminAccount) TableName() string {
	return "admin_accounts"
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

// Create implements domain.AdminRepository
func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *domain.AdminAccount) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	dbAdmin := r.domainToDB(admin)
	return r.db.WithContext(ctx).Create(dbAdmin).Error
}

// FindByUsername implements domain.AdminRepository
func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	var dbAdmin DBAdminAccount
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbAdmin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAdmin), nil
}

// Count implements domain.AdminRepository
func (r *AdminRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAdminAccount{}).Count(&count).Error
	return count, err
}

func (r *AdminRepositoryImpl) domainToDB(admin *domain.AdminAccount) *DBAdminAccount {
	return &DBAdminAccount{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		Role:         admin.Role,
	}
}

func (r *AdminRepositoryImpl) dbToDomain(dbAdmin *DBAdminAccount) *domain.AdminAccount {
	return &domain.AdminAccount{
		ID:           dbAdmin.ID,
		Username:     dbAdmin.Username,
		PasswordHash: dbAdmin.PasswordHash,
		Role:         dbAdmin.Role,
		CreatedAt:    dbAdmin.CreatedAt,
		UpdatedAt:    dbAdmin.UpdatedAt,
	}
}
