package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// RegistrationRepositoryImpl implements domain.RegistrationRepository using GORM
type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

// DBEmploymentRegistration represents the database model for EmploymentRegistration
type DBEmploymentRegistration struct {
	ID           string    `gorm:"primaryKey;size:36"`
	ClientID     string    `gorm:"index;size:36"`
	CategoryID   string    `gorm:"index;size:36"`
	MobileNumber string    `gorm:"index;size:32"`
	Status       string    `gorm:"index;size:32"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBEmploymentRegistration) TableName() string {
	return "employment_registrations"
}

// NewRegistrationRepository creates a new employment registration repository
func NewRegistrationRepository(db *gorm.DB) domain.RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

// Create implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) Create(ctx context.Context, reg *domain.EmploymentRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	dbReg := r.domainToDB(reg)
	if err := r.db.WithContext(ctx).Create(dbReg).Error; err != nil {
		return err
	}
	reg.CreatedAt = dbReg.CreatedAt
	return nil
}

// FindByClientAndCategory implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) FindByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
	var dbRegs []DBEmploymentRegistration
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND category_id = ?", clientID, categoryID).
		Find(&dbRegs).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbRegs), nil
}

// FindActiveByMobile implements domain.RegistrationRepository. The
// dual-registration rule counts every status except rejected.
func (r *RegistrationRepositoryImpl) FindActiveByMobile(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
	var dbRegs []DBEmploymentRegistration
	err := r.db.WithContext(ctx).
		Where("mobile_number = ? AND status <> ?", mobileNumber, domain.StatusRejected).
		Find(&dbRegs).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbRegs), nil
}

// List implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) List(ctx context.Context) ([]domain.EmploymentRegistration, error) {
	var dbRegs []DBEmploymentRegistration
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbRegs).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbRegs), nil
}

// UpdateStatus implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&DBEmploymentRegistration{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepositoryImpl) domainToDB(reg *domain.EmploymentRegistration) *DBEmploymentRegistration {
	return &DBEmploymentRegistration{
		ID:           reg.ID,
		ClientID:     reg.ClientID,
		CategoryID:   reg.CategoryID,
		MobileNumber: reg.MobileNumber,
		Status:       reg.Status,
	}
}

func (r *RegistrationRepositoryImpl) dbToDomain(dbReg *DBEmploymentRegistration) *domain.EmploymentRegistration {
	return &domain.EmploymentRegistration{
		ID:           dbReg.ID,
		ClientID:     dbReg.ClientID,
		CategoryID:   dbReg.CategoryID,
		MobileNumber: dbReg.MobileNumber,
		Status:       dbReg.Status,
		CreatedAt:    dbReg.CreatedAt,
		UpdatedAt:    dbReg.UpdatedAt,
	}
}

func (r *RegistrationRepositoryImpl) dbToDomainSlice(dbRegs []DBEmploymentRegistration) []domain.EmploymentRegistration {
	regs := make([]domain.EmploymentRegistration, 0, len(dbRegs))
	for i := range dbRegs {
		regs = append(regs, *r.dbToDomain(&dbRegs[i]))
	}
	return regs
}
