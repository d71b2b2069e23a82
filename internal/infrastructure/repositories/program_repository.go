package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// ProgramRepositoryImpl implements domain.ProgramRepository using GORM
type ProgramRepositoryImpl struct {
	db *gorm.DB
}

// DBProgram represents the database model for Program
type DBProgram struct {
	ID          string `gorm:"primaryKey;size:36"`
	CategoryID  string `gorm:"index;size:36"`
	Name        string `gorm:"size:255"`
	Description string `gorm:"size:512"`
	Conditions  string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBProgram) TableName() string {
	return "programs"
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *gorm.DB) domain.ProgramRepository {
	return &ProgramRepositoryImpl{db: db}
}

// Create implements domain.ProgramRepository
func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *domain.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	dbProgram := r.domainToDB(program)
	return r.db.WithContext(ctx).Create(dbProgram).Error
}

// Update implements domain.ProgramRepository
func (r *ProgramRepositoryImpl) Update(ctx context.Context, program *domain.Program) error {
	return r.db.WithContext(ctx).Model(&DBProgram{}).Where("id = ?", program.ID).Updates(map[string]interface{}{
		"name":        program.Name,
		"description": program.Description,
		"conditions":  program.Conditions,
	}).Error
}

// Delete implements domain.ProgramRepository
func (r *ProgramRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBProgram{}).Error
}

// ListByCategory implements domain.ProgramRepository
func (r *ProgramRepositoryImpl) ListByCategory(ctx context.Context, categoryID string) ([]domain.Program, error) {
	var dbPrograms []DBProgram
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("name").Find(&dbPrograms).Error; err != nil {
		return nil, err
	}

	programs := make([]domain.Program, 0, len(dbPrograms))
	for i := range dbPrograms {
		programs = append(programs, *r.dbToDomain(&dbPrograms[i]))
	}
	return programs, nil
}

func (r *ProgramRepositoryImpl) domainToDB(program *domain.Program) *DBProgram {
	return &DBProgram{
		ID:          program.ID,
		CategoryID:  program.CategoryID,
		Name:        program.Name,
		Description: program.Description,
		Conditions:  program.Conditions,
	}
}

func (r *ProgramRepositoryImpl) dbToDomain(dbProgram *DBProgram) *domain.Program {
	return &domain.Program{
		ID:          dbProgram.ID,
		CategoryID:  dbProgram.CategoryID,
		Name:        dbProgram.Name,
		Description: dbProgram.Description,
		Conditions:  dbProgram.Conditions,
	}
}
