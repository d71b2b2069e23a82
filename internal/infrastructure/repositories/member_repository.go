package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// MemberRepositoryImpl implements domain.MemberRepository using GORM
type MemberRepositoryImpl struct {
	db *gorm.DB
}

// DBTeamMember represents the database model for TeamMember
type DBTeamMember struct {
	ID           string    `gorm:"primaryKey;size:36"`
	MobileNumber string    `gorm:"uniqueIndex;size:32"`
	Name         string    `gorm:"size:255"`
	IsVerified   bool      `gorm:"index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBTeamMember) TableName() string {
	return "team_members"
}

// NewMemberRepository creates a new team member repository
func NewMemberRepository(db *gorm.DB) domain.MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

// Create implements domain.MemberRepository
func (r *MemberRepositoryImpl) Create(ctx context.Context, member *domain.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	dbMember := r.domainToDB(member)
	return r.db.WithContext(ctx).Create(dbMember).Error
}

// FindByMobile implements domain.MemberRepository
func (r *MemberRepositoryImpl) FindByMobile(ctx context.Context, mobileNumber string) (*domain.TeamMember, error) {
	var dbMember DBTeamMember
	err := r.db.WithContext(ctx).Where("mobile_number = ?", mobileNumber).First(&dbMember).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbMember), nil
}

// MarkVerified implements domain.MemberRepository
func (r *MemberRepositoryImpl) MarkVerified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&DBTeamMember{}).Where("id = ?", id).Update("is_verified", true).Error
}

func (r *MemberRepositoryImpl) domainToDB(member *domain.TeamMember) *DBTeamMember {
	return &DBTeamMember{
		ID:           member.ID,
		MobileNumber: member.MobileNumber,
		Name:         member.Name,
		IsVerified:   member.IsVerified,
	}
}

func (r *MemberRepositoryImpl) dbToDomain(dbMember *DBTeamMember) *domain.TeamMember {
	return &domain.TeamMember{
		ID:           dbMember.ID,
		MobileNumber: dbMember.MobileNumber,
		Name:         dbMember.Name,
		IsVerified:   dbMember.IsVerified,
		CreatedAt:    dbMember.CreatedAt,
		UpdatedAt:    dbMember.UpdatedAt,
	}
}
