package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// ClientRepositoryImpl implements domain.ClientRepository using GORM
type ClientRepositoryImpl struct {
	db *gorm.DB
}

// DBClientRecord represents the database model for ClientRecord
type DBClientRecord struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Name         string    `gorm:"size:255"`
	Address      string    `gorm:"size:512"`
	Category     string    `gorm:"index;size:255"`
	District     string    `gorm:"size:255"`
	AgentPro     string    `gorm:"column:agent_pro;size:255"`
	MobileNumber string    `gorm:"uniqueIndex;size:32"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBClientRecord) TableName() string {
	return "registered_clients"
}

// NewClientRepository creates a new registered-client repository
func NewClientRepository(db *gorm.DB) domain.ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

// Create implements domain.ClientRepository
func (r *ClientRepositoryImpl) Create(ctx context.Context, client *domain.ClientRecord) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	dbClient := r.domainToDB(client)
	return r.db.WithContext(ctx).Create(dbClient).Error
}

// FindByMobile implements domain.ClientRepository
func (r *ClientRepositoryImpl) FindByMobile(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
	var dbClient DBClientRecord
	err := r.db.WithContext(ctx).Where("mobile_number = ?", mobileNumber).First(&dbClient).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrClientNotRegistered
		}
		return nil, err
	}
	return r.dbToDomain(&dbClient), nil
}

func (r *ClientRepositoryImpl) domainToDB(client *domain.ClientRecord) *DBClientRecord {
	return &DBClientRecord{
		ID:           client.ID,
		Name:         client.Name,
		Address:      client.Address,
		Category:     client.Category,
		District:     client.District,
		AgentPro:     client.AgentPro,
		MobileNumber: client.MobileNumber,
	}
}

func (r *ClientRepositoryImpl) dbToDomain(dbClient *DBClientRecord) *domain.ClientRecord {
	return &domain.ClientRecord{
		ID:           dbClient.ID,
		Name:         dbClient.Name,
		Address:      dbClient.Address,
		Category:     dbClient.Category,
		District:     dbClient.District,
		AgentPro:     dbClient.AgentPro,
		MobileNumber: dbClient.MobileNumber,
	}
}
