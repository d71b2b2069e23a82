package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/elifesajna/self-employ-final/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "portal.",
		},
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs migration for all portal tables plus the Casbin
// policy table used for admin route authorization.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBAdminAccount{},
		&repositories.DBTeamMember{},
		&repositories.DBClientRecord{},
		&repositories.DBEmploymentCategory{},
		&repositories.DBProgram{},
		&repositories.DBEmploymentRegistration{},
	); err != nil {
		return fmt.Errorf("failed to migrate portal tables: %w", err)
	}

	// The adapter creates the casbin_rules table on first use.
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
