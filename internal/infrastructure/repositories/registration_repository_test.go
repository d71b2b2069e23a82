package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&DBAdminAccount{},
		&DBTeamMember{},
		&DBClientRecord{},
		&DBEmploymentCategory{},
		&DBProgram{},
		&DBEmploymentRegistration{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedRegistration(t *testing.T, db *gorm.DB, id, clientID, categoryID, mobile, status string, createdAt time.Time) {
	t.Helper()

	reg := &DBEmploymentRegistration{
		ID:           id,
		ClientID:     clientID,
		CategoryID:   categoryID,
		MobileNumber: mobile,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := db.Create(reg).Error; err != nil {
		t.Fatalf("failed to seed registration: %v", err)
	}
}

func TestRegistrationRepository_CreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)

	reg := &domain.EmploymentRegistration{
		ClientID:     "c1",
		CategoryID:   "cat1",
		MobileNumber: "9876543210",
		Status:       domain.StatusPending,
	}
	if err := repo.Create(context.Background(), reg); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if reg.ID == "" {
		t.Error("expected generated id")
	}

	found, err := repo.FindByClientAndCategory(context.Background(), "c1", "cat1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 || found[0].Status != domain.StatusPending {
		t.Errorf("unexpected result %+v", found)
	}
}

func TestRegistrationRepository_FindByClientAndCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	seedRegistration(t, db, "r1", "c1", "cat1", "9876543210", domain.StatusPending, now)
	seedRegistration(t, db, "r2", "c1", "cat2", "9876543210", domain.StatusApproved, now)
	seedRegistration(t, db, "r3", "c2", "cat1", "9123456789", domain.StatusPending, now)

	found, err := repo.FindByClientAndCategory(context.Background(), "c1", "cat1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != "r1" {
		t.Errorf("expected exactly the r1 pair, got %+v", found)
	}
}

func TestRegistrationRepository_FindActiveByMobile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	// Rejected does not count as active; pending, approved and paused do.
	seedRegistration(t, db, "r1", "c1", "cat1", "9876543210", domain.StatusRejected, now)
	seedRegistration(t, db, "r2", "c1", "cat2", "9876543210", domain.StatusPaused, now)
	seedRegistration(t, db, "r3", "c2", "cat1", "9123456789", domain.StatusPending, now)

	found, err := repo.FindActiveByMobile(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != "r2" {
		t.Errorf("expected only the paused registration, got %+v", found)
	}

	// Only rejected rows: no active registrations.
	if err := repo.UpdateStatus(context.Background(), "r2", domain.StatusRejected); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	found, err = repo.FindActiveByMobile(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected none active after rejection, got %+v", found)
	}
}

func TestRegistrationRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)

	base := time.Now().Add(-time.Hour)
	seedRegistration(t, db, "r1", "c1", "cat1", "9876543210", domain.StatusPending, base)
	seedRegistration(t, db, "r2", "c2", "cat1", "9123456789", domain.StatusPending, base.Add(time.Minute))

	regs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}
	if regs[0].ID != "r2" {
		t.Errorf("expected newest first, got %s", regs[0].ID)
	}
}

func TestRegistrationRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)

	seedRegistration(t, db, "r1", "c1", "cat1", "9876543210", domain.StatusPending, time.Now())

	if err := repo.UpdateStatus(context.Background(), "r1", domain.StatusApproved); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	regs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if regs[0].Status != domain.StatusApproved {
		t.Errorf("expected approved, got %s", regs[0].Status)
	}

	if err := repo.UpdateStatus(context.Background(), "missing", domain.StatusApproved); !errors.Is(err, domain.ErrRegistrationNotFound) {
		t.Errorf("expected ErrRegistrationNotFound, got %v", err)
	}
}
