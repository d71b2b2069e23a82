package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/elifesajna/self-employ-final/domain"
)

func TestCategoryRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	category := &domain.EmploymentCategory{Name: "Weaving", Description: "Handloom weaving", IsActive: true}
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if category.ID == "" {
		t.Error("expected generated id")
	}

	found, err := repo.FindByID(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Weaving" || !found.IsActive {
		t.Errorf("unexpected category %+v", found)
	}
}

func TestCategoryRepository_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	active := &domain.EmploymentCategory{Name: "Tailoring", IsActive: true}
	inactive := &domain.EmploymentCategory{Name: "Weaving", IsActive: false}
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, inactive); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 categories, got %d", len(all))
	}

	activeOnly, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].Name != "Tailoring" {
		t.Errorf("expected only the active category, got %+v", activeOnly)
	}
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &domain.EmploymentCategory{Name: "Weaving", IsActive: true}
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	category.Description = "Handloom and powerloom"
	category.IsActive = false
	if err := repo.Update(ctx, category); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.IsActive || found.Description != "Handloom and powerloom" {
		t.Errorf("unexpected category after update %+v", found)
	}

	missing := &domain.EmploymentCategory{ID: "missing", Name: "X"}
	if err := repo.Update(ctx, missing); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &domain.EmploymentCategory{Name: "Weaving", IsActive: true}
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, category.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected category gone, got %v", err)
	}

	if err := repo.Delete(ctx, category.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound on double delete, got %v", err)
	}
}
