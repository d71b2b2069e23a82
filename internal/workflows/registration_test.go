package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/mocks"
)

func testClient(category string) *domain.ClientRecord {
	return &domain.ClientRecord{
		ID:           "c1",
		Name:         "Lakshmi",
		Category:     category,
		District:     "Palakkad",
		MobileNumber: "9876543210",
	}
}

func testCategories() []domain.EmploymentCategory {
	return []domain.EmploymentCategory{
		{ID: "cat1", Name: "Weaving", IsActive: true},
		{ID: "cat2", Name: "Tailoring", IsActive: true},
	}
}

func TestRegistration_VerifyMobileNumber(t *testing.T) {
	tests := []struct {
		name           string
		mobileNumber   string
		setupMocks     func(*mocks.MockRemoteDataService)
		expectSuccess  bool
		expectedError  string
		expectedStep   RegistrationStep
		expectedCatLen int
	}{
		{
			name:         "known mobile number advances to select",
			mobileNumber: "9876543210",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
					return testClient("Weaving"), nil
				}
				remote.ActiveCategoriesFunc = func(ctx context.Context) ([]domain.EmploymentCategory, error) {
					return testCategories(), nil
				}
			},
			expectSuccess:  true,
			expectedStep:   StepSelect,
			expectedCatLen: 2,
		},
		{
			name:          "unknown mobile number is not registered",
			mobileNumber:  "9999999999",
			setupMocks:    func(remote *mocks.MockRemoteDataService) {},
			expectedError: "You are not registered. Please contact your agent.",
			expectedStep:  StepVerify,
		},
		{
			name:          "empty mobile number rejected before remote call",
			mobileNumber:  "  ",
			setupMocks:    func(remote *mocks.MockRemoteDataService) {},
			expectedError: "Please enter your mobile number",
			expectedStep:  StepVerify,
		},
		{
			name:         "lookup error reads as not registered",
			mobileNumber: "9876543210",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedError: "You are not registered. Please contact your agent.",
			expectedStep:  StepVerify,
		},
		{
			name:         "category fetch failure degrades to empty list",
			mobileNumber: "9876543210",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
					return testClient("Weaving"), nil
				}
				remote.ActiveCategoriesFunc = func(ctx context.Context) ([]domain.EmploymentCategory, error) {
					return nil, errors.New("timeout")
				}
			},
			expectSuccess:  true,
			expectedStep:   StepSelect,
			expectedCatLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewMockRemoteDataService()
			tt.setupMocks(remote)

			flow := NewRegistration(remote)
			result := flow.VerifyMobileNumber(context.Background(), tt.mobileNumber)

			if tt.expectSuccess {
				if !result.Success {
					t.Fatalf("expected success, got %+v", result)
				}
				if result.Client == nil {
					t.Fatal("expected client in result")
				}
				if len(result.Categories) != tt.expectedCatLen {
					t.Errorf("expected %d categories, got %d", tt.expectedCatLen, len(result.Categories))
				}
			} else {
				if result.Success {
					t.Fatalf("expected failure, got %+v", result)
				}
				if result.Error != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, result.Error)
				}
			}
			if flow.Step() != tt.expectedStep {
				t.Errorf("expected step %v, got %v", tt.expectedStep, flow.Step())
			}
		})
	}
}

func TestRegistration_CanApplyForCategory(t *testing.T) {
	tests := []struct {
		name           string
		clientCategory string
		applyFor       string
		expected       bool
	}{
		{"job card client may apply for anything", "Job Card Holder", "Weaving", true},
		{"job card match is case-insensitive", "JOB CARD", "Tailoring", true},
		{"others client may apply for anything", "Others", "Weaving", true},
		{"others match is a substring", "Category: others", "Tailoring", true},
		{"exact match is eligible", "Weaving", "Weaving", true},
		{"different category is not eligible", "Weaving", "Tailoring", false},
		{"exact match is case-sensitive", "Weaving", "weaving", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewMockRemoteDataService()
			remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
				return testClient(tt.clientCategory), nil
			}

			flow := NewRegistration(remote)
			if r := flow.VerifyMobileNumber(context.Background(), "9876543210"); !r.Success {
				t.Fatalf("verify failed: %+v", r)
			}

			if got := flow.CanApplyForCategory(tt.applyFor); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRegistration_CanApplyBeforeVerify(t *testing.T) {
	flow := NewRegistration(mocks.NewMockRemoteDataService())
	if flow.CanApplyForCategory("Weaving") {
		t.Error("no client verified; nothing is eligible")
	}
}

func TestRegistration_SubmitRegistration(t *testing.T) {
	tests := []struct {
		name          string
		categoryID    string
		skipVerify    bool
		setupMocks    func(*mocks.MockRemoteDataService)
		expectSuccess bool
		expectedError string
		expectedStep  RegistrationStep
	}{
		{
			name:          "successful submission inserts pending and confirms",
			categoryID:    "cat1",
			setupMocks:    func(remote *mocks.MockRemoteDataService) {},
			expectSuccess: true,
			expectedStep:  StepConfirm,
		},
		{
			name:          "submit without verified client",
			categoryID:    "cat1",
			skipVerify:    true,
			setupMocks:    func(remote *mocks.MockRemoteDataService) {},
			expectedError: "Please verify your mobile number first",
			expectedStep:  StepVerify,
		},
		{
			name:          "submit without category",
			categoryID:    "",
			setupMocks:    func(remote *mocks.MockRemoteDataService) {},
			expectedError: "Please select a category",
			expectedStep:  StepSelect,
		},
		{
			name:       "exact pair duplicate wins over the global check",
			categoryID: "cat1",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.RegistrationsByClientAndCategoryFunc = func(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
					return []domain.EmploymentRegistration{{ID: "r1", Status: domain.StatusRejected}}, nil
				}
				remote.ActiveRegistrationsByMobileFunc = func(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
					return []domain.EmploymentRegistration{{ID: "r2", Status: domain.StatusPending}}, nil
				}
			},
			expectedError: "You have already registered for this category.",
			expectedStep:  StepSelect,
		},
		{
			name:       "active registration in another category blocks",
			categoryID: "cat2",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.ActiveRegistrationsByMobileFunc = func(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
					return []domain.EmploymentRegistration{{ID: "r1", CategoryID: "cat1", Status: domain.StatusPaused}}, nil
				}
			},
			expectedError: "You can only have one active registration at a time. Please contact admin to pause your existing registration before applying for a new program.",
			expectedStep:  StepSelect,
		},
		{
			name:       "pair check failure fails closed",
			categoryID: "cat1",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.RegistrationsByClientAndCategoryFunc = func(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
					return nil, errors.New("timeout")
				}
			},
			expectedError: "Failed to submit registration",
			expectedStep:  StepSelect,
		},
		{
			name:       "insert failure fails the submission",
			categoryID: "cat1",
			setupMocks: func(remote *mocks.MockRemoteDataService) {
				remote.CreateRegistrationFunc = func(ctx context.Context, reg *domain.EmploymentRegistration) error {
					return errors.New("constraint violation")
				}
			},
			expectedError: "Failed to submit registration",
			expectedStep:  StepSelect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewMockRemoteDataService()
			remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
				return testClient("Weaving"), nil
			}
			var created *domain.EmploymentRegistration
			tt.setupMocks(remote)
			if remote.CreateRegistrationFunc == nil {
				remote.CreateRegistrationFunc = func(ctx context.Context, reg *domain.EmploymentRegistration) error {
					created = reg
					return nil
				}
			}

			flow := NewRegistration(remote)
			if !tt.skipVerify {
				if r := flow.VerifyMobileNumber(context.Background(), "9876543210"); !r.Success {
					t.Fatalf("verify failed: %+v", r)
				}
			}

			result := flow.SubmitRegistration(context.Background(), tt.categoryID)

			if tt.expectSuccess {
				if !result.Success {
					t.Fatalf("expected success, got %+v", result)
				}
				if created == nil {
					t.Fatal("expected a registration insert")
				}
				if created.Status != domain.StatusPending {
					t.Errorf("expected pending status, got %s", created.Status)
				}
				if created.ClientID != "c1" || created.CategoryID != tt.categoryID {
					t.Errorf("unexpected registration %+v", created)
				}
				if created.MobileNumber != "9876543210" {
					t.Errorf("expected flow mobile number, got %s", created.MobileNumber)
				}
			} else {
				if result.Success {
					t.Fatalf("expected failure, got %+v", result)
				}
				if result.Error != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, result.Error)
				}
			}
			if flow.Step() != tt.expectedStep {
				t.Errorf("expected step %v, got %v", tt.expectedStep, flow.Step())
			}
		})
	}
}

func TestRegistration_Reset(t *testing.T) {
	remote := mocks.NewMockRemoteDataService()
	remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
		return testClient("Weaving"), nil
	}
	remote.ActiveCategoriesFunc = func(ctx context.Context) ([]domain.EmploymentCategory, error) {
		return testCategories(), nil
	}

	flow := NewRegistration(remote)
	if r := flow.VerifyMobileNumber(context.Background(), "9876543210"); !r.Success {
		t.Fatalf("verify failed: %+v", r)
	}

	flow.Reset()
	if flow.Step() != StepVerify {
		t.Errorf("expected verify step after reset, got %v", flow.Step())
	}
	if flow.Client() != nil {
		t.Error("expected client cleared")
	}
	if flow.Categories() != nil {
		t.Error("expected categories cleared")
	}
}

func TestRegistration_ResetDropsStaleResult(t *testing.T) {
	remote := mocks.NewMockRemoteDataService()
	flow := NewRegistration(remote)

	remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
		flow.Reset()
		return testClient("Weaving"), nil
	}

	result := flow.VerifyMobileNumber(context.Background(), "9876543210")
	if result.Success || result.Error != "" {
		t.Errorf("expected empty no-op result, got %+v", result)
	}
	if flow.Step() != StepVerify {
		t.Errorf("expected step unchanged by stale result, got %v", flow.Step())
	}
	if flow.Client() != nil {
		t.Error("expected no client held after reset")
	}
}
