package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/mocks"
	"github.com/elifesajna/self-employ-final/internal/workflows"
)

func newRegistrationRouter(remote *mocks.MockRemoteDataService) (*gin.Engine, *workflows.Registration) {
	flow := workflows.NewRegistration(remote)
	h := NewRegistrationHandlers(flow)

	r := gin.New()
	r.POST("/registration/verify", h.Verify)
	r.POST("/registration/submit", h.Submit)
	r.POST("/registration/reset", h.Reset)
	return r, flow
}

func registeredClientMocks(category string) *mocks.MockRemoteDataService {
	remote := mocks.NewMockRemoteDataService()
	remote.FindClientByMobileFunc = func(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
		return &domain.ClientRecord{ID: "c1", Name: "Lakshmi", Category: category, MobileNumber: mobileNumber}, nil
	}
	remote.ActiveCategoriesFunc = func(ctx context.Context) ([]domain.EmploymentCategory, error) {
		return []domain.EmploymentCategory{
			{ID: "cat1", Name: "Weaving", IsActive: true},
			{ID: "cat2", Name: "Tailoring", IsActive: true},
		}, nil
	}
	return remote
}

func TestRegistrationHandlers_VerifyAnnotatesEligibility(t *testing.T) {
	r, _ := newRegistrationRouter(registeredClientMocks("Weaving"))

	w := postJSON(t, r, "/registration/verify", VerifyMobileRequest{MobileNumber: "9876543210"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	categories, ok := body["categories"].([]interface{})
	if !ok || len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", body["categories"])
	}

	eligibleByName := map[string]bool{}
	for _, raw := range categories {
		cat := raw.(map[string]interface{})
		eligibleByName[cat["name"].(string)] = cat["eligible"].(bool)
	}
	if !eligibleByName["Weaving"] {
		t.Error("own category must be eligible")
	}
	if eligibleByName["Tailoring"] {
		t.Error("other categories must not be eligible for a fixed-category client")
	}
}

func TestRegistrationHandlers_VerifyUnknownNumber(t *testing.T) {
	r, _ := newRegistrationRouter(mocks.NewMockRemoteDataService())

	w := postJSON(t, r, "/registration/verify", VerifyMobileRequest{MobileNumber: "9999999999"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("expected failure, got %v", body)
	}
	if body["error"] != "You are not registered. Please contact your agent." {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestRegistrationHandlers_SubmitFlow(t *testing.T) {
	remote := registeredClientMocks("Job Card Holder")
	var created *domain.EmploymentRegistration
	remote.CreateRegistrationFunc = func(ctx context.Context, reg *domain.EmploymentRegistration) error {
		created = reg
		return nil
	}
	r, flow := newRegistrationRouter(remote)

	if w := postJSON(t, r, "/registration/verify", VerifyMobileRequest{MobileNumber: "9876543210"}); w.Code != http.StatusOK {
		t.Fatalf("verify failed: %s", w.Body.String())
	}

	w := postJSON(t, r, "/registration/submit", SubmitRequest{CategoryID: "cat2"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["step"] != "confirm" {
		t.Errorf("expected confirmed submission, got %v", body)
	}
	if created == nil || created.Status != domain.StatusPending {
		t.Errorf("expected pending insert, got %+v", created)
	}

	// Reset returns to the verify step.
	w = postJSON(t, r, "/registration/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset failed: %d", w.Code)
	}
	if flow.Step() != workflows.StepVerify {
		t.Errorf("expected verify step after reset, got %v", flow.Step())
	}
}

func TestRegistrationHandlers_SubmitWithoutVerify(t *testing.T) {
	r, _ := newRegistrationRouter(mocks.NewMockRemoteDataService())

	w := postJSON(t, r, "/registration/submit", SubmitRequest{CategoryID: "cat1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Please verify your mobile number first" {
		t.Errorf("unexpected error %v", body["error"])
	}
}
