package workflows

import (
	"context"
	"strings"
	"sync"

	"github.com/elifesajna/self-employ-final/domain"
)

// RegistrationStep is the linear registration flow state.
type RegistrationStep int

const (
	StepVerify RegistrationStep = iota
	StepSelect
	StepConfirm
)

func (s RegistrationStep) String() string {
	switch s {
	case StepVerify:
		return "verify"
	case StepSelect:
		return "select"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// VerifyResult is the outcome of the mobile-number verification step.
type VerifyResult struct {
	Success    bool                        `json:"success"`
	Client     *domain.ClientRecord        `json:"client,omitempty"`
	Categories []domain.EmploymentCategory `json:"categories,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// SubmitResult is the outcome of the submission step.
type SubmitResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Registration is the three-step employment registration flow:
// verify the client's mobile number, select an eligible category,
// confirm. One remote operation runs at a time; Reset returns to the
// verify step from anywhere.
type Registration struct {
	remote domain.RemoteDataService

	mu           sync.Mutex
	inFlight     bool
	generation   uint64
	step         RegistrationStep
	mobileNumber string
	client       *domain.ClientRecord
	categories   []domain.EmploymentCategory
}

// NewRegistration creates a flow at the verify step.
func NewRegistration(remote domain.RemoteDataService) *Registration {
	return &Registration{remote: remote, step: StepVerify}
}

// VerifyMobileNumber looks up exactly one client record by mobile
// number. A missing record or a remote failure surfaces as a
// not-registered failure with the state unchanged; on a hit the active
// categories are fetched and the flow advances to StepSelect.
func (r *Registration) VerifyMobileNumber(ctx context.Context, mobileNumber string) VerifyResult {
	if strings.TrimSpace(mobileNumber) == "" {
		return VerifyResult{Error: "Please enter your mobile number"}
	}

	gen, ok := r.begin()
	if !ok {
		return VerifyResult{Error: "Another request is in progress"}
	}

	client, err := r.remote.FindClientByMobile(ctx, mobileNumber)
	var categories []domain.EmploymentCategory
	if err == nil && client != nil {
		// Category fetch failures degrade to an empty list, matching
		// the tolerant read contract.
		categories, _ = r.remote.ActiveCategories(ctx)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	if gen != r.generation {
		return VerifyResult{}
	}
	if err != nil || client == nil {
		return VerifyResult{Error: "You are not registered. Please contact your agent."}
	}

	r.client = client
	r.mobileNumber = mobileNumber
	r.categories = categories
	r.step = StepSelect
	return VerifyResult{Success: true, Client: client, Categories: categories}
}

// CanApplyForCategory is the eligibility predicate. Clients whose own
// category text contains "job card" or "others" (case-insensitive) may
// apply for any category; everyone else only for the category exactly
// matching their own. Advisory for selection UIs; the duplicate checks
// at submit time remain authoritative.
func (r *Registration) CanApplyForCategory(categoryName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return eligible(r.client, categoryName)
}

func eligible(client *domain.ClientRecord, categoryName string) bool {
	if client == nil {
		return false
	}
	own := strings.ToLower(client.Category)
	if strings.Contains(own, "job card") || strings.Contains(own, "others") {
		return true
	}
	return client.Category == categoryName
}

// SubmitRegistration runs the strictly ordered duplicate checks and
// inserts a pending registration. Each check short-circuits on a hit:
// first the exact (client, category) pair, then any non-rejected
// registration for this mobile number across all categories.
func (r *Registration) SubmitRegistration(ctx context.Context, categoryID string) SubmitResult {
	r.mu.Lock()
	if r.client == nil {
		r.mu.Unlock()
		return SubmitResult{Error: "Please verify your mobile number first"}
	}
	if categoryID == "" {
		r.mu.Unlock()
		return SubmitResult{Error: "Please select a category"}
	}
	clientID := r.client.ID
	mobileNumber := r.mobileNumber
	r.mu.Unlock()

	gen, ok := r.begin()
	if !ok {
		return SubmitResult{Error: "Another request is in progress"}
	}
	result := r.submit(ctx, clientID, categoryID, mobileNumber)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	if gen != r.generation {
		return SubmitResult{}
	}
	if result.Success {
		r.step = StepConfirm
	}
	return result
}

func (r *Registration) submit(ctx context.Context, clientID, categoryID, mobileNumber string) SubmitResult {
	existing, err := r.remote.RegistrationsByClientAndCategory(ctx, clientID, categoryID)
	if err != nil {
		return SubmitResult{Error: "Failed to submit registration"}
	}
	if len(existing) > 0 {
		return SubmitResult{Error: "You have already registered for this category."}
	}

	active, err := r.remote.ActiveRegistrationsByMobile(ctx, mobileNumber)
	if err != nil {
		return SubmitResult{Error: "Failed to submit registration"}
	}
	if len(active) > 0 {
		return SubmitResult{Error: "You can only have one active registration at a time. Please contact admin to pause your existing registration before applying for a new program."}
	}

	reg := &domain.EmploymentRegistration{
		ClientID:     clientID,
		CategoryID:   categoryID,
		MobileNumber: mobileNumber,
		Status:       domain.StatusPending,
	}
	if err := r.remote.CreateRegistration(ctx, reg); err != nil {
		return SubmitResult{Error: "Failed to submit registration"}
	}
	return SubmitResult{Success: true}
}

// Reset returns to StepVerify from any state, clearing the held
// client, mobile number and category list. Outstanding requests run to
// completion; their results are dropped via the generation tag.
func (r *Registration) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.step = StepVerify
	r.mobileNumber = ""
	r.client = nil
	r.categories = nil
}

// Step returns the current flow step.
func (r *Registration) Step() RegistrationStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step
}

// Client returns the verified client record, or nil before StepSelect.
func (r *Registration) Client() *domain.ClientRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.client
}

// Categories returns the active categories fetched at verification.
func (r *Registration) Categories() []domain.EmploymentCategory {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categories
}

func (r *Registration) begin() (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return 0, false
	}
	r.inFlight = true
	return r.generation, true
}
