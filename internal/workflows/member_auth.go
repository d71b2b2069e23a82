package workflows

import (
	"context"
	"strings"
	"sync"

	"github.com/elifesajna/self-employ-final/domain"
)

// MemberAuthState is the two-step member login state.
type MemberAuthState int

const (
	StateAwaitingMobileNumber MemberAuthState = iota
	StateAwaitingCode
	StateAuthenticated
)

func (s MemberAuthState) String() string {
	switch s {
	case StateAwaitingMobileNumber:
		return "awaiting_mobile_number"
	case StateAwaitingCode:
		return "awaiting_code"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SendCodeResult is the outcome of requesting a verification code. On
// success the issued code is relayed back to the caller; the workflow
// does not deliver it out-of-band itself.
type SendCodeResult struct {
	Success          bool   `json:"success"`
	VerificationCode string `json:"verification_code,omitempty"`
	Error            string `json:"error,omitempty"`
}

// LoginResult is the outcome of the code exchange.
type LoginResult struct {
	Success bool                   `json:"success"`
	Member  *domain.MemberIdentity `json:"member,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// MemberAuth is the two-step mobile-number plus one-time-code login
// flow. One flow is active at a time; Reset discards a pending one.
// Failures never propagate as panics or raw errors past this boundary;
// every outcome is a result value.
type MemberAuth struct {
	remote domain.RemoteDataService
	store  domain.SessionStore

	mu           sync.Mutex
	inFlight     bool
	generation   uint64
	state        MemberAuthState
	mobileNumber string
	member       *domain.MemberIdentity
}

// NewMemberAuth restores any persisted member session on construction.
func NewMemberAuth(remote domain.RemoteDataService, store domain.SessionStore) *MemberAuth {
	m := &MemberAuth{remote: remote, store: store, state: StateAwaitingMobileNumber}
	if identity, ok := store.RestoreMember(); ok {
		m.member = identity
		m.state = StateAuthenticated
	}
	return m
}

// SendVerificationCode requests a one-time code for the mobile number.
// On success the flow advances to StateAwaitingCode and the code is
// surfaced in the result.
func (m *MemberAuth) SendVerificationCode(ctx context.Context, mobileNumber string) SendCodeResult {
	if strings.TrimSpace(mobileNumber) == "" {
		return SendCodeResult{Error: "Please enter your mobile number"}
	}

	gen, ok := m.begin()
	if !ok {
		return SendCodeResult{Error: "Another request is in progress"}
	}

	resp, err := m.remote.SendVerificationCode(ctx, mobileNumber)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
	if gen != m.generation {
		// Reset ran while the request was outstanding; the stale
		// result must land as a no-op.
		return SendCodeResult{}
	}
	if err != nil {
		return SendCodeResult{Error: err.Error()}
	}
	if resp == nil || !resp.Success {
		msg := "Failed to send verification code"
		if resp != nil && resp.Error != "" {
			msg = resp.Error
		}
		return SendCodeResult{Error: msg}
	}

	m.mobileNumber = mobileNumber
	m.state = StateAwaitingCode
	return SendCodeResult{Success: true, VerificationCode: resp.VerificationCode}
}

// VerifyAndLogin exchanges the mobile number and code. Success
// requires both a truthy success flag and a present member payload;
// anything else is a failure and no session is written. Transport
// errors are normalized without leaking detail.
func (m *MemberAuth) VerifyAndLogin(ctx context.Context, mobileNumber, code string) LoginResult {
	if strings.TrimSpace(code) == "" {
		return LoginResult{Error: "Please enter the verification code"}
	}

	gen, ok := m.begin()
	if !ok {
		return LoginResult{Error: "Another request is in progress"}
	}

	resp, err := m.remote.VerifyMemberLogin(ctx, mobileNumber, code)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
	if gen != m.generation {
		return LoginResult{}
	}
	if err != nil {
		return LoginResult{Error: "Login failed"}
	}
	if resp == nil || !resp.Success || resp.Member == nil {
		msg := "Login failed"
		if resp != nil && resp.Error != "" {
			msg = resp.Error
		}
		return LoginResult{Error: msg}
	}

	identity := &domain.MemberIdentity{
		ID:           resp.Member.ID,
		MobileNumber: resp.Member.MobileNumber,
		Name:         resp.Member.Name,
		IsVerified:   true,
	}
	if err := m.store.PersistMember(identity); err != nil {
		return LoginResult{Error: "Login failed"}
	}

	m.member = identity
	m.state = StateAuthenticated
	return LoginResult{Success: true, Member: identity}
}

// Reset returns to StateAwaitingMobileNumber from any state, clearing
// the held mobile number. Outstanding requests are not cancelled;
// bumping the generation makes their eventual results no-ops.
func (m *MemberAuth) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.state = StateAwaitingMobileNumber
	m.mobileNumber = ""
}

// Logout clears the member session unconditionally.
func (m *MemberAuth) Logout() {
	m.mu.Lock()
	m.generation++
	m.state = StateAwaitingMobileNumber
	m.mobileNumber = ""
	m.member = nil
	m.mu.Unlock()
	_ = m.store.ClearMember()
}

// State returns the current flow state.
func (m *MemberAuth) State() MemberAuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the held member identity, or nil.
func (m *MemberAuth) Current() *domain.MemberIdentity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.member
}

// IsAuthenticated reports whether a member identity is held.
func (m *MemberAuth) IsAuthenticated() bool {
	return m.Current() != nil
}

// MobileNumber returns the mobile number of the pending flow.
func (m *MemberAuth) MobileNumber() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mobileNumber
}

// begin acquires the in-flight guard and returns the generation the
// request is issued under.
func (m *MemberAuth) begin() (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return 0, false
	}
	m.inFlight = true
	return m.generation, true
}
