package workflows

import (
	"context"
	"fmt"
	"sync"

	"github.com/elifesajna/self-employ-final/domain"
)

// AdminAuth performs the single-step admin credential exchange and
// holds the authenticated admin identity. The identity survives
// restarts through the session store.
type AdminAuth struct {
	remote domain.RemoteDataService
	store  domain.SessionStore

	mu       sync.Mutex
	inFlight bool
	admin    *domain.AdminIdentity
}

// NewAdminAuth restores any persisted admin session on construction.
func NewAdminAuth(remote domain.RemoteDataService, store domain.SessionStore) *AdminAuth {
	a := &AdminAuth{remote: remote, store: store}
	if identity, ok := store.RestoreAdmin(); ok {
		a.admin = identity
	}
	return a
}

// Login exchanges credentials with the remote login procedure. Zero
// returned rows mean invalid credentials; otherwise the first row is
// the authoritative identity, persisted before success is reported.
// No retry; the caller decides whether to re-prompt.
func (a *AdminAuth) Login(ctx context.Context, username, password string) (*domain.AdminIdentity, error) {
	if username == "" || password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	if err := a.begin(); err != nil {
		return nil, err
	}
	defer a.end()

	rows, err := a.remote.VerifyAdminLogin(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	identity := &domain.AdminIdentity{
		ID:       rows[0].ID,
		Username: rows[0].Username,
		Role:     rows[0].Role,
	}
	if err := a.store.PersistAdmin(identity); err != nil {
		return nil, fmt.Errorf("failed to persist admin session: %w", err)
	}

	a.mu.Lock()
	a.admin = identity
	a.mu.Unlock()
	return identity, nil
}

// Logout clears the session unconditionally. No remote call.
func (a *AdminAuth) Logout() {
	a.mu.Lock()
	a.admin = nil
	a.mu.Unlock()
	_ = a.store.ClearAdmin()
}

// Current returns the held admin identity, or nil.
func (a *AdminAuth) Current() *domain.AdminIdentity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.admin
}

// IsAuthenticated reports whether an admin identity is held.
func (a *AdminAuth) IsAuthenticated() bool {
	return a.Current() != nil
}

// IsSuperAdmin reports the elevated-role capability flag.
func (a *AdminAuth) IsSuperAdmin() bool {
	return a.Current().IsSuperAdmin()
}

func (a *AdminAuth) begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight {
		return domain.ErrOperationInFlight
	}
	a.inFlight = true
	return nil
}

func (a *AdminAuth) end() {
	a.mu.Lock()
	a.inFlight = false
	a.mu.Unlock()
}
