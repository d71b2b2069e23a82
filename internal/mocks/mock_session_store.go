package mocks

import (
	"github.com/elifesajna/self-employ-final/domain"
)

// MockSessionStore implements domain.SessionStore for testing. Without
// overrides it behaves as an in-memory store.
type MockSessionStore struct {
	RestoreAdminFunc  func() (*domain.AdminIdentity, bool)
	PersistAdminFunc  func(identity *domain.AdminIdentity) error
	ClearAdminFunc    func() error
	RestoreMemberFunc func() (*domain.MemberIdentity, bool)
	PersistMemberFunc func(identity *domain.MemberIdentity) error
	ClearMemberFunc   func() error

	Admin  *domain.AdminIdentity
	Member *domain.MemberIdentity
}

// NewMockSessionStore creates a new MockSessionStore
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// RestoreAdmin restores the persisted admin identity
func (m *MockSessionStore) RestoreAdmin() (*domain.AdminIdentity, bool) {
	if m.RestoreAdminFunc != nil {
		return m.RestoreAdminFunc()
	}
	return m.Admin, m.Admin != nil
}

// PersistAdmin persists the admin identity
func (m *MockSessionStore) PersistAdmin(identity *domain.AdminIdentity) error {
	if m.PersistAdminFunc != nil {
		return m.PersistAdminFunc(identity)
	}
	m.Admin = identity
	return nil
}

// ClearAdmin removes the persisted admin identity
func (m *MockSessionStore) ClearAdmin() error {
	if m.ClearAdminFunc != nil {
		return m.ClearAdminFunc()
	}
	m.Admin = nil
	return nil
}

// RestoreMember restores the persisted member identity
func (m *MockSessionStore) RestoreMember() (*domain.MemberIdentity, bool) {
	if m.RestoreMemberFunc != nil {
		return m.RestoreMemberFunc()
	}
	return m.Member, m.Member != nil
}

// PersistMember persists the member identity
func (m *MockSessionStore) PersistMember(identity *domain.MemberIdentity) error {
	if m.PersistMemberFunc != nil {
		return m.PersistMemberFunc(identity)
	}
	m.Member = identity
	return nil
}

// ClearMember removes the persisted member identity
func (m *MockSessionStore) ClearMember() error {
	if m.ClearMemberFunc != nil {
		return m.ClearMemberFunc()
	}
	m.Member = nil
	return nil
}
