package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/elifesajna/self-employ-final/domain"
)

// Storage keys, one per session kind. Admin and member sessions are
// independent and may coexist.
const (
	adminKey  = "admin"
	memberKey = "team_member"
)

// FileStore implements domain.SessionStore on durable local files, one
// JSON document per session kind. Absent or malformed entries read as
// "not logged in"; writes are atomic so an identity is never partially
// written.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the state directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = ".portal-state"
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// RestoreAdmin implements domain.SessionStore
func (s *FileStore) RestoreAdmin() (*domain.AdminIdentity, bool) {
	var identity domain.AdminIdentity
	if !s.restore(adminKey, &identity) || identity.ID == "" {
		return nil, false
	}
	return &identity, true
}

// PersistAdmin implements domain.SessionStore
func (s *FileStore) PersistAdmin(identity *domain.AdminIdentity) error {
	return s.persist(adminKey, identity)
}

// ClearAdmin implements domain.SessionStore
func (s *FileStore) ClearAdmin() error {
	return s.clear(adminKey)
}

// RestoreMember implements domain.SessionStore
func (s *FileStore) RestoreMember() (*domain.MemberIdentity, bool) {
	var identity domain.MemberIdentity
	if !s.restore(memberKey, &identity) || identity.ID == "" {
		return nil, false
	}
	return &identity, true
}

// PersistMember implements domain.SessionStore
func (s *FileStore) PersistMember(identity *domain.MemberIdentity) error {
	return s.persist(memberKey, identity)
}

// ClearMember implements domain.SessionStore
func (s *FileStore) ClearMember() error {
	return s.clear(memberKey)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// restore reads and decodes one entry. Any failure, including a file
// that is not valid JSON, reads as absence.
func (s *FileStore) restore(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// persist overwrites the entry via a temp file and rename.
func (s *FileStore) persist(key string, identity interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (s *FileStore) clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
