package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/medicart/medicart-client/internal/models"
)

// credentialFile mirrors the browser storefront's durable state: the bearer
// token under "token" and the serialized user snapshot under "user".
type credentialFile struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// CredentialStore persists the session's token and cached user to a single
// JSON file. A missing file means logged out, never an error. Writes go
// through a temp file and rename so concurrent readers see whole states.
type CredentialStore struct {
	path string

	mu    sync.RWMutex
	state credentialFile
}

func NewCredentialStore(path string) (*CredentialStore, error) {

	s := &CredentialStore{path: path}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *CredentialStore) Path() string {
	return s.path
}

// Reload re-reads the file, replacing in-memory state. Used at startup and
// by the session watcher when another process rewrites the file.
func (s *CredentialStore) Reload() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.state = credentialFile{}

			return nil
		}

		return fmt.Errorf("failed to read credentials: %w", err)
	}

	var state credentialFile

	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt file is treated as logged out rather than wedging startup.
		s.state = credentialFile{}

		return nil
	}

	s.state = state

	return nil
}

// Token implements api.TokenSource.
func (s *CredentialStore) Token() (string, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Token, s.state.Token != ""
}

func (s *CredentialStore) User() (*models.User, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.User == nil {
		return nil, false
	}

	user := *s.state.User

	return &user, true
}

func (s *CredentialStore) Save(token string, user *models.User) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = credentialFile{Token: token, User: user}

	return s.flush()
}

// SaveUser replaces only the cached user snapshot, keeping the token.
func (s *CredentialStore) SaveUser(user *models.User) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = user

	return s.flush()
}

// Clear purges both keys. Removing the file entirely is what signals logout
// to watching processes.
func (s *CredentialStore) Clear() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = credentialFile{}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	return nil
}

func (s *CredentialStore) flush() error {

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"

	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials: %w", err)
	}

	return nil
}
