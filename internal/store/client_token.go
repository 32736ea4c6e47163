package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/festivize/festivize/internal/session"
)

// FileTokenStore persists the client's bearer token in a small JSON file so a
// restarted client resumes its session, the way a browser keeps the token in
// localStorage. The file is written with 0600 permissions.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// storedToken is the on-disk shape of the session file.
type storedToken struct {
	AccessToken string `json:"accessToken"`
}

// NewFileTokenStore constructs a token store rooted at path. The parent
// directory is created if missing.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	return &FileTokenStore{path: path}, nil
}

// Load returns the persisted token or session.ErrNoStoredToken.
func (s *FileTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", session.ErrNoStoredToken
		}
		return "", fmt.Errorf("read session file: %w", err)
	}

	var stored storedToken
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	if stored.AccessToken == "" {
		return "", session.ErrNoStoredToken
	}

	return stored.AccessToken, nil
}

// Save writes the token, replacing any previous one.
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(storedToken{AccessToken: token})
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
