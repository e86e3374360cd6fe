// Package session holds the authenticated user and bearer token as one
// explicit store object with a defined lifecycle: loaded from disk at
// startup, updated on login and profile changes, cleared on logout or
// expiry. Collaborators receive the store by injection; nothing reads
// token state ambiently.
package session

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/avelezt/lanes/internal/models"
)

// ErrNotLoggedIn indicates the store holds no credentials.
var ErrNotLoggedIn = errors.New("not logged in")

// Store is the session state. Single-goroutine access only: the TUI event
// loop is the sole reader and writer.
type Store struct {
	path string
	data sessionFile
}

type sessionFile struct {
	Token string       `yaml:"token,omitempty"`
	User  *models.User `yaml:"user,omitempty"`
}

// Load reads the persisted session, returning an empty store when the
// file does not exist yet.
func Load() (*Store, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	store := &Store{path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &store.data); err != nil {
		// A corrupt session file is not fatal; the user just logs in again.
		store.data = sessionFile{}
	}
	return store, nil
}

// Token returns the bearer token, empty when logged out. Implements the
// gateway's TokenSource.
func (s *Store) Token() string {
	return s.data.Token
}

// User returns the authenticated user, nil when logged out.
func (s *Store) User() *models.User {
	return s.data.User
}

// LoggedIn reports whether credentials are present.
func (s *Store) LoggedIn() bool {
	return s.data.Token != "" && s.data.User != nil
}

// SetCredentials stores a fresh token and user and persists them.
func (s *Store) SetCredentials(token string, user models.User) error {
	s.data.Token = token
	s.data.User = &user
	return s.save()
}

// SetUser updates the stored user (after a profile change) and persists.
func (s *Store) SetUser(user models.User) error {
	if s.data.Token == "" {
		return ErrNotLoggedIn
	}
	s.data.User = &user
	return s.save()
}

// Clear drops the credentials and removes the session file. Called on
// logout and when the server rejects the token.
func (s *Store) Clear() error {
	s.data = sessionFile{}
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return err
	}
	// Session holds the token; keep it out of group/world reach.
	return os.WriteFile(s.path, data, 0o600)
}

func sessionPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lanes", "session.yaml"), nil
}
