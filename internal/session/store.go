package session

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/utils"
)

// StateSchemaVersion is bumped when the on-disk layout changes. Files with
// another version are discarded on open.
const StateSchemaVersion = "1.0"

// State is the persisted session document.
type State struct {
	Version   string       `json:"version"`
	User      *domain.User `json:"user,omitempty"`
	Token     string       `json:"token,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Store is the local mirror of the signed-in user, persisted to a JSON file.
// Every write replaces the file atomically. Readers get deep copies.
type Store struct {
	path  string
	mu    sync.RWMutex
	state State
	now   func() time.Time
}

// Open loads path, starting empty when the file is missing or outdated.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now, state: State{Version: StateSchemaVersion}}

	var loaded State
	err := utils.LoadJSON(path, &loaded)
	switch {
	case err == nil && loaded.Version == StateSchemaVersion:
		s.state = loaded
	case err == nil:
		logger.Warn("Discarding session file with unexpected version",
			"path", path, "version", loaded.Version, "expected", StateSchemaVersion)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// LoggedIn reports whether a user mirror is present.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User != nil
}

// User returns a copy of the mirror, or domain.ErrNotLoggedIn.
func (s *Store) User() (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return s.state.User.Clone(), nil
}

// Email returns the signed-in email, or "" when logged out.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return ""
	}
	return s.state.User.Email
}

// Token returns the persisted bearer token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// SetSession replaces the mirror and token and persists them.
func (s *Store) SetSession(user *domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.User = user.Clone()
	next.Token = token
	return s.commit(next)
}

// Update applies fn to a copy of the mirror and persists the result. The
// mirror is left unchanged when fn or the write fails.
func (s *Store) Update(fn func(u *domain.User) error) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil, domain.ErrNotLoggedIn
	}
	draft := s.state.User.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	next := s.state
	next.User = draft
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return draft.Clone(), nil
}

// Clear removes the mirror and deletes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := utils.RemoveFile(s.path); err != nil {
		return err
	}
	s.state = State{Version: StateSchemaVersion}
	return nil
}

func (s *Store) commit(next State) error {
	next.Version = StateSchemaVersion
	next.UpdatedAt = s.now().UTC()
	if err := utils.SaveJSON(s.path, next); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.state = next
	return nil
}
