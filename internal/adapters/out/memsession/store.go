// Package memsession keeps wizard sessions in process memory. Sessions are
// conversational state with no value after a restart, so they are not worth a
// database table: a lost session simply drops the user back to the menu.
package memsession

import (
	"context"
	"sync"

	"orderdesk/internal/core/domain/model/wizard"
	"orderdesk/internal/pkg/errs"
)

// Store is a concurrency-safe in-memory session store keyed by user.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*wizard.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*wizard.Session),
	}
}

// Get retrieves the user's session.
// Returns errs.ObjectNotFoundError when the user has no session.
func (s *Store) Get(_ context.Context, userID int64) (*wizard.Session, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", userID)
	}
	return session, nil
}

// Save stores the session under its owner, replacing any previous one.
func (s *Store) Save(_ context.Context, session *wizard.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID()] = session
	return nil
}

// Clear removes the user's session. Clearing an absent session is a no-op.
func (s *Store) Clear(_ context.Context, userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
