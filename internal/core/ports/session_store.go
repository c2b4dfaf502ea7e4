package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/wizard"
)

// SessionStore keeps at most one in-progress wizard session per user.
// Sessions are conversational state, not business records: losing the store
// loses in-progress drafts but never persisted orders.
type SessionStore interface {
	// Get retrieves the user's session.
	// Returns errs.ObjectNotFoundError when the user has no session.
	Get(ctx context.Context, userID int64) (*wizard.Session, error)

	// Save stores the session under its owner, replacing any previous one.
	Save(ctx context.Context, session *wizard.Session) error

	// Clear removes the user's session. Clearing an absent session is a no-op.
	Clear(ctx context.Context, userID int64) error
}
