// Package ports defines repository and outbound interfaces for the core layer.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage. Adding a user that
	// already exists is a no-op: the stored record wins.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)

	// IsAdmin reports whether the user holds the staff role.
	// Unknown users are not admins.
	IsAdmin(ctx context.Context, id int64) (bool, error)

	// GetAdminIDs retrieves the identifiers of all staff users.
	// Used for fan-out notifications about new orders.
	GetAdminIDs(ctx context.Context) ([]int64, error)
}
