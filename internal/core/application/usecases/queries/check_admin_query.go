package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrCheckAdminQueryIsNotConstructed = errors.New(
	"CheckAdminQuery must be created via NewCheckAdminQuery constructor",
)

// CheckAdminQuery asks whether a user is on the staff roster.
// Presentation layers use it to decide which screens to offer.
type CheckAdminQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewCheckAdminQuery creates a staff membership query for one user.
func NewCheckAdminQuery(userID int64) (CheckAdminQuery, error) {
	if userID <= 0 {
		return CheckAdminQuery{}, ErrUserIDIsInvalid
	}

	return CheckAdminQuery{
		userID: userID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckAdminQueryIsNotConstructed if validation fails.
func (q CheckAdminQuery) Validate() error {
	return q.guard.Validate(ErrCheckAdminQueryIsNotConstructed)
}

// UserID returns the identifier of the user to check.
func (q CheckAdminQuery) UserID() int64 {
	return q.userID
}
