package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrUserIDIsInvalid = errors.New("userID must be greater than 0")
)

// historyLimit caps the per-user order history screen.
const historyLimit = 10

// GetUserOrdersQuery retrieves the most recent orders of one user for the
// "my orders" screen.
type GetUserOrdersQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for one user's order history.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	if userID <= 0 {
		return GetUserOrdersQuery{}, ErrUserIDIsInvalid
	}

	return GetUserOrdersQuery{
		userID: userID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose history is requested.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}
