package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves one user's profile screen data: the stored record
// plus how many orders the user has placed.
type GetProfileQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for one user's profile.
func NewGetProfileQuery(userID int64) (GetProfileQuery, error) {
	if userID <= 0 {
		return GetProfileQuery{}, ErrUserIDIsInvalid
	}

	return GetProfileQuery{
		userID: userID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose profile is requested.
func (q GetProfileQuery) UserID() int64 {
	return q.userID
}

// GetProfileQueryResponse holds one user's profile screen data.
type GetProfileQueryResponse struct {
	UserID            int64
	Handle            string
	Name              string
	AgreementAccepted bool
	RegisteredAt      time.Time
	OrdersTotal       int64
}
