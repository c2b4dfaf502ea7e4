package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves aggregate counters for the staff dashboard and the
// pending-orders digest.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for the aggregate counters.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatsQueryIsNotConstructed if validation fails.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// GetStatsQueryResponse holds the aggregate counters.
type GetStatsQueryResponse struct {
	Users          int64
	Orders         int64
	NewOrders      int64
	OrdersInReview int64
}
