package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("orderID must be greater than 0")
)

// GetOrderDetailsQuery retrieves one order together with its owner's contact
// data, so staff can reach the customer without a second lookup.
type GetOrderDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order's details.
func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderDetailsQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderDetailsQueryResponse is one order plus the owner's contact data.
// OwnerHandle is empty when the owner's messaging account has no handle.
type GetOrderDetailsQueryResponse struct {
	Order       OrderResponse
	OwnerHandle string
	OwnerName   string
}
