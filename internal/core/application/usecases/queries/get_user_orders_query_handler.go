package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads one user's recent orders from the database.
// The history is capped at the ten newest orders.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the user's newest orders, most
// recent first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, query.UserID(), historyLimit).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderRows(rows)
}
