package queries

import (
	"context"

	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/order"
)

// GetStatsQueryHandler reads the aggregate counters from the database in a
// single round trip.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for the stats query.
// Requires a GORM database connection for query execution.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the query and returns the counters.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	var resp GetStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?)
	`, order.StatusNew, order.StatusInReview).Row()

	err := row.Scan(&resp.Users, &resp.Orders, &resp.NewOrders, &resp.OrdersInReview)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	return resp, nil
}
