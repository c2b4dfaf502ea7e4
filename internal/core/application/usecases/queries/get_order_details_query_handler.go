package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// GetOrderDetailsQueryHandler reads one order joined with its owner from the
// database.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no order has the requested identifier.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.created_at,
			o.category,
			o.platform,
			o.description,
			o.currency,
			o.budget,
			o.status,
			o.comment,
			u.handle,
			u.name
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}
		return GetOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var resp GetOrderDetailsQueryResponse
	var category, platform, currency, status int
	var comment, handle, name sql.NullString

	err = rows.Scan(
		&resp.Order.ID,
		&resp.Order.UserID,
		&resp.Order.CreatedAt,
		&category,
		&platform,
		&resp.Order.Description,
		&currency,
		&resp.Order.Budget,
		&status,
		&comment,
		&handle,
		&name,
	)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	resp.Order.Category = order.Category(category)
	resp.Order.Platform = order.Platform(platform)
	resp.Order.Currency = order.Currency(currency)
	resp.Order.Status = order.Status(status)
	if comment.Valid {
		resp.Order.Comment = comment.String
	}
	resp.OwnerHandle = handle.String
	resp.OwnerName = name.String

	return resp, rows.Err()
}
