// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database, returning plain response structs for presentation layers.
package queries

import (
	"database/sql"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// OrderResponse is the read model of one order as list and detail queries
// return it. Comment is empty unless the order was rejected with a reason.
type OrderResponse struct {
	ID          int64
	UserID      int64
	CreatedAt   time.Time
	Category    order.Category
	Platform    order.Platform
	Description string
	Currency    order.Currency
	Budget      string
	Status      order.Status
	Comment     string
}

// orderColumns is the SELECT list scanOrderRow expects, in order.
const orderColumns = `
	id,
	user_id,
	created_at,
	category,
	platform,
	description,
	currency,
	budget,
	status,
	comment
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var category, platform, currency, status int
	var comment sql.NullString

	err := rows.Scan(
		&resp.ID,
		&resp.UserID,
		&resp.CreatedAt,
		&category,
		&platform,
		&resp.Description,
		&currency,
		&resp.Budget,
		&status,
		&comment,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Category = order.Category(category)
	resp.Platform = order.Platform(platform)
	resp.Currency = order.Currency(currency)
	resp.Status = order.Status(status)
	if comment.Valid {
		resp.Comment = comment.String
	}
	return resp, nil
}

func collectOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
