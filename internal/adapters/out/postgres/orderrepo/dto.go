// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is a database-assigned sequence so order numbers stay short
// and human-readable in customer-facing messages.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"index"`
	CreatedAt   time.Time `gorm:"index"`
	Category    int
	Platform    int
	Description string
	Currency    int
	Budget      string
	Status      int `gorm:"index"`
	Comment     *string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID lets the database assign the next sequence value on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		UserID:      aggregate.UserID(),
		CreatedAt:   aggregate.CreatedAt(),
		Category:    int(aggregate.Category()),
		Platform:    int(aggregate.Platform()),
		Description: aggregate.Description(),
		Currency:    int(aggregate.Currency()),
		Budget:      aggregate.Budget(),
		Status:      int(aggregate.Status()),
		Comment:     aggregate.Comment(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.CreatedAt,
		order.Category(dto.Category),
		order.Platform(dto.Platform),
		dto.Description,
		order.Currency(dto.Currency),
		dto.Budget,
		order.Status(dto.Status),
		dto.Comment,
	)
}
