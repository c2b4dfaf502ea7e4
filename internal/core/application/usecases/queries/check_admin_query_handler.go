package queries

import (
	"context"

	"gorm.io/gorm"
)

// CheckAdminQueryHandler reads the staff roster from the database.
type CheckAdminQueryHandler struct {
	db *gorm.DB
}

// NewCheckAdminQueryHandler creates a handler for staff membership queries.
// Requires a GORM database connection for query execution.
func NewCheckAdminQueryHandler(db *gorm.DB) CheckAdminQueryHandler {
	return CheckAdminQueryHandler{db: db}
}

// Handle executes the query and reports whether the user is staff.
func (h CheckAdminQueryHandler) Handle(ctx context.Context, query CheckAdminQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var count int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM admins WHERE user_id = ?
	`, query.UserID()).Row()

	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
