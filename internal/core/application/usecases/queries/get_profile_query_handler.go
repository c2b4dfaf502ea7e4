package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"orderdesk/internal/pkg/errs"
)

// GetProfileQueryHandler reads one user's profile with the order count in a
// single round trip.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the user was never registered.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.handle,
			u.name,
			u.agreement_accepted,
			u.registered_at,
			(SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id)
		FROM users u
		WHERE u.id = ?
	`, query.UserID()).Rows()
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetProfileQueryResponse{}, err
		}
		return GetProfileQueryResponse{},
			errs.NewObjectNotFoundError("userID", query.UserID())
	}

	var resp GetProfileQueryResponse
	var handle sql.NullString

	err = rows.Scan(
		&resp.UserID,
		&handle,
		&resp.Name,
		&resp.AgreementAccepted,
		&resp.RegisteredAt,
		&resp.OrdersTotal,
	)
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	resp.Handle = handle.String

	return resp, rows.Err()
}
