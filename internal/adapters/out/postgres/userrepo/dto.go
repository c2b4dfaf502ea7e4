// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate and keeps
// the staff roster in a separate admins table.
package userrepo

import (
	"database/sql"
	"time"

	"orderdesk/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The identifier comes from the external messaging platform, so it is stored
// as given rather than generated.
type UserDTO struct {
	ID                int64 `gorm:"primaryKey"`
	Handle            sql.NullString
	Name              string
	AgreementAccepted bool
	RegisteredAt      time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// AdminDTO marks one user as staff. Membership is seeded from configuration
// at startup.
type AdminDTO struct {
	UserID int64 `gorm:"primaryKey"`
}

// TableName specifies the database table name for the staff roster.
func (AdminDTO) TableName() string {
	return "admins"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:                aggregate.ID(),
		Handle:            sql.NullString{String: aggregate.Handle(), Valid: aggregate.Handle() != ""},
		Name:              aggregate.Name(),
		AgreementAccepted: aggregate.AgreementAccepted(),
		RegisteredAt:      aggregate.RegisteredAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID,
		dto.Handle.String,
		dto.Name,
		dto.AgreementAccepted,
		dto.RegisteredAt,
	)
}
