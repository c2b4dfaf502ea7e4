package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database. Registering a user that already
// exists keeps the stored record untouched.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).
		Select("Handle", "Name", "AgreementAccepted").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// IsAdmin reports whether the user is in the staff roster.
func (r *GormUserRepository) IsAdmin(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, errs.NewValueIsRequiredError("id")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&AdminDTO{}).Where("user_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAdminIDs retrieves the identifiers of all staff users.
func (r *GormUserRepository) GetAdminIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&AdminDTO{}).Order("user_id").Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// EnsureAdmins replaces the staff roster with the given identifiers.
// Called at startup with the configured staff list.
func EnsureAdmins(ctx context.Context, db *gorm.DB, ids []int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&AdminDTO{}).Error; err != nil {
			return err
		}

		for _, id := range ids {
			if id <= 0 {
				return errs.NewValueIsRequiredError("adminID")
			}
			dto := AdminDTO{UserID: id}
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
