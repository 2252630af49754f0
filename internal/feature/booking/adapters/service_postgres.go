// Package adapters provides the repository implementations for the booking feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salon_backend/internal/feature/booking/domain/entity"
	"salon_backend/internal/feature/booking/usecase"
)

// servicePostgres is the PostgreSQL implementation of the ServiceRepository
// interface. It uses GORM for database operations.
type servicePostgres struct {
	db *gorm.DB
}

// Compile-time check that servicePostgres implements ServiceRepository.
var _ usecase.ServiceRepository = (*servicePostgres)(nil)

// NewServicePostgres creates a new servicePostgres instance with the given
// gorm.DB connection. Constructor for dependency injection.
func NewServicePostgres(db *gorm.DB) *servicePostgres {
	return &servicePostgres{db: db}
}

// Create inserts the appointment service into the database.
func (r *servicePostgres) Create(ctx context.Context, svc *entity.AppointmentService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

// FindAll returns the records matching the filter, composing the supplied
// equality conditions with AND. No ORDER BY is applied.
func (r *servicePostgres) FindAll(ctx context.Context, filter usecase.ListFilter) ([]entity.AppointmentService, error) {
	q := r.db.WithContext(ctx).Model(&entity.AppointmentService{})
	if filter.IsPublic != nil {
		q = q.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.IsRemove != nil {
		q = q.Where("is_remove = ?", *filter.IsRemove)
	}
	if filter.ShopID != nil {
		q = q.Where("shop_id = ?", *filter.ShopID)
	}
	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}

	var out []entity.AppointmentService
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID retrieves a record by ID, returning (nil, nil) when it does not exist.
func (r *servicePostgres) FindByID(ctx context.Context, id string) (*entity.AppointmentService, error) {
	var svc entity.AppointmentService
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

// Update applies the non-nil patch fields to the record and returns the
// updated row, or (nil, nil) when the id does not exist. Soft-deleted
// records remain updatable.
func (r *servicePostgres) Update(ctx context.Context, id string, patch usecase.UpdateServiceInput) (*entity.AppointmentService, error) {
	svc, err := r.FindByID(ctx, id)
	if err != nil || svc == nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return svc, nil
	}

	if err := r.db.WithContext(ctx).Model(svc).Updates(patchColumns(patch)).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// SoftDelete forces is_remove to true and returns the updated row, or
// (nil, nil) when the id does not exist. Idempotent: repeating the call
// leaves the flag true. The row itself is never deleted.
func (r *servicePostgres) SoftDelete(ctx context.Context, id string) (*entity.AppointmentService, error) {
	svc, err := r.FindByID(ctx, id)
	if err != nil || svc == nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(svc).Updates(map[string]any{"is_remove": true}).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// patchColumns maps the non-nil patch fields to their column names.
func patchColumns(patch usecase.UpdateServiceInput) map[string]any {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.ShowTime != nil {
		updates["show_time"] = *patch.ShowTime
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}
	if patch.IsRemove != nil {
		updates["is_remove"] = *patch.IsRemove
	}
	if patch.IsPublic != nil {
		updates["is_public"] = *patch.IsPublic
	}
	if patch.ShopID != nil {
		updates["shop_id"] = *patch.ShopID
	}
	return updates
}
