// Package usecase implements the business logic for the booking feature.
package usecase

import (
	"context"

	"salon_backend/internal/feature/booking/domain/entity"
)

// ServiceRepository abstracts the persistence layer for appointment services.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// FindByID, Update and SoftDelete return (nil, nil) when the id does not
// exist: an absent record is a normal result, not an error.
type ServiceRepository interface {
	// Create persists a new appointment service.
	Create(ctx context.Context, svc *entity.AppointmentService) error

	// FindAll returns the records matching the filter. An empty filter
	// matches everything, soft-deleted rows included.
	FindAll(ctx context.Context, filter ListFilter) ([]entity.AppointmentService, error)

	// FindByID retrieves a record by ID.
	FindByID(ctx context.Context, id string) (*entity.AppointmentService, error)

	// Update applies a partial patch to the record and returns the updated
	// row. It never creates a record for a missing id.
	Update(ctx context.Context, id string, patch UpdateServiceInput) (*entity.AppointmentService, error)

	// SoftDelete forces IsRemove to true and returns the updated row.
	SoftDelete(ctx context.Context, id string) (*entity.AppointmentService, error)
}

// CreateServiceInput carries the fields accepted when creating an
// appointment service. Omitted optional fields take the documented
// defaults: order 0, isRemove false, isPublic true.
type CreateServiceInput struct {
	Name        string
	Description *string
	Price       int
	ShowTime    *int
	IsPublic    *bool
	ShopID      *string
}

// UpdateServiceInput carries the fields of a partial patch. Only non-nil
// fields are written.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *int
	ShowTime    *int
	Order       *int
	IsRemove    *bool
	IsPublic    *bool
	ShopID      *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p UpdateServiceInput) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.ShowTime == nil && p.Order == nil && p.IsRemove == nil &&
		p.IsPublic == nil && p.ShopID == nil
}

// serviceUsecase implements the appointment-service business logic.
type serviceUsecase struct {
	services ServiceRepository
}

// NewServiceUsecase creates a new serviceUsecase instance.
func NewServiceUsecase(services ServiceRepository) *serviceUsecase {
	return &serviceUsecase{services: services}
}

// List returns the records matching the filter. With no filters this is the
// admin view: every record is returned regardless of visibility or removal
// status. Callers needing only active/public records must filter
// explicitly. No ordering is applied.
func (u *serviceUsecase) List(ctx context.Context, filter ListFilter) ([]entity.AppointmentService, error) {
	return u.services.FindAll(ctx, filter)
}

// Create inserts a new appointment service. IsPublic defaults to true when
// omitted; Order and IsRemove keep their zero defaults.
func (u *serviceUsecase) Create(ctx context.Context, in CreateServiceInput) (*entity.AppointmentService, error) {
	svc := &entity.AppointmentService{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ShowTime:    in.ShowTime,
		IsPublic:    true,
		ShopID:      in.ShopID,
	}
	if in.IsPublic != nil {
		svc.IsPublic = *in.IsPublic
	}
	if err := u.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetByID returns the record, or (nil, nil) when the id does not exist.
func (u *serviceUsecase) GetByID(ctx context.Context, id string) (*entity.AppointmentService, error) {
	return u.services.FindByID(ctx, id)
}

// Update applies a partial patch and returns the updated record, or
// (nil, nil) when the id does not exist. No upsert semantics.
func (u *serviceUsecase) Update(ctx context.Context, id string, patch UpdateServiceInput) (*entity.AppointmentService, error) {
	return u.services.Update(ctx, id, patch)
}

// SoftDelete sets IsRemove to true unconditionally and returns the updated
// record, or (nil, nil) when the id does not exist. Deleting an
// already-deleted record succeeds and re-confirms the flag.
func (u *serviceUsecase) SoftDelete(ctx context.Context, id string) (*entity.AppointmentService, error) {
	return u.services.SoftDelete(ctx, id)
}
