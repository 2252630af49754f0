// Package entity defines the domain entities for the booking feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService represents a named, priced offering a shop exposes for
// booking. Deletion is logical only: SoftDelete flips IsRemove and the row
// stays fully readable.
type AppointmentService struct {
	// ID is the unique identifier for the record, generated at creation.
	ID string `gorm:"type:uuid;primaryKey"`

	// Name is the display name of the offering.
	Name string `gorm:"size:255;not null"`

	// Description is optional free text.
	Description *string `gorm:"type:text"`

	// Price is the integer price of the offering.
	Price int `gorm:"not null"`

	// ShowTime is the optional display duration in minutes.
	ShowTime *int

	// Order is the display order, 0 when unspecified.
	Order int `gorm:"not null;default:0"`

	// IsRemove marks the record as soft-deleted. Rows are never purged.
	IsRemove bool `gorm:"not null;default:false"`

	// IsPublic marks the record as publicly visible. The true-by-default rule
	// lives in the usecase; a gorm default tag would silently discard an
	// explicit false on insert.
	IsPublic bool `gorm:"not null"`

	// ShopID is an opaque reference to the owning shop, not a navigable
	// relationship.
	ShopID *string `gorm:"type:uuid;index"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the record was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *AppointmentService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
