// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named, typed tag owned by one user.
// The triple (OwnerID, Name, Type) identifies a category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      MovementType
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(ownerID uuid.UUID, name string, categoryType MovementType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
