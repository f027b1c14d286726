// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	// Returns ErrCategoryNameExists when the (owner, name, type) triple is taken.
	Create(ctx context.Context, category *entity.Category) error

	// Update saves the name of an existing category.
	// Returns ErrCategoryNameExists when the new name is taken.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category that no live movement or budget references.
	// Returns ErrCategoryInUse otherwise.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByOwner retrieves the categories of an owner, optionally filtered by type, sorted by name.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, categoryType *entity.MovementType) ([]*entity.Category, error)

	// FindByName retrieves the category identified by (owner, name, type).
	// Returns nil without error when none exists.
	FindByName(ctx context.Context, ownerID uuid.UUID, name string, categoryType entity.MovementType) (*entity.Category, error)

	// FindOrCreate returns the category identified by (owner, name, type), creating it if absent.
	// Concurrent calls for the same triple converge on a single row.
	FindOrCreate(ctx context.Context, ownerID uuid.UUID, name string, categoryType entity.MovementType) (*entity.Category, error)
}
