// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
	Name       string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase renames a category. The type is fixed at creation because
// movements and budgets filed under the category depend on it.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := findOwned(ctx, uc.categoryRepo, input.CategoryID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if name == category.Name {
		return &UpdateCategoryOutput{Category: category}, nil
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.OwnerID, name, category.Type)
	if err != nil {
		return nil, domainerror.NewStorageError("find category", err)
	}
	if existing != nil {
		return nil, errNameExists()
	}

	category.Name = name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, errNameExists()
		}
		return nil, domainerror.NewStorageError("update category", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}

// findOwned loads a category and hides categories of other owners behind not found.
func findOwned(ctx context.Context, repo adapter.CategoryRepository, id, ownerID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, domainerror.NewStorageError("find category", err)
	}
	if err != nil || category.OwnerID != ownerID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return category, nil
}
