// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase deletes a category nothing is filed under.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := findOwned(ctx, uc.categoryRepo, input.CategoryID, input.OwnerID); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryInUse):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category still has movements or budgets",
				domainerror.ErrCategoryInUse,
			)
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, domainerror.NewStorageError("delete category", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
