package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
// An empty Type lists both income and expense categories.
type ListCategoriesInput struct {
	OwnerID uuid.UUID
	Type    string
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the owner's categories sorted by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var typeFilter *entity.MovementType
	if input.Type != "" {
		categoryType, ok := entity.ParseMovementType(input.Type)
		if !ok {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be 'income' or 'expense'",
				domainerror.ErrInvalidCategoryType,
			)
		}
		typeFilter = &categoryType
	}

	categories, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID, typeFilter)
	if err != nil {
		return nil, domainerror.NewStorageError("list categories", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
