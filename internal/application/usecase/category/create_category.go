// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	OwnerID uuid.UUID
	Name    string
	Type    string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase creates a category explicitly. Unlike the find-or-create
// done while recording movements, an existing (owner, name, type) is a conflict.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	categoryType, ok := entity.ParseMovementType(input.Type)
	if !ok {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.OwnerID, name, categoryType)
	if err != nil {
		return nil, domainerror.NewStorageError("find category", err)
	}
	if existing != nil {
		return nil, errNameExists()
	}

	category := entity.NewCategory(input.OwnerID, name, categoryType)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		// A concurrent create can win the unique index between the lookup and the insert.
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, errNameExists()
		}
		return nil, domainerror.NewStorageError("create category", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// normalizeName trims and length-checks a category name, reporting failures with category codes.
func normalizeName(raw string) (string, error) {
	name, err := movement.NormalizeCategoryName(raw)
	if err != nil {
		code := domainerror.ErrCodeMissingCategoryFields
		if errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			code = domainerror.ErrCodeCategoryNameTooLong
		}
		return "", domainerror.NewCategoryError(code, err.Error(), errors.Unwrap(err))
	}
	return name, nil
}

func errNameExists() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}
