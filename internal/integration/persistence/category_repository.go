// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// Update saves the name of an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":       category.Name,
			"updated_at": category.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category once nothing live references it. Soft-deleted
// movements and budgets still pointing at it are purged in the same transaction.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movements, budgets int64
		if err := tx.Model(&model.MovementModel{}).Where("category_id = ?", id).Count(&movements).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.BudgetModel{}).Where("category_id = ?", id).Count(&budgets).Error; err != nil {
			return err
		}
		if movements > 0 || budgets > 0 {
			return domainerror.ErrCategoryInUse
		}

		if err := tx.Unscoped().Where("category_id = ?", id).Delete(&model.MovementModel{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("category_id = ?", id).Delete(&model.BudgetModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.CategoryModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByOwner retrieves the categories of an owner, optionally filtered by type.
func (r *categoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, categoryType *entity.MovementType) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByName retrieves a category by its (owner, name, type) triple.
func (r *categoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string, categoryType entity.MovementType) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ? AND type = ?", ownerID, name, string(categoryType)).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindOrCreate returns the category for (owner, name, type), creating it when absent.
func (r *categoryRepository) FindOrCreate(ctx context.Context, ownerID uuid.UUID, name string, categoryType entity.MovementType) (*entity.Category, error) {
	categoryModel, err := findOrCreateCategory(r.db.WithContext(ctx), ownerID, name, categoryType)
	if err != nil {
		return nil, err
	}
	return categoryModel.ToEntity(), nil
}

// findOrCreateCategory resolves a category on db, which may be an open transaction.
// The insert ignores unique-index conflicts and the row is re-read, so a concurrent
// writer that won the race is returned instead of a duplicate.
func findOrCreateCategory(db *gorm.DB, ownerID uuid.UUID, name string, categoryType entity.MovementType) (*model.CategoryModel, error) {
	var existing model.CategoryModel
	lookup := func() error {
		return db.Where("owner_id = ? AND name = ? AND type = ?", ownerID, name, string(categoryType)).
			First(&existing).Error
	}

	err := lookup()
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.CategoryFromEntity(entity.NewCategory(ownerID, name, categoryType))
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(created).Error; err != nil {
		return nil, err
	}

	if err := lookup(); err != nil {
		return nil, err
	}
	return &existing, nil
}
