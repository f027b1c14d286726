// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence/model"
)

// movementRepository implements the adapter.MovementRepository interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository instance.
func NewMovementRepository(db *gorm.DB) adapter.MovementRepository {
	return &movementRepository{
		db: db,
	}
}

// CreateWithCategory resolves the category and inserts the movement in one transaction.
func (r *movementRepository) CreateWithCategory(ctx context.Context, movement *entity.Movement, categoryName string) (*entity.Category, error) {
	var category *entity.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryModel, err := findOrCreateCategory(tx, movement.UserID, categoryName, movement.Type)
		if err != nil {
			return err
		}

		movement.CategoryID = categoryModel.ID
		if err := tx.Create(model.MovementFromEntity(movement)).Error; err != nil {
			return err
		}

		category = categoryModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateWithCategory re-resolves the category and saves the movement in one transaction.
func (r *movementRepository) UpdateWithCategory(ctx context.Context, movement *entity.Movement, categoryName string) (*entity.Category, error) {
	var category *entity.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryModel, err := findOrCreateCategory(tx, movement.UserID, categoryName, movement.Type)
		if err != nil {
			return err
		}

		movement.CategoryID = categoryModel.ID
		if err := tx.Save(model.MovementFromEntity(movement)).Error; err != nil {
			return err
		}

		category = categoryModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// FindByID retrieves a movement owned by userID.
func (r *movementRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Movement, error) {
	var movementModel model.MovementModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&movementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return movementModel.ToEntity(), nil
}

// FindByFilter retrieves movements with their categories, newest first.
func (r *movementRepository) FindByFilter(ctx context.Context, filter adapter.MovementFilter) ([]*entity.MovementWithCategory, error) {
	query := r.db.WithContext(ctx).Model(&model.MovementModel{})

	query = query.Where("movements.user_id = ?", filter.UserID)

	if !filter.IncludeRecurring {
		query = query.Where("movements.is_recurring = ?", false)
	}
	if filter.StartDate != nil {
		query = query.Where("movements.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("movements.date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("movements.type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("movements.category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = movements.category_id").
			Where("categories.name = ?", filter.CategoryName)
	}
	if filter.MinAmount != nil {
		query = query.Where("movements.amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("movements.amount <= ?", *filter.MaxAmount)
	}

	query = query.Preload("Category").Order("movements.date DESC, movements.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var movementModels []model.MovementModel
	if err := query.Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]*entity.MovementWithCategory, len(movementModels))
	for i, mm := range movementModels {
		movements[i] = mm.ToEntityWithCategory()
	}
	return movements, nil
}

// Delete soft-deletes a movement from the database.
func (r *movementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MovementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetTotals sums one-time income and expense movements within the window.
func (r *movementRepository) GetTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*adapter.MovementTotals, error) {
	query := r.db.WithContext(ctx).Model(&model.MovementModel{}).
		Where("user_id = ?", userID).
		Where("is_recurring = ?", false).
		Where("date >= ? AND date <= ?", startDate, endDate)

	var incomeResult struct {
		Total decimal.Decimal
	}
	incomeQuery := query.Session(&gorm.Session{}).Where("type = ?", string(entity.MovementTypeIncome))
	if err := incomeQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&incomeResult).Error; err != nil {
		return nil, err
	}

	var expenseResult struct {
		Total decimal.Decimal
	}
	expenseQuery := query.Session(&gorm.Session{}).Where("type = ?", string(entity.MovementTypeExpense))
	if err := expenseQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&expenseResult).Error; err != nil {
		return nil, err
	}

	return &adapter.MovementTotals{
		IncomeTotal:  incomeResult.Total.Round(2),
		ExpenseTotal: expenseResult.Total.Round(2),
	}, nil
}

// GetCategoryTotals sums one-time movements of a type per category within the window.
func (r *movementRepository) GetCategoryTotals(
	ctx context.Context,
	userID uuid.UUID,
	movementType entity.MovementType,
	startDate, endDate time.Time,
) ([]*entity.CategoryTotal, error) {
	var results []struct {
		CategoryID    uuid.UUID       `gorm:"column:category_id"`
		CategoryName  string          `gorm:"column:category_name"`
		Amount        decimal.Decimal `gorm:"column:amount"`
		MovementCount int             `gorm:"column:movement_count"`
	}

	query := `
		SELECT
			m.category_id,
			c.name as category_name,
			SUM(m.amount) as amount,
			COUNT(*) as movement_count
		FROM movements m
		JOIN categories c ON m.category_id = c.id
		WHERE m.user_id = ?
			AND m.type = ?
			AND m.is_recurring = ?
			AND m.date >= ?
			AND m.date <= ?
			AND m.deleted_at IS NULL
		GROUP BY m.category_id, c.name
		ORDER BY amount DESC, c.name ASC
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, string(movementType), false, startDate, endDate).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	totals := make([]*entity.CategoryTotal, len(results))
	for i, res := range results {
		totals[i] = &entity.CategoryTotal{
			CategoryID:   res.CategoryID,
			CategoryName: res.CategoryName,
			Total:        res.Amount.Round(2),
			Count:        res.MovementCount,
		}
	}
	return totals, nil
}

// GetCategorySpending sums one-time expense movements of a category within the window.
func (r *movementRepository) GetCategorySpending(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.MovementModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Where("type = ? AND is_recurring = ?", string(entity.MovementTypeExpense), false).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.Total.Round(2), nil
}

// FindPendingRecurring retrieves unexpired pending templates ordered by scheduled date.
func (r *movementRepository) FindPendingRecurring(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.MovementWithCategory, error) {
	var movementModels []model.MovementModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND is_recurring = ? AND status = ?", userID, true, string(entity.RecurringStatusPending)).
		Where("end_date IS NULL OR end_date >= ?", asOf).
		Order("scheduled_date ASC, created_at ASC").
		Find(&movementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.MovementWithCategory, len(movementModels))
	for i, mm := range movementModels {
		movements[i] = mm.ToEntityWithCategory()
	}
	return movements, nil
}

// ApproveRecurring flips a pending template to approved and inserts its occurrence.
// The status guard in the UPDATE makes a second approval affect no rows.
func (r *movementRepository) ApproveRecurring(ctx context.Context, id, userID uuid.UUID, occurrenceDate time.Time) (*entity.Movement, error) {
	var occurrence *entity.Movement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := pendingTemplate(tx.Model(&model.MovementModel{}), id, userID).
			Updates(map[string]interface{}{
				"status":     string(entity.RecurringStatusApproved),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecurringNotPending
		}

		var template model.MovementModel
		if err := tx.Where("id = ?", id).First(&template).Error; err != nil {
			return err
		}

		occurrence = template.ToEntity().Materialize(occurrenceDate)
		return tx.Create(model.MovementFromEntity(occurrence)).Error
	})
	if err != nil {
		return nil, err
	}
	return occurrence, nil
}

// RejectRecurring marks a pending template rejected, or removes it permanently when hard is set.
func (r *movementRepository) RejectRecurring(ctx context.Context, id, userID uuid.UUID, hard bool) error {
	var result *gorm.DB
	if hard {
		result = pendingTemplate(r.db.WithContext(ctx).Unscoped(), id, userID).
			Where("deleted_at IS NULL").
			Delete(&model.MovementModel{})
	} else {
		result = pendingTemplate(r.db.WithContext(ctx).Model(&model.MovementModel{}), id, userID).
			Updates(map[string]interface{}{
				"status":     string(entity.RecurringStatusRejected),
				"updated_at": time.Now().UTC(),
			})
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotPending
	}
	return nil
}

// MarkReminded stamps reminded_on on the given templates.
func (r *movementRepository) MarkReminded(ctx context.Context, ids []uuid.UUID, day time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.MovementModel{}).
		Where("id IN ? AND is_recurring = ?", ids, true).
		Update("reminded_on", day).Error
}

func pendingTemplate(db *gorm.DB, id, userID uuid.UUID) *gorm.DB {
	return db.Where("id = ? AND user_id = ? AND is_recurring = ? AND status = ?",
		id, userID, true, string(entity.RecurringStatusPending))
}
