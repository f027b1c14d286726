package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence/model"
)

func recordOneTime(t *testing.T, repo adapter.MovementRepository, userID uuid.UUID, day, value string, movementType entity.MovementType, categoryName string) *entity.Movement {
	t.Helper()
	m := entity.NewMovement(userID, uuid.Nil, date(day), amount(value), movementType, "")
	_, err := repo.CreateWithCategory(context.Background(), m, categoryName)
	require.NoError(t, err)
	return m
}

func recordTemplate(t *testing.T, repo adapter.MovementRepository, userID uuid.UUID, scheduled string, end *time.Time) *entity.Movement {
	t.Helper()
	m := entity.NewRecurringMovement(userID, uuid.Nil, date(scheduled), amount("800"), entity.MovementTypeExpense, "Arriendo",
		entity.Recurrence{Frequency: entity.FrequencyMonthly, ScheduledDate: date(scheduled), EndDate: end})
	_, err := repo.CreateWithCategory(context.Background(), m, "Arriendo")
	require.NoError(t, err)
	return m
}

func TestCreateWithCategoryReusesCategory(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)
	ctx := context.Background()

	first := entity.NewMovement(user.ID, uuid.Nil, date("2024-03-10"), amount("150.50"), entity.MovementTypeExpense, "")
	c1, err := repo.CreateWithCategory(ctx, first, "Supermercado")
	require.NoError(t, err)

	second := entity.NewMovement(user.ID, uuid.Nil, date("2024-03-11"), amount("20"), entity.MovementTypeExpense, "")
	c2, err := repo.CreateWithCategory(ctx, second, "Supermercado")
	require.NoError(t, err)

	assert.Equal(t, c1.ID, c2.ID)
	assert.Equal(t, c1.ID, first.CategoryID)
	assert.Equal(t, c1.ID, second.CategoryID)

	// Same name with the other type is a different category.
	income := entity.NewMovement(user.ID, uuid.Nil, date("2024-03-11"), amount("20"), entity.MovementTypeIncome, "")
	c3, err := repo.CreateWithCategory(ctx, income, "Supermercado")
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c3.ID)

	var count int64
	require.NoError(t, db.Model(&model.CategoryModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetTotals(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)

	recordOneTime(t, repo, user.ID, "2024-03-10", "150.50", entity.MovementTypeExpense, "Supermercado")
	recordOneTime(t, repo, user.ID, "2024-03-01", "1000", entity.MovementTypeIncome, "Sueldo")
	recordOneTime(t, repo, user.ID, "2024-04-01", "99", entity.MovementTypeExpense, "Supermercado")
	recordTemplate(t, repo, user.ID, "2024-03-15", nil)

	totals, err := repo.GetTotals(context.Background(), user.ID, date("2024-03-01"), date("2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", totals.IncomeTotal.StringFixed(2))
	assert.Equal(t, "150.50", totals.ExpenseTotal.StringFixed(2))

	empty, err := repo.GetTotals(context.Background(), uuid.New(), date("2024-03-01"), date("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, empty.IncomeTotal.IsZero())
	assert.True(t, empty.ExpenseTotal.IsZero())
}

func TestGetCategoryTotals(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)

	recordOneTime(t, repo, user.ID, "2024-03-02", "60", entity.MovementTypeExpense, "Supermercado")
	recordOneTime(t, repo, user.ID, "2024-03-03", "40", entity.MovementTypeExpense, "Supermercado")
	recordOneTime(t, repo, user.ID, "2024-03-04", "50", entity.MovementTypeExpense, "Transporte")
	recordOneTime(t, repo, user.ID, "2024-03-05", "500", entity.MovementTypeIncome, "Sueldo")

	totals, err := repo.GetCategoryTotals(context.Background(), user.ID, entity.MovementTypeExpense, date("2024-03-01"), date("2024-03-31"))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Supermercado", totals[0].CategoryName)
	assert.Equal(t, "100.00", totals[0].Total.StringFixed(2))
	assert.Equal(t, 2, totals[0].Count)
	assert.Equal(t, "Transporte", totals[1].CategoryName)
}

func TestFindByFilter(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)
	ctx := context.Background()

	recordOneTime(t, repo, user.ID, "2024-03-02", "10", entity.MovementTypeExpense, "Cafe")
	recordOneTime(t, repo, user.ID, "2024-03-05", "250", entity.MovementTypeExpense, "Supermercado")
	recordOneTime(t, repo, user.ID, "2024-03-09", "1000", entity.MovementTypeIncome, "Sueldo")
	recordTemplate(t, repo, user.ID, "2024-03-20", nil)

	all, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Sueldo", all[0].Category.Name)

	withTemplates, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: user.ID, IncludeRecurring: true})
	require.NoError(t, err)
	assert.Len(t, withTemplates, 4)

	expense := entity.MovementTypeExpense
	minAmount, maxAmount := amount("5"), amount("100")
	filtered, err := repo.FindByFilter(ctx, adapter.MovementFilter{
		UserID:    user.ID,
		Type:      &expense,
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cafe", filtered[0].Category.Name)

	byName, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: user.ID, CategoryName: "Supermercado"})
	require.NoError(t, err)
	require.Len(t, byName, 1)

	start, end := date("2024-03-03"), date("2024-03-06")
	windowed, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: user.ID, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, windowed, 1)

	limited, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: user.ID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	other, err := repo.FindByFilter(ctx, adapter.MovementFilter{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFindByIDScopesToOwner(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)

	m := recordOneTime(t, repo, user.ID, "2024-03-02", "10", entity.MovementTypeExpense, "Cafe")

	found, err := repo.FindByID(context.Background(), m.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(amount("10")))
	assert.True(t, date("2024-03-02").Equal(found.Date), "got %s", found.Date)

	_, err = repo.FindByID(context.Background(), m.ID, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrMovementNotFound)

	require.NoError(t, repo.Delete(context.Background(), m.ID))
	_, err = repo.FindByID(context.Background(), m.ID, user.ID)
	assert.ErrorIs(t, err, domainerror.ErrMovementNotFound)
}

func TestFindPendingRecurringSkipsExpired(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)

	expired := date("2024-03-31")
	stillOpen := date("2024-06-30")
	recordTemplate(t, repo, user.ID, "2024-03-01", &expired)
	open := recordTemplate(t, repo, user.ID, "2024-05-01", &stillOpen)
	noEnd := recordTemplate(t, repo, user.ID, "2024-04-01", nil)

	pending, err := repo.FindPendingRecurring(context.Background(), user.ID, date("2024-04-15"))
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, noEnd.ID, pending[0].Movement.ID)
	assert.Equal(t, open.ID, pending[1].Movement.ID)
	assert.Equal(t, "Arriendo", pending[0].Category.Name)
}

func TestApproveRecurring(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)
	ctx := context.Background()

	template := recordTemplate(t, repo, user.ID, "2024-04-01", nil)

	occurrence, err := repo.ApproveRecurring(ctx, template.ID, user.ID, date("2024-04-02"))
	require.NoError(t, err)
	assert.False(t, occurrence.IsRecurring)
	assert.True(t, date("2024-04-02").Equal(occurrence.Date), "got %s", occurrence.Date)
	assert.Equal(t, template.CategoryID, occurrence.CategoryID)
	require.NotNil(t, occurrence.SourceMovementID)
	assert.Equal(t, template.ID, *occurrence.SourceMovementID)

	stored, err := repo.FindByID(ctx, template.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Status)
	assert.Equal(t, entity.RecurringStatusApproved, *stored.Status)

	_, err = repo.ApproveRecurring(ctx, template.ID, user.ID, date("2024-04-02"))
	assert.ErrorIs(t, err, domainerror.ErrRecurringNotPending)

	totals, err := repo.GetTotals(ctx, user.ID, date("2024-04-01"), date("2024-04-30"))
	require.NoError(t, err)
	assert.Equal(t, "800.00", totals.ExpenseTotal.StringFixed(2))
}

func TestApproveRecurringRejectsForeignOrOneTime(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)
	ctx := context.Background()

	template := recordTemplate(t, repo, user.ID, "2024-04-01", nil)
	_, err := repo.ApproveRecurring(ctx, template.ID, uuid.New(), date("2024-04-02"))
	assert.ErrorIs(t, err, domainerror.ErrRecurringNotPending)

	oneTime := recordOneTime(t, repo, user.ID, "2024-04-01", "5", entity.MovementTypeExpense, "Cafe")
	_, err = repo.ApproveRecurring(ctx, oneTime.ID, user.ID, date("2024-04-02"))
	assert.ErrorIs(t, err, domainerror.ErrRecurringNotPending)
}

func TestRejectRecurring(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)
	ctx := context.Background()

	soft := recordTemplate(t, repo, user.ID, "2024-04-01", nil)
	hard := recordTemplate(t, repo, user.ID, "2024-04-05", nil)

	require.NoError(t, repo.RejectRecurring(ctx, soft.ID, user.ID, false))
	stored, err := repo.FindByID(ctx, soft.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecurringStatusRejected, *stored.Status)
	assert.ErrorIs(t, repo.RejectRecurring(ctx, soft.ID, user.ID, false), domainerror.ErrRecurringNotPending)

	require.NoError(t, repo.RejectRecurring(ctx, hard.ID, user.ID, true))
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.MovementModel{}).Where("id = ?", hard.ID).Count(&count).Error)
	assert.Zero(t, count)

	pending, err := repo.FindPendingRecurring(ctx, user.ID, date("2024-04-01"))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestGetCategorySpending(t *testing.T) {
	db, user := setup(t)
	repo := NewMovementRepository(db)

	m := recordOneTime(t, repo, user.ID, "2024-03-10", "150.50", entity.MovementTypeExpense, "Supermercado")
	recordOneTime(t, repo, user.ID, "2024-02-28", "70", entity.MovementTypeExpense, "Supermercado")

	spent, err := repo.GetCategorySpending(context.Background(), user.ID, m.CategoryID, date("2024-03-01"), date("2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, "150.50", spent.StringFixed(2))
}
