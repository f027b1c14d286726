package movement

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/infra/db/dbtest"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence"
)

type fixture struct {
	userID       uuid.UUID
	movementRepo adapter.MovementRepository
	categoryRepo adapter.CategoryRepository
	record       *RecordMovementUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)

	user := entity.NewUser("ana@example.com", "Ana", "hash")
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), user))

	movementRepo := persistence.NewMovementRepository(db)
	return &fixture{
		userID:       user.ID,
		movementRepo: movementRepo,
		categoryRepo: persistence.NewCategoryRepository(db),
		record:       NewRecordMovementUseCase(movementRepo),
	}
}

func (f *fixture) mustRecord(t *testing.T, day, amount, movementType, category string) *entity.MovementWithCategory {
	t.Helper()
	out, err := f.record.Execute(context.Background(), RecordMovementInput{
		UserID:       f.userID,
		Date:         mustDate(day),
		CategoryName: category,
		Amount:       decimal.RequireFromString(amount),
		Type:         movementType,
	})
	require.NoError(t, err)
	return out.Movement
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func TestRecordMovementValidation(t *testing.T) {
	f := newFixture(t)

	valid := func() RecordMovementInput {
		return RecordMovementInput{
			UserID:       f.userID,
			Date:         mustDate("2024-03-10"),
			CategoryName: "Supermercado",
			Amount:       decimal.RequireFromString("150.50"),
			Type:         "expense",
		}
	}

	tests := []struct {
		name   string
		modify func(*RecordMovementInput)
		code   domainerror.MovementErrorCode
	}{
		{"unknown type", func(in *RecordMovementInput) { in.Type = "transfer" }, domainerror.ErrCodeInvalidMovementType},
		{"zero amount", func(in *RecordMovementInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidMovementAmount},
		{"negative amount", func(in *RecordMovementInput) { in.Amount = decimal.NewFromInt(-3) }, domainerror.ErrCodeInvalidMovementAmount},
		{"sub-cent amount", func(in *RecordMovementInput) { in.Amount = decimal.RequireFromString("0.001") }, domainerror.ErrCodeInvalidMovementAmount},
		{"three decimals", func(in *RecordMovementInput) { in.Amount = decimal.RequireFromString("10.505") }, domainerror.ErrCodeInvalidMovementAmount},
		{"amount overflows column", func(in *RecordMovementInput) { in.Amount = decimal.RequireFromString("12345678901234567.89") }, domainerror.ErrCodeInvalidMovementAmount},
		{"missing date", func(in *RecordMovementInput) { in.Date = time.Time{} }, domainerror.ErrCodeInvalidMovementDate},
		{"blank category", func(in *RecordMovementInput) { in.CategoryName = "   " }, domainerror.ErrCodeMissingCategoryName},
		{"long category", func(in *RecordMovementInput) { in.CategoryName = strings.Repeat("x", 51) }, domainerror.ErrCodeMovementCategoryLong},
		{"long description", func(in *RecordMovementInput) { in.Description = strings.Repeat("x", 256) }, domainerror.ErrCodeDescriptionTooLong},
		{"unknown frequency", func(in *RecordMovementInput) {
			in.Recurrence = &entity.Recurrence{Frequency: "hourly", ScheduledDate: mustDate("2024-04-01")}
		}, domainerror.ErrCodeInvalidFrequency},
		{"end before scheduled", func(in *RecordMovementInput) {
			in.Recurrence = &entity.Recurrence{Frequency: entity.FrequencyMonthly, ScheduledDate: mustDate("2024-04-01"), EndDate: ptr(mustDate("2024-03-01"))}
		}, domainerror.ErrCodeInvalidRecurrenceWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.modify(&input)

			_, err := f.record.Execute(context.Background(), input)
			require.Error(t, err)

			var movementErr *domainerror.MovementError
			require.ErrorAs(t, err, &movementErr)
			assert.Equal(t, tt.code, movementErr.Code)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		})
	}
}

func TestRecordMovementAcceptsSpanishTypeAndTrimsCategory(t *testing.T) {
	f := newFixture(t)

	m := f.mustRecord(t, "2024-03-10", "150.50", "Gasto", "  Supermercado ")
	assert.Equal(t, entity.MovementTypeExpense, m.Movement.Type)
	assert.Equal(t, "Supermercado", m.Category.Name)
	assert.Equal(t, entity.MovementTypeExpense, m.Category.Type)

	again := f.mustRecord(t, "2024-03-10", "150.50", "expense", "Supermercado")
	assert.Equal(t, m.Category.ID, again.Category.ID)
	assert.NotEqual(t, m.Movement.ID, again.Movement.ID)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.mustRecord(t, "2024-03-10", "150.50", "expense", "Supermercado")

	summary := NewGetSummaryUseCase(f.movementRepo).WithClock(func() time.Time {
		return time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)
	})

	out, err := summary.Execute(context.Background(), GetSummaryInput{UserID: f.userID})
	require.NoError(t, err)
	assert.Equal(t, "0.00", out.Summary.IncomeTotal.StringFixed(2))
	assert.Equal(t, "150.50", out.Summary.ExpenseTotal.StringFixed(2))
	assert.Equal(t, "-150.50", out.Summary.Balance.StringFixed(2))
	assert.True(t, mustDate("2024-03-01").Equal(out.Summary.StartDate))
	assert.True(t, mustDate("2024-03-20").Equal(out.Summary.EndDate))

	_, err = summary.Execute(context.Background(), GetSummaryInput{
		UserID:    f.userID,
		StartDate: ptr(mustDate("2024-03-31")),
		EndDate:   ptr(mustDate("2024-03-01")),
	})
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeInvalidDateRange, movementErr.Code)
}

func TestSummaryWithOnlyStartDate(t *testing.T) {
	f := newFixture(t)
	f.mustRecord(t, "2024-03-10", "40", "expense", "Cafe")
	f.mustRecord(t, "2024-04-25", "60", "expense", "Cafe")

	summary := NewGetSummaryUseCase(f.movementRepo).WithClock(func() time.Time {
		return time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)
	})

	t.Run("start in the past runs to today", func(t *testing.T) {
		out, err := summary.Execute(context.Background(), GetSummaryInput{UserID: f.userID, StartDate: ptr(mustDate("2024-03-05"))})
		require.NoError(t, err)
		assert.True(t, mustDate("2024-03-20").Equal(out.Summary.EndDate))
		assert.Equal(t, "40.00", out.Summary.ExpenseTotal.StringFixed(2))
	})

	t.Run("start after today runs to the end of its month", func(t *testing.T) {
		out, err := summary.Execute(context.Background(), GetSummaryInput{UserID: f.userID, StartDate: ptr(mustDate("2024-04-10"))})
		require.NoError(t, err)
		assert.True(t, mustDate("2024-04-30").Equal(out.Summary.EndDate))
		assert.Equal(t, "60.00", out.Summary.ExpenseTotal.StringFixed(2))
	})
}

func TestSummaryIgnoresRecurringTemplates(t *testing.T) {
	f := newFixture(t)
	_, err := f.record.Execute(context.Background(), RecordMovementInput{
		UserID:       f.userID,
		Date:         mustDate("2024-03-05"),
		CategoryName: "Arriendo",
		Amount:       decimal.NewFromInt(800),
		Type:         "expense",
		Recurrence:   &entity.Recurrence{Frequency: entity.FrequencyMonthly, ScheduledDate: mustDate("2024-03-05")},
	})
	require.NoError(t, err)

	out, err := NewGetSummaryUseCase(f.movementRepo).Execute(context.Background(), GetSummaryInput{
		UserID:    f.userID,
		StartDate: ptr(mustDate("2024-03-01")),
		EndDate:   ptr(mustDate("2024-03-31")),
	})
	require.NoError(t, err)
	assert.True(t, out.Summary.ExpenseTotal.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	f := newFixture(t)
	f.mustRecord(t, "2024-03-02", "75", "expense", "Supermercado")
	f.mustRecord(t, "2024-03-03", "25", "expense", "Transporte")
	f.mustRecord(t, "2024-03-04", "1000", "income", "Sueldo")

	breakdown := NewGetCategoryBreakdownUseCase(f.movementRepo)
	out, err := breakdown.Execute(context.Background(), GetCategoryBreakdownInput{
		UserID:    f.userID,
		StartDate: ptr(mustDate("2024-03-01")),
		EndDate:   ptr(mustDate("2024-03-31")),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExpense, out.Type)
	assert.Equal(t, "100.00", out.Total.StringFixed(2))
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Supermercado", out.Categories[0].CategoryName)
	assert.Equal(t, "75.00", out.Categories[0].Percentage.StringFixed(2))
	assert.Equal(t, "25.00", out.Categories[1].Percentage.StringFixed(2))

	income, err := breakdown.Execute(context.Background(), GetCategoryBreakdownInput{
		UserID:    f.userID,
		Type:      "ingreso",
		StartDate: ptr(mustDate("2024-03-01")),
		EndDate:   ptr(mustDate("2024-03-31")),
	})
	require.NoError(t, err)
	require.Len(t, income.Categories, 1)
	assert.Equal(t, "100.00", income.Categories[0].Percentage.StringFixed(2))

	empty, err := breakdown.Execute(context.Background(), GetCategoryBreakdownInput{
		UserID:    f.userID,
		StartDate: ptr(mustDate("2023-01-01")),
		EndDate:   ptr(mustDate("2023-01-31")),
	})
	require.NoError(t, err)
	assert.Empty(t, empty.Categories)
	assert.True(t, empty.Total.IsZero())
}

func TestListMovements(t *testing.T) {
	f := newFixture(t)
	f.mustRecord(t, "2024-03-02", "10", "expense", "Cafe")
	f.mustRecord(t, "2024-03-05", "250", "expense", "Supermercado")
	f.mustRecord(t, "2024-03-09", "1000", "income", "Sueldo")

	list := NewListMovementsUseCase(f.movementRepo)
	ctx := context.Background()

	out, err := list.Execute(ctx, ListMovementsInput{UserID: f.userID})
	require.NoError(t, err)
	require.Len(t, out.Movements, 3)
	assert.Equal(t, "Sueldo", out.Movements[0].Category.Name)

	out, err = list.Execute(ctx, ListMovementsInput{UserID: f.userID, Type: "expense", MinAmount: ptr(decimal.NewFromInt(100))})
	require.NoError(t, err)
	require.Len(t, out.Movements, 1)
	assert.Equal(t, "Supermercado", out.Movements[0].Category.Name)

	out, err = list.Execute(ctx, ListMovementsInput{UserID: f.userID, CategoryName: " Cafe "})
	require.NoError(t, err)
	assert.Len(t, out.Movements, 1)

	out, err = list.Execute(ctx, ListMovementsInput{UserID: f.userID, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Movements, 1)

	_, err = list.Execute(ctx, ListMovementsInput{
		UserID:    f.userID,
		MinAmount: ptr(decimal.NewFromInt(10)),
		MaxAmount: ptr(decimal.NewFromInt(5)),
	})
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeInvalidAmountRange, movementErr.Code)
}

func TestUpdateMovement(t *testing.T) {
	f := newFixture(t)
	m := f.mustRecord(t, "2024-03-02", "10", "expense", "Cafe")
	update := NewUpdateMovementUseCase(f.movementRepo, f.categoryRepo)
	ctx := context.Background()

	out, err := update.Execute(ctx, UpdateMovementInput{
		MovementID:   m.Movement.ID,
		UserID:       f.userID,
		Amount:       ptr(decimal.RequireFromString("12.40")),
		CategoryName: ptr("Desayuno"),
	})
	require.NoError(t, err)
	assert.Equal(t, "12.40", out.Movement.Movement.Amount.StringFixed(2))
	assert.Equal(t, "Desayuno", out.Movement.Category.Name)

	_, err = update.Execute(ctx, UpdateMovementInput{MovementID: m.Movement.ID, UserID: uuid.New(), Amount: ptr(decimal.NewFromInt(1))})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	_, err = update.Execute(ctx, UpdateMovementInput{MovementID: m.Movement.ID, UserID: f.userID, Amount: ptr(decimal.Zero)})
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

	_, err = update.Execute(ctx, UpdateMovementInput{MovementID: m.Movement.ID, UserID: f.userID, Amount: ptr(decimal.RequireFromString("0.001"))})
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeInvalidMovementAmount, movementErr.Code)
}

func TestRecordMovementKeepsTrailingZeroAmounts(t *testing.T) {
	f := newFixture(t)

	m := f.mustRecord(t, "2024-06-10", "150.500", "expense", "Comida")
	assert.Equal(t, "150.50", m.Movement.Amount.StringFixed(2))

	out, err := NewGetSummaryUseCase(f.movementRepo).Execute(context.Background(), GetSummaryInput{
		UserID:    f.userID,
		StartDate: ptr(mustDate("2024-06-01")),
		EndDate:   ptr(mustDate("2024-06-30")),
	})
	require.NoError(t, err)
	assert.Equal(t, "150.50", out.Summary.ExpenseTotal.StringFixed(2))
}

func TestUpdateMovementRefusesRecurringTemplate(t *testing.T) {
	f := newFixture(t)
	out, err := f.record.Execute(context.Background(), RecordMovementInput{
		UserID:       f.userID,
		Date:         mustDate("2024-03-05"),
		CategoryName: "Arriendo",
		Amount:       decimal.NewFromInt(800),
		Type:         "expense",
		Recurrence:   &entity.Recurrence{Frequency: entity.FrequencyMonthly, ScheduledDate: mustDate("2024-04-01")},
	})
	require.NoError(t, err)

	_, err = NewUpdateMovementUseCase(f.movementRepo, f.categoryRepo).Execute(context.Background(), UpdateMovementInput{
		MovementID: out.Movement.Movement.ID,
		UserID:     f.userID,
		Amount:     ptr(decimal.NewFromInt(900)),
	})
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeRecurringImmutable, movementErr.Code)
}

func TestDeleteMovement(t *testing.T) {
	f := newFixture(t)
	m := f.mustRecord(t, "2024-03-02", "10", "expense", "Cafe")
	del := NewDeleteMovementUseCase(f.movementRepo)

	require.NoError(t, del.Execute(context.Background(), DeleteMovementInput{MovementID: m.Movement.ID, UserID: f.userID}))

	err := del.Execute(context.Background(), DeleteMovementInput{MovementID: m.Movement.ID, UserID: f.userID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestGetMovement(t *testing.T) {
	f := newFixture(t)
	m := f.mustRecord(t, "2024-03-02", "12.40", "expense", "Cafe")
	get := NewGetMovementUseCase(f.movementRepo, f.categoryRepo)
	ctx := context.Background()

	out, err := get.Execute(ctx, GetMovementInput{MovementID: m.Movement.ID, UserID: f.userID})
	require.NoError(t, err)
	assert.Equal(t, m.Movement.ID, out.Movement.Movement.ID)
	assert.Equal(t, "12.40", out.Movement.Movement.Amount.StringFixed(2))
	assert.True(t, mustDate("2024-03-02").Equal(out.Movement.Movement.Date))
	require.NotNil(t, out.Movement.Category)
	assert.Equal(t, "Cafe", out.Movement.Category.Name)

	_, err = get.Execute(ctx, GetMovementInput{MovementID: m.Movement.ID, UserID: uuid.New()})
	var movementErr *domainerror.MovementError
	require.ErrorAs(t, err, &movementErr)
	assert.Equal(t, domainerror.ErrCodeMovementNotFound, movementErr.Code)

	require.NoError(t, NewDeleteMovementUseCase(f.movementRepo).Execute(ctx, DeleteMovementInput{MovementID: m.Movement.ID, UserID: f.userID}))
	_, err = get.Execute(ctx, GetMovementInput{MovementID: m.Movement.ID, UserID: f.userID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}
