package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentPeriod(t *testing.T) {
	today := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name   string
		period entity.BudgetPeriod
		want   DateWindow
	}{
		{"weekly starts sunday", entity.BudgetPeriodWeekly, DateWindow{date(2024, 6, 9), date(2024, 6, 15)}},
		{"monthly", entity.BudgetPeriodMonthly, DateWindow{date(2024, 6, 1), date(2024, 6, 30)}},
		{"yearly", entity.BudgetPeriodYearly, DateWindow{date(2024, 1, 1), date(2024, 12, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentPeriod(tt.period, today))
		})
	}
}

func TestMonthToDate(t *testing.T) {
	w := MonthToDate(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, date(2024, 2, 1), w.Start)
	assert.Equal(t, date(2024, 2, 29), w.End)
	assert.True(t, w.Contains(date(2024, 2, 10)))
	assert.False(t, w.Contains(date(2024, 3, 1)))
}

func TestDateWindowIsValid(t *testing.T) {
	assert.True(t, NewDateWindow(date(2024, 1, 1), date(2024, 1, 1)).IsValid())
	assert.False(t, NewDateWindow(date(2024, 1, 2), date(2024, 1, 1)).IsValid())
}
