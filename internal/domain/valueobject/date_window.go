// Package valueobject contains immutable value types shared by use cases.
package valueobject

import (
	"time"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// DateWindow is an inclusive range of calendar dates, both ends at UTC midnight.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// DateOnly truncates t to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// NewDateWindow builds a window from two dates, truncating both.
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{Start: DateOnly(start), End: DateOnly(end)}
}

// IsValid reports whether the window does not end before it starts.
func (w DateWindow) IsValid() bool {
	return !w.End.Before(w.Start)
}

// Contains reports whether d falls inside the window.
func (w DateWindow) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// MonthToDate is the first day of today's month through today.
func MonthToDate(today time.Time) DateWindow {
	today = DateOnly(today)
	return DateWindow{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   today,
	}
}

// CurrentPeriod returns the calendar window of period that contains today.
// Weeks start on Sunday.
func CurrentPeriod(period entity.BudgetPeriod, today time.Time) DateWindow {
	today = DateOnly(today)

	switch period {
	case entity.BudgetPeriodWeekly:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return DateWindow{Start: start, End: start.AddDate(0, 0, 6)}
	case entity.BudgetPeriodYearly:
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return DateWindow{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateWindow{Start: start, End: start.AddDate(0, 1, -1)}
	}
}
