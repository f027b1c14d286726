package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// dateFlag parses an optional YYYY-MM-DD flag value.
func dateFlag(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := valueobject.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s must be formatted as YYYY-MM-DD", name)
	}
	return &date, nil
}

func decimalFlag(name, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a number", name)
	}
	return &d, nil
}

func printMovements(w io.Writer, movements []*entity.MovementWithCategory) error {
	if len(movements) == 0 {
		_, err := fmt.Fprintln(w, "No movements found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, mc := range movements {
		m := mc.Movement
		categoryName := ""
		if mc.Category != nil {
			categoryName = mc.Category.Name
		}
		date := m.Date
		if m.IsRecurring && m.ScheduledDate != nil {
			date = *m.ScheduledDate
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, date.Format(valueobject.DateLayout), m.Type, categoryName, m.Amount.StringFixed(2), m.Description)
	}
	return tw.Flush()
}

func printBudget(w io.Writer, b *entity.BudgetWithStatus) {
	categoryName := ""
	if b.Category != nil {
		categoryName = b.Category.Name
	}

	state := "within budget"
	if b.Status.Exceeded {
		state = "EXCEEDED"
	}

	fmt.Fprintf(w, "%s  %s (%s, %s..%s)\n", b.Budget.ID, categoryName, b.Budget.Period,
		b.Budget.StartDate.Format(valueobject.DateLayout), b.Budget.EndDate.Format(valueobject.DateLayout))
	fmt.Fprintf(w, "  spent %s of %s, %s remaining, %s%% used, %s\n",
		b.Status.CurrentAmount.StringFixed(2),
		b.Status.MaxAmount.StringFixed(2),
		b.Status.RemainingAmount.StringFixed(2),
		b.Status.PercentageUsed.StringFixed(2),
		state,
	)
}

// cliError turns a coded domain error into "CODE: message"; other errors pass through.
func cliError(err error) error {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		if coded.Kind() == domainerror.KindStorage {
			return fmt.Errorf("%s: %w", coded.ErrorCode(), err)
		}
		return fmt.Errorf("%s: %s", coded.ErrorCode(), coded.PublicMessage())
	}
	return err
}
