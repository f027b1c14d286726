package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

func summaryCmd(a *app) *cobra.Command {
	var from, to string
	var breakdown bool
	var breakdownType string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense and balance for a window (month to date by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			start, err := dateFlag("from", from)
			if err != nil {
				return err
			}
			end, err := dateFlag("to", to)
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.Summary.Execute(cmd.Context(), movement.GetSummaryInput{
				UserID:    ownerID,
				StartDate: start,
				EndDate:   end,
			})
			if err != nil {
				return cliError(err)
			}

			s := out.Summary
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s .. %s\n", s.StartDate.Format(valueobject.DateLayout), s.EndDate.Format(valueobject.DateLayout))
			fmt.Fprintf(w, "Income:  %12s\n", s.IncomeTotal.StringFixed(2))
			fmt.Fprintf(w, "Expense: %12s\n", s.ExpenseTotal.StringFixed(2))
			fmt.Fprintf(w, "Balance: %12s\n", s.Balance.StringFixed(2))

			if !breakdown {
				return nil
			}

			bd, err := a.injector.UseCases.Breakdown.Execute(cmd.Context(), movement.GetCategoryBreakdownInput{
				UserID:    ownerID,
				Type:      breakdownType,
				StartDate: start,
				EndDate:   end,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(w, "\n%s by category\n", bd.Type)
			tw := newTable(w)
			fmt.Fprintln(tw, "CATEGORY\tTOTAL\tSHARE\tCOUNT")
			for _, c := range bd.Categories {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%d\n", c.CategoryName, c.Total.StringFixed(2), c.Percentage.StringFixed(2), c.Count)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "also print totals per category")
	cmd.Flags().StringVar(&breakdownType, "breakdown-type", "expense", "movement type of the breakdown")

	return cmd
}
