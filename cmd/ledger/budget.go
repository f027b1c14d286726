package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/budget"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

func budgetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"budgets"},
		Short:   "Set and check per-category spending caps",
	}

	cmd.AddCommand(budgetAddCmd(a))
	cmd.AddCommand(budgetShowCmd(a))
	cmd.AddCommand(budgetListCmd(a))
	cmd.AddCommand(budgetUpdateCmd(a))
	cmd.AddCommand(budgetDeleteCmd(a))
	cmd.AddCommand(budgetSummaryCmd(a))

	return cmd
}

func budgetAddCmd(a *app) *cobra.Command {
	var categoryName, maxAmount, period, from, to string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a budget for an expense category",
		Example: `  ledger budget add --owner ana@example.com --category Supermercado --max 500 --period monthly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			maxValue, err := decimal.NewFromString(maxAmount)
			if err != nil {
				return fmt.Errorf("--max must be a number")
			}

			input := budget.CreateBudgetInput{
				UserID:       ownerID,
				CategoryName: categoryName,
				MaxAmount:    maxValue,
				Period:       entity.BudgetPeriod(period),
			}
			if input.StartDate, err = dateFlag("from", from); err != nil {
				return err
			}
			if input.EndDate, err = dateFlag("to", to); err != nil {
				return err
			}

			out, err := a.injector.UseCases.CreateBudget.Execute(cmd.Context(), input)
			if err != nil {
				return cliError(err)
			}

			printBudget(cmd.OutOrStdout(), out.Budget)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryName, "category", "", "expense category name")
	cmd.Flags().StringVar(&maxAmount, "max", "", "spending cap")
	cmd.Flags().StringVar(&period, "period", string(entity.BudgetPeriodMonthly), "weekly, monthly or yearly")
	cmd.Flags().StringVar(&from, "from", "", "window start (defaults to the current period)")
	cmd.Flags().StringVar(&to, "to", "", "window end (defaults to the current period)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}

func budgetShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a budget against actual spending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.GetBudget.Execute(cmd.Context(), budget.GetBudgetInput{
				BudgetID: id,
				UserID:   ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			printBudget(cmd.OutOrStdout(), out.Budget)
			return nil
		},
	}
}

func budgetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every budget with its status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.ListBudgets.Execute(cmd.Context(), budget.ListBudgetsInput{UserID: ownerID})
			if err != nil {
				return cliError(err)
			}

			if len(out.Budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No budgets found.")
				return nil
			}
			for _, b := range out.Budgets {
				printBudget(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}

func budgetUpdateCmd(a *app) *cobra.Command {
	var categoryName, maxAmount, period, from, to string

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change the cap, category, period or window of a budget",
		Example: `  ledger budget update <id> --owner ana@example.com --max 650`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			input := budget.UpdateBudgetInput{
				BudgetID: id,
				UserID:   ownerID,
			}
			if cmd.Flags().Changed("category") {
				input.CategoryName = &categoryName
			}
			if cmd.Flags().Changed("period") {
				p := entity.BudgetPeriod(period)
				input.Period = &p
			}
			if input.MaxAmount, err = decimalFlag("max", maxAmount); err != nil {
				return err
			}
			if input.StartDate, err = dateFlag("from", from); err != nil {
				return err
			}
			if input.EndDate, err = dateFlag("to", to); err != nil {
				return err
			}

			out, err := a.injector.UseCases.UpdateBudget.Execute(cmd.Context(), input)
			if err != nil {
				return cliError(err)
			}

			printBudget(cmd.OutOrStdout(), out.Budget)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryName, "category", "", "new expense category name")
	cmd.Flags().StringVar(&maxAmount, "max", "", "new spending cap")
	cmd.Flags().StringVar(&period, "period", "", "new period; without --from/--to the window moves to the current one")
	cmd.Flags().StringVar(&from, "from", "", "new window start")
	cmd.Flags().StringVar(&to, "to", "", "new window end")

	return cmd
}

func budgetSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Total caps, spending and remainder across budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.BudgetSummary.Execute(cmd.Context(), budget.BudgetSummaryInput{UserID: ownerID})
			if err != nil {
				return cliError(err)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Budgets\t%d\n", out.TotalBudgets)
			fmt.Fprintf(tw, "Allocated\t%s\n", out.TotalAllocated.StringFixed(2))
			fmt.Fprintf(tw, "Spent\t%s\n", out.TotalSpent.StringFixed(2))
			fmt.Fprintf(tw, "Remaining\t%s\n", out.TotalRemaining.StringFixed(2))
			return tw.Flush()
		},
	}
}

func budgetDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			err = a.injector.UseCases.DeleteBudget.Execute(cmd.Context(), budget.DeleteBudgetInput{
				BudgetID: id,
				UserID:   ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted budget %s\n", id)
			return nil
		},
	}
}
