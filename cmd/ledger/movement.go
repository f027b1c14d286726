package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

func movementCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movement",
		Aliases: []string{"movements", "mv"},
		Short:   "Record, show, list and delete movements",
	}

	cmd.AddCommand(movementAddCmd(a))
	cmd.AddCommand(movementShowCmd(a))
	cmd.AddCommand(movementListCmd(a))
	cmd.AddCommand(movementDeleteCmd(a))

	return cmd
}

func movementAddCmd(a *app) *cobra.Command {
	var (
		date, categoryName, amount, movementType, description string
		frequency, scheduled, end                             string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a one-time or recurring movement",
		Example: `  ledger movement add --owner ana@example.com --date 2024-03-10 --category Supermercado --amount 150.50 --type expense
  ledger movement add --owner ana@example.com --date 2024-03-01 --category Arriendo --amount 800 --type expense --frequency monthly --scheduled 2024-04-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			parsedDate, err := valueobject.ParseDate(date)
			if err != nil {
				return fmt.Errorf("--date must be formatted as YYYY-MM-DD")
			}
			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("--amount must be a number")
			}

			input := movement.RecordMovementInput{
				UserID:       ownerID,
				Date:         parsedDate,
				CategoryName: categoryName,
				Amount:       parsedAmount,
				Type:         movementType,
				Description:  description,
			}

			if frequency != "" {
				scheduledDate := parsedDate
				if scheduled != "" {
					scheduledDate, err = valueobject.ParseDate(scheduled)
					if err != nil {
						return fmt.Errorf("--scheduled must be formatted as YYYY-MM-DD")
					}
				}
				endDate, err := dateFlag("end", end)
				if err != nil {
					return err
				}
				input.Recurrence = &entity.Recurrence{
					Frequency:     entity.Frequency(frequency),
					ScheduledDate: scheduledDate,
					EndDate:       endDate,
				}
			}

			out, err := a.injector.UseCases.RecordMovement.Execute(cmd.Context(), input)
			if err != nil {
				return cliError(err)
			}

			m := out.Movement.Movement
			if m.IsRecurring {
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded recurring %s %s pending approval (%s)\n", m.Type, m.Amount.StringFixed(2), m.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s in %s (%s)\n", m.Type, m.Amount.StringFixed(2), out.Movement.Category.Name, m.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "movement date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryName, "category", "", "category name, created on first use")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount")
	cmd.Flags().StringVar(&movementType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&frequency, "frequency", "", "make the movement recurring: daily, weekly, monthly or yearly")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "scheduled date of a recurring movement (defaults to --date)")
	cmd.Flags().StringVar(&end, "end", "", "last date a recurring movement stays pending")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func movementListCmd(a *app) *cobra.Command {
	var (
		movementType, categoryName, from, to, minAmount, maxAmount string
		includeRecurring                                           bool
		limit                                                      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the movement history, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			input := movement.ListMovementsInput{
				UserID:           ownerID,
				Type:             movementType,
				CategoryName:     categoryName,
				IncludeRecurring: includeRecurring,
				Limit:            limit,
			}
			if input.StartDate, err = dateFlag("from", from); err != nil {
				return err
			}
			if input.EndDate, err = dateFlag("to", to); err != nil {
				return err
			}
			if input.MinAmount, err = decimalFlag("min", minAmount); err != nil {
				return err
			}
			if input.MaxAmount, err = decimalFlag("max", maxAmount); err != nil {
				return err
			}

			out, err := a.injector.UseCases.ListMovements.Execute(cmd.Context(), input)
			if err != nil {
				return cliError(err)
			}

			return printMovements(cmd.OutOrStdout(), out.Movements)
		},
	}

	cmd.Flags().StringVar(&movementType, "type", "", "only income or expense")
	cmd.Flags().StringVar(&categoryName, "category", "", "only this category")
	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount")
	cmd.Flags().BoolVar(&includeRecurring, "include-recurring", false, "also list recurring templates")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of movements (0 for all)")

	return cmd
}

func movementShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.GetMovement.Execute(cmd.Context(), movement.GetMovementInput{
				MovementID: id,
				UserID:     ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			return printMovements(cmd.OutOrStdout(), []*entity.MovementWithCategory{out.Movement})
		},
	}
}

func movementDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid movement id %q", args[0])
			}

			err = a.injector.UseCases.DeleteMovement.Execute(cmd.Context(), movement.DeleteMovementInput{
				MovementID: id,
				UserID:     ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted movement %s\n", id)
			return nil
		},
	}
}
