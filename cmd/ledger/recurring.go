package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/recurring"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

func recurringCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Review recurring movements awaiting approval",
	}

	cmd.AddCommand(recurringPendingCmd(a))
	cmd.AddCommand(recurringApproveCmd(a))
	cmd.AddCommand(recurringRejectCmd(a))

	return cmd
}

func recurringPendingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending recurring movements, earliest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.ListPending.Execute(cmd.Context(), recurring.ListPendingInput{UserID: ownerID})
			if err != nil {
				return cliError(err)
			}

			if len(out.Movements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing pending.")
				return nil
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tSCHEDULED\tFREQUENCY\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, mc := range out.Movements {
				m := mc.Movement
				scheduled, frequency, categoryName := "", "", ""
				if m.ScheduledDate != nil {
					scheduled = m.ScheduledDate.Format(valueobject.DateLayout)
				}
				if m.Frequency != nil {
					frequency = string(*m.Frequency)
				}
				if mc.Category != nil {
					categoryName = mc.Category.Name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, scheduled, frequency, m.Type, categoryName, m.Amount.StringFixed(2), m.Description)
			}
			return tw.Flush()
		},
	}
}

func recurringApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending recurring movement, recording it dated today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.Approve.Execute(cmd.Context(), recurring.ApproveRecurringInput{
				MovementID: id,
				UserID:     ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			m := out.Movement
			fmt.Fprintf(cmd.OutOrStdout(), "Approved; recorded %s %s on %s (%s)\n",
				m.Type, m.Amount.StringFixed(2), m.Date.Format(valueobject.DateLayout), m.ID)
			return nil
		},
	}
}

func recurringRejectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending recurring movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			err = a.injector.UseCases.Reject.Execute(cmd.Context(), recurring.RejectRecurringInput{
				MovementID: id,
				UserID:     ownerID,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rejected %s\n", id)
			return nil
		},
	}
}

func (a *app) ownerAndID(cmd *cobra.Command, raw string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := a.owner(cmd.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid id %q", raw)
	}
	return ownerID, id, nil
}
