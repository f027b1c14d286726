package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/auth"
)

func userCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage ledger owners",
	}

	cmd.AddCommand(userCreateCmd(a))
	cmd.AddCommand(userShowCmd(a))

	return cmd
}

func userCreateCmd(a *app) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Example: `  ledger user create --email ana@example.com --name Ana --password s3cret-pass`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.injector.UseCases.Register.Execute(cmd.Context(), auth.RegisterUserInput{
				Email:    email,
				Name:     name,
				Password: password,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s <%s> (%s)\n", out.User.Name, out.User.Email, out.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func userShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile of --owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.GetProfile.Execute(cmd.Context(), auth.GetProfileInput{UserID: ownerID})
			if err != nil {
				return cliError(err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID:        %s\n", out.User.ID)
			fmt.Fprintf(w, "Name:      %s\n", out.User.Name)
			fmt.Fprintf(w, "Email:     %s\n", out.User.Email)
			fmt.Fprintf(w, "Reminders: %t\n", out.User.RecurringReminders)
			return nil
		},
	}
}
