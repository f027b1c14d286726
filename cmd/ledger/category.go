package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/category"
)

func categoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "List, create, rename and delete categories",
	}

	cmd.AddCommand(categoryListCmd(a))
	cmd.AddCommand(categoryAddCmd(a))
	cmd.AddCommand(categoryRenameCmd(a))
	cmd.AddCommand(categoryDeleteCmd(a))

	return cmd
}

func categoryListCmd(a *app) *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the categories of --owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.ListCategories.Execute(cmd.Context(), category.ListCategoriesInput{
				OwnerID: ownerID,
				Type:    categoryType,
			})
			if err != nil {
				return cliError(err)
			}

			if len(out.Categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
				return nil
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "NAME\tTYPE\tID")
			for _, c := range out.Categories {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Type, c.ID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "", "only list income or expense categories")

	return cmd
}

func categoryAddCmd(a *app) *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.owner(cmd.Context())
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.CreateCategory.Execute(cmd.Context(), category.CreateCategoryInput{
				OwnerID: ownerID,
				Name:    args[0],
				Type:    categoryType,
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s category %q (%s)\n", out.Category.Type, out.Category.Name, out.Category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "income or expense")

	return cmd
}

func categoryRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.UpdateCategory.Execute(cmd.Context(), category.UpdateCategoryInput{
				CategoryID: id,
				OwnerID:    ownerID,
				Name:       args[1],
			})
			if err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s category to %q (%s)\n", out.Category.Type, out.Category.Name, out.Category.ID)
			return nil
		},
	}
}

func categoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category nothing is filed under",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, id, err := a.ownerAndID(cmd, args[0])
			if err != nil {
				return err
			}

			if _, err := a.injector.UseCases.DeleteCategory.Execute(cmd.Context(), category.DeleteCategoryInput{
				CategoryID: id,
				OwnerID:    ownerID,
			}); err != nil {
				return cliError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", id)
			return nil
		},
	}
}
