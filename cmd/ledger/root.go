package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finanzas-pareja/ledger/config"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/infra/db"
	"github.com/finanzas-pareja/ledger/internal/infra/dependency"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	database *db.Database
	injector *dependency.Injector
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Shared income and expense ledger for two",
		Long: `ledger records income and expense movements, recurring movements awaiting
approval and per-category budgets, and prints summaries of them.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("database-driver", "", "database driver: postgres or sqlite (env DATABASE_DRIVER)")
	flags.String("database-url", "", "PostgreSQL DSN or SQLite file path (env DATABASE_URL)")
	flags.String("owner", "", "email of the ledger owner (env LEDGER_OWNER)")
	flags.String("reject-policy", "", "what rejecting a recurring movement does: soft or hard (env RECURRING_REJECT_POLICY)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindEnv("owner", "LEDGER_OWNER")
	_ = a.v.BindEnv("reject-policy", "RECURRING_REJECT_POLICY")

	rootCmd.AddCommand(userCmd(a))
	rootCmd.AddCommand(categoryCmd(a))
	rootCmd.AddCommand(movementCmd(a))
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(recurringCmd(a))
	rootCmd.AddCommand(budgetCmd(a))

	return rootCmd
}

// setup loads configuration, opens and migrates the database and wires the use cases.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg := config.Load()
	if driver := a.v.GetString("database-driver"); driver != "" {
		cfg.Database.Driver = strings.ToLower(driver)
	}
	if url := a.v.GetString("database-url"); url != "" {
		cfg.Database.URL = url
	}
	if policy := a.v.GetString("reject-policy"); policy != "" {
		cfg.Recurring.RejectPolicy = strings.ToLower(policy)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Open(&cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return err
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{})
	if err != nil {
		_ = database.Close()
		return err
	}

	a.database = database
	a.injector = injector
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.database == nil {
		return nil
	}
	return a.database.Close()
}

// owner resolves --owner to a user id.
func (a *app) owner(ctx context.Context) (uuid.UUID, error) {
	email := strings.ToLower(strings.TrimSpace(a.v.GetString("owner")))
	if email == "" {
		return uuid.Nil, errors.New("--owner is required")
	}

	user, err := a.injector.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return uuid.Nil, fmt.Errorf("no user with email %s; create one with 'ledger user create'", email)
		}
		return uuid.Nil, err
	}
	return user.ID, nil
}
