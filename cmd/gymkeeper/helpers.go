package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gymkeeper/internal/cli"
	"gymkeeper/internal/common"
	"gymkeeper/internal/config"
	"gymkeeper/internal/currency"
	"gymkeeper/internal/model"
	"gymkeeper/internal/storage"
	"gymkeeper/internal/store"
)

// initStore opens the database, migrates it, and hydrates the record store.
func initStore(ctx context.Context) (*store.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	backend, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open the gym database", err)
	}

	if err := backend.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s, err := store.Open(ctx, backend)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return s, nil
}

// parseAsOf resolves an --as-of flag value, defaulting to today.
func parseAsOf(value string) (model.Date, error) {
	if value == "" {
		return model.DateOf(time.Now()), nil
	}
	return model.ParseDate(value)
}

// parseMonthFlag resolves a --month flag value, defaulting to the current
// month.
func parseMonthFlag(value string) (model.MonthKey, error) {
	if value == "" {
		return model.MonthOf(time.Now()), nil
	}
	return model.ParseMonth(value)
}

// confirm prompts before a destructive operation unless --yes was given.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	return cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
}

// money renders an amount with the configured currency symbol.
func money(s *store.Store, amount float64) string {
	return currency.Format(s.Settings.CurrencySymbol, amount)
}
