package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			slog.Info("database is up to date")
			return nil
		},
	}
}
