package main

import (
	intconfig "tripmarket/internal/config"
	"tripmarket/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := intconfig.ConnectDB(cmd.Context(), env, logger)
		if err != nil {
			return err
		}
		defer intconfig.CloseDB()
		return storage.RunMigrations(cmd.Context(), db, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := intconfig.ConnectDB(cmd.Context(), env, logger)
		if err != nil {
			return err
		}
		defer intconfig.CloseDB()
		return storage.RollbackMigration(cmd.Context(), db, logger)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := intconfig.ConnectDB(cmd.Context(), env, logger)
		if err != nil {
			return err
		}
		defer intconfig.CloseDB()
		return storage.Status(cmd.Context(), db, logger)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}
