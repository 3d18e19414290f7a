package main

import (
	"fmt"

	"github.com/SscSPs/freight_desk/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		if err != nil {
			return err
		}
		if applied {
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Database already up to date.")
		}
		return nil
	},
}
