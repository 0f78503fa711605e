package cli

import (
	"fmt"

	"github.com/SscSPs/uk_books_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenSQL(cmd.Context(), rt.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			return database.MigrateUp(db, rt.cfg.MigrationsPath, rt.logger)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenSQL(cmd.Context(), rt.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			return database.MigrateDown(db, rt.cfg.MigrationsPath, steps, rt.logger)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenSQL(cmd.Context(), rt.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			v, dirty, err := database.MigrationVersion(db, rt.cfg.MigrationsPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
			return nil
		},
	}

	cmd.AddCommand(up, down, ver)
	return cmd
}
