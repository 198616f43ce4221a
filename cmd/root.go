package cmd

import (
	"fmt"
	"os"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/core/logger"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations manually.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		migrationDir, _ := cmd.Flags().GetString("dir")

		log := logger.NewLogger()
		defer log.Sync()

		if err := database.RunMigrations(migrationDir, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

// Execute dispatches subcommands. With no arguments the process continues
// into the HTTP server.
func Execute() {
	if len(os.Args) < 2 {
		return
	}

	rootCmd := &cobra.Command{
		Use:   "asset-manager",
		Short: "IT asset tracking service",
	}
	migrateCmd.Flags().String("dir", "migrations", "Directory containing the migration files")
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
