package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csmqbusy/personal-finances/internal/app"
	timeProvider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  runMigrate,
	}
	cmd.Flags().Bool("status", false, "Show the current schema version without applying changes")
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Database.AutoMigrate = false

	appLogger := app.NewLogger(cfg)
	defer appLogger.Flush()

	ctx := cmd.Context()
	manager, err := app.OpenDatabase(ctx, cfg, timeProvider.NewRealTimeProvider(), appLogger)
	if err != nil {
		return err
	}
	defer manager.Close()

	if !status {
		if err := manager.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	version, err := manager.MigrationManager().GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %s\n", version)
	return nil
}
