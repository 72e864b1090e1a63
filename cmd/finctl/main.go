package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/csmqbusy/personal-finances/internal/infrastructure/config"
)

var (
	envName string
	rootCmd = &cobra.Command{
		Use:           "finctl",
		Short:         "Personal finances administration",
		Long:          "finctl migrates the database schema and prints periodic reports without going through the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "configuration environment (default: PF_ENV or development)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reportCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration for the selected environment
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if envName != "" {
		cfg, err = config.LoadFrom(envName, config.ConfigPaths...)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
