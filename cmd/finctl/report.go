package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/csmqbusy/personal-finances/internal/app"
	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/export"
	timeProvider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
)

type reportOptions struct {
	username string
	kind     string
	year     int
	month    int
	csv      bool
	today    string
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print periodic summaries",
	}
	cmd.AddCommand(periodCmd(entity.PeriodAnnual))
	cmd.AddCommand(periodCmd(entity.PeriodMonthly))
	return cmd
}

func periodCmd(period entity.PeriodKind) *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   string(period),
		Short: fmt.Sprintf("Print the %s summary of a user", period),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, period, opts)
		},
	}

	cmd.Flags().StringVar(&opts.username, "user", "", "username (required)")
	cmd.Flags().StringVar(&opts.kind, "kind", string(entity.KindSpending), "spending or income")
	cmd.Flags().IntVar(&opts.year, "year", 0, "year (default: current year)")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "print flattened CSV rows instead of JSON")
	cmd.Flags().StringVar(&opts.today, "today", "", "override today's date, YYYY-MM-DD")
	if period == entity.PeriodMonthly {
		cmd.Flags().IntVar(&opts.month, "month", 0, "month 1-12 (default: current month)")
	}
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runReport(cmd *cobra.Command, period entity.PeriodKind, opts *reportOptions) error {
	kind, err := entity.ParseTransactionKind(opts.kind)
	if err != nil {
		return err
	}

	var tp coreport.TimeProvider = timeProvider.NewRealTimeProvider()
	if opts.today != "" {
		today, err := time.Parse(time.DateOnly, opts.today)
		if err != nil {
			return fmt.Errorf("invalid --today %q: %w", opts.today, err)
		}
		tp = timeProvider.NewFixedTimeProvider(today)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	appLogger := app.NewLogger(cfg)
	defer appLogger.Flush()

	ctx := cmd.Context()
	manager, err := app.OpenDatabase(ctx, cfg, tp, appLogger)
	if err != nil {
		return err
	}
	defer manager.Close()

	uow := manager.CreateUnitOfWork()
	user, err := uow.GetUserRepository(ctx).GetByUsername(ctx, opts.username)
	if err != nil {
		return fmt.Errorf("user %q: %w", opts.username, err)
	}

	// no charts or sheets from the CLI
	uc := app.NewUseCases(cfg, uow, nil, nil, tp, appLogger)

	now := tp.Now()
	input := usecase.PeriodicInput{
		UserID: user.ID,
		Kind:   kind,
		Period: period,
		Year:   now.Year(),
	}
	if opts.year != 0 {
		input.Year = opts.year
	}
	if period == entity.PeriodMonthly {
		input.Month = now.Month()
		if opts.month != 0 {
			input.Month = time.Month(opts.month)
		}
	}

	summaries, err := uc.Reports.Periodic(ctx, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.csv {
		return export.WritePeriodRows(out, entity.FlattenPeriodSummaries(summaries))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewPeriodSummaryResponses(summaries))
}
