package report

import (
	"context"
	"fmt"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
)

// UseCase builds periodic summaries, charts and spreadsheet exports on top of transaction queries
type UseCase struct {
	transactions usecase.TransactionUseCase
	charts       service.ChartRenderer
	publisher    service.SummaryPublisher // nil when no spreadsheet is configured
	logger       coreport.Logger
}

// NewUseCase creates a new report UseCase
func NewUseCase(
	transactions usecase.TransactionUseCase,
	charts service.ChartRenderer,
	publisher service.SummaryPublisher,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		transactions: transactions,
		charts:       charts,
		publisher:    publisher,
		logger:       logger,
	}
}

// Periodic groups the transactions of a year by month, or of a month by day
func (u *UseCase) Periodic(ctx context.Context, input usecase.PeriodicInput) ([]entity.PeriodSummary, error) {
	from, to, err := PeriodBounds(input)
	if err != nil {
		return nil, err
	}

	rows, err := u.transactions.ListAll(ctx, input.UserID, input.Kind, usecase.QueryParams{
		Categories: input.Categories,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, err
	}

	return entity.SummarizeByPeriod(rows, input.Period), nil
}

// SummaryChart renders the category summary as a pie or bar chart
func (u *UseCase) SummaryChart(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	query usecase.QueryParams,
	chartType entity.ChartType,
) ([]byte, error) {
	items, err := u.transactions.Summary(ctx, userID, kind, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.ErrEmptyChart
	}

	return u.render(ctx, userID, entity.NewCategoryChartRequest(items, chartType, kindTitle(kind)+" by category"))
}

// PeriodicChart renders the zero-filled totals of every sub-period as a bar chart
func (u *UseCase) PeriodicChart(ctx context.Context, input usecase.PeriodicInput) ([]byte, error) {
	summaries, err := u.Periodic(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, errs.ErrEmptyChart
	}

	n := entity.PeriodLength(input.Period, input.Year, input.Month)
	return u.render(ctx, input.UserID, entity.NewPeriodChartRequest(summaries, n, periodTitle(input)))
}

// PublishPeriodic writes the flattened periodic summary to the configured spreadsheet
func (u *UseCase) PublishPeriodic(ctx context.Context, input usecase.PeriodicInput) (string, error) {
	if u.publisher == nil {
		return "", errs.ErrExportUnavailable
	}

	summaries, err := u.Periodic(ctx, input)
	if err != nil {
		return "", err
	}

	updated, err := u.publisher.Publish(ctx, periodTitle(input), entity.FlattenPeriodSummaries(summaries))
	if err != nil {
		u.logger.Error("Failed to publish summary", map[string]any{
			"userId": input.UserID,
			"kind":   input.Kind,
			"period": input.Period,
			"error":  err.Error(),
		})
		return "", err
	}

	u.logger.Info("Summary published", map[string]any{
		"userId": input.UserID,
		"kind":   input.Kind,
		"range":  updated,
	})
	return updated, nil
}

func (u *UseCase) render(ctx context.Context, userID uint64, req entity.ChartRequest) ([]byte, error) {
	png, err := u.charts.Render(ctx, req)
	if err != nil {
		u.logger.Error("Chart rendering failed", map[string]any{
			"userId": userID,
			"method": req.Method,
			"error":  err.Error(),
		})
		return nil, err
	}
	return png, nil
}

// PeriodBounds returns the inclusive UTC datetime range covered by a periodic report
func PeriodBounds(input usecase.PeriodicInput) (time.Time, time.Time, error) {
	if input.Year < 1 || input.Year > 9999 {
		return time.Time{}, time.Time{}, errs.NewValidationError("year", "out of range", errs.ErrInvalidRequest)
	}

	var from, next time.Time
	switch input.Period {
	case entity.PeriodAnnual:
		from = time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		next = from.AddDate(1, 0, 0)
	case entity.PeriodMonthly:
		if input.Month < time.January || input.Month > time.December {
			return time.Time{}, time.Time{}, errs.NewValidationError("month", "must be between 1 and 12", errs.ErrInvalidRequest)
		}
		from = time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
		next = from.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}, errs.NewValidationError("period", "must be annual or monthly", errs.ErrInvalidRequest)
	}

	return from, next.Add(-time.Microsecond), nil
}

func kindTitle(kind entity.TransactionKind) string {
	if kind == entity.KindIncome {
		return "Incomes"
	}
	return "Spendings"
}

func periodTitle(input usecase.PeriodicInput) string {
	if input.Period == entity.PeriodMonthly {
		return fmt.Sprintf("%s %04d-%02d", kindTitle(input.Kind), input.Year, int(input.Month))
	}
	return fmt.Sprintf("%s %04d", kindTitle(input.Kind), input.Year)
}
