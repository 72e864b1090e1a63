package usecase

import (
	"context"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// PeriodicInput selects an annual or monthly report
type PeriodicInput struct {
	UserID     uint64
	Kind       entity.TransactionKind
	Period     entity.PeriodKind
	Year       int
	Month      time.Month // required for monthly reports
	Categories []entity.CategoryRef
}

// ReportUseCase defines summaries, charts and exports
type ReportUseCase interface {
	// Periodic groups by sub-period then category; empty sub-periods are omitted
	Periodic(ctx context.Context, input PeriodicInput) ([]entity.PeriodSummary, error)

	// SummaryChart renders the category summary
	SummaryChart(ctx context.Context, userID uint64, kind entity.TransactionKind, query QueryParams, chartType entity.ChartType) ([]byte, error)

	// PeriodicChart renders the zero-filled periodic totals
	PeriodicChart(ctx context.Context, input PeriodicInput) ([]byte, error)

	// PublishPeriodic writes the flattened report to the configured spreadsheet
	PublishPeriodic(ctx context.Context, input PeriodicInput) (string, error)
}
