package service

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// SummaryPublisher writes flattened period rows to an external spreadsheet
type SummaryPublisher interface {
	// Publish replaces the sheet content and returns the updated range
	//
	// Possible errors:
	// - ErrExportUnavailable: If no spreadsheet is configured
	Publish(ctx context.Context, sheet string, rows []entity.PeriodRow) (string, error)
}
