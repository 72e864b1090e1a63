package service

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// ChartRenderer turns a numeric series into a PNG image
type ChartRenderer interface {
	// Render returns the PNG bytes of the chart
	//
	// Possible errors:
	// - ErrChartUnavailable: If the renderer did not answer in time or failed
	// - ErrEmptyChart: If there is nothing to plot
	Render(ctx context.Context, req entity.ChartRequest) ([]byte, error)
}
