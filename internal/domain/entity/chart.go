package entity

import (
	"fmt"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

// ChartType selects how a series is drawn
type ChartType string

// Chart types
const (
	ChartPie     ChartType = "pie"
	ChartBarplot ChartType = "barplot"
)

// ParseChartType validates a chart type, defaulting to pie
func ParseChartType(s string) (ChartType, error) {
	switch ChartType(s) {
	case "":
		return ChartPie, nil
	case ChartPie, ChartBarplot:
		return ChartType(s), nil
	default:
		return "", errs.NewValidationError("chart_type", fmt.Sprintf("unknown value %q", s), errs.ErrInvalidRequest)
	}
}

// Chart RPC methods
const (
	ChartMethodCategory = "category_chart" // one value per category, pie or barplot
	ChartMethodPeriod   = "period_chart"   // dense per sub-period totals, always barplot
)

// ChartRequest is a numeric series to render remotely
type ChartRequest struct {
	Method    string
	Values    []int64
	Labels    []string
	ChartType ChartType
	Title     string
}

// Validate checks that values and labels line up
func (r ChartRequest) Validate() error {
	if len(r.Values) != len(r.Labels) {
		return errs.NewValidationError("labels", "must match values", errs.ErrInvalidRequest)
	}
	if len(r.Values) == 0 {
		return errs.ErrEmptyChart
	}
	return nil
}

// NewCategoryChartRequest builds a chart request from a category summary
func NewCategoryChartRequest(items []CategorySummary, chartType ChartType, title string) ChartRequest {
	req := ChartRequest{
		Method:    ChartMethodCategory,
		Values:    make([]int64, 0, len(items)),
		Labels:    make([]string, 0, len(items)),
		ChartType: chartType,
		Title:     title,
	}
	for _, item := range items {
		req.Values = append(req.Values, item.Amount)
		req.Labels = append(req.Labels, item.CategoryName)
	}
	return req
}

// NewPeriodChartRequest builds a zero-filled bar chart request over every sub-period
func NewPeriodChartRequest(summaries []PeriodSummary, n int, title string) ChartRequest {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return ChartRequest{
		Method:    ChartMethodPeriod,
		Values:    DensePeriodTotals(summaries, n),
		Labels:    labels,
		ChartType: ChartBarplot,
		Title:     title,
	}
}
