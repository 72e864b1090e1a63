package entity

import (
	"testing"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRequests(t *testing.T) {
	t.Run("Category chart keeps summary order", func(t *testing.T) {
		req := NewCategoryChartRequest([]CategorySummary{{"Food", 70}, {"Clothes", 30}}, ChartBarplot, "Spendings")

		assert.Equal(t, ChartMethodCategory, req.Method)
		assert.Equal(t, []int64{70, 30}, req.Values)
		assert.Equal(t, []string{"Food", "Clothes"}, req.Labels)
		require.NoError(t, req.Validate())
	})

	t.Run("Period chart is zero-filled", func(t *testing.T) {
		req := NewPeriodChartRequest([]PeriodSummary{{PeriodNumber: 29, TotalAmount: 5}}, 29, "February")

		assert.Len(t, req.Values, 29)
		assert.Equal(t, int64(5), req.Values[28])
		assert.Equal(t, "29", req.Labels[28])
		assert.Equal(t, ChartBarplot, req.ChartType)
	})

	t.Run("Empty and mismatched series are rejected", func(t *testing.T) {
		assert.ErrorIs(t, ChartRequest{}.Validate(), errs.ErrEmptyChart)
		assert.ErrorIs(t, ChartRequest{Values: []int64{1}}.Validate(), errs.ErrInvalidRequest)
	})
}

func TestParseChartType(t *testing.T) {
	chartType, err := ParseChartType("")
	require.NoError(t, err)
	assert.Equal(t, ChartPie, chartType)

	_, err = ParseChartType("scatter")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
