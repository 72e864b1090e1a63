package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(category string, amount int64, when time.Time) *Transaction {
	return &Transaction{CategoryName: category, Amount: amount, Date: when}
}

func TestSummarizeByCategory(t *testing.T) {
	day := date(2024, 5, 1)
	items := SummarizeByCategory([]*Transaction{
		tx("Food", 40, day),
		tx("Clothes", 70, day),
		tx("Food", 30, day),
		tx("Books", 70, day),
		tx("Taxi", 5, day),
	})

	assert.Equal(t, []CategorySummary{
		{CategoryName: "Books", Amount: 70},
		{CategoryName: "Clothes", Amount: 70},
		{CategoryName: "Food", Amount: 70},
		{CategoryName: "Taxi", Amount: 5},
	}, items)

	assert.Empty(t, SummarizeByCategory(nil))
}

func TestSummarizeByPeriod(t *testing.T) {
	t.Run("Monthly groups by day with categories by amount", func(t *testing.T) {
		summaries := SummarizeByPeriod([]*Transaction{
			tx("Clothes", 30, date(2024, 5, 1).Add(10*time.Hour)),
			tx("Food", 70, date(2024, 5, 1)),
		}, PeriodMonthly)

		require.Len(t, summaries, 1)
		assert.Equal(t, PeriodSummary{
			PeriodNumber: 1,
			TotalAmount:  100,
			Summary: []CategorySummary{
				{CategoryName: "Food", Amount: 70},
				{CategoryName: "Clothes", Amount: 30},
			},
		}, summaries[0])
	})

	t.Run("Annual groups by month and omits empty months", func(t *testing.T) {
		summaries := SummarizeByPeriod([]*Transaction{
			tx("Rent", 500, date(2024, 11, 3)),
			tx("Food", 20, date(2024, 2, 29)),
			tx("Food", 15, date(2024, 2, 1)),
		}, PeriodAnnual)

		require.Len(t, summaries, 2)
		assert.Equal(t, 2, summaries[0].PeriodNumber)
		assert.Equal(t, int64(35), summaries[0].TotalAmount)
		assert.Equal(t, 11, summaries[1].PeriodNumber)
		assert.Equal(t, int64(500), summaries[1].TotalAmount)
	})
}

func TestFlattenPeriodSummaries(t *testing.T) {
	rows := FlattenPeriodSummaries([]PeriodSummary{
		{PeriodNumber: 1, TotalAmount: 100, Summary: []CategorySummary{{"Food", 70}, {"Clothes", 30}}},
		{PeriodNumber: 4, TotalAmount: 9, Summary: []CategorySummary{{"Taxi", 9}}},
	})

	assert.Equal(t, []PeriodRow{
		{PeriodNumber: 1, TotalAmount: 100, CategoryName: "Food", Amount: 70},
		{PeriodNumber: 1, TotalAmount: 100, CategoryName: "Clothes", Amount: 30},
		{PeriodNumber: 4, TotalAmount: 9, CategoryName: "Taxi", Amount: 9},
	}, rows)
	assert.Empty(t, FlattenPeriodSummaries(nil))
}

func TestDensePeriodTotals(t *testing.T) {
	totals := DensePeriodTotals([]PeriodSummary{
		{PeriodNumber: 2, TotalAmount: 10},
		{PeriodNumber: 12, TotalAmount: 7},
		{PeriodNumber: 13, TotalAmount: 99},
	}, 12)

	assert.Equal(t, []int64{0, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7}, totals)
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, DaysInMonth(tc.year, tc.month), "%d-%02d", tc.year, tc.month)
	}

	assert.Equal(t, 12, PeriodLength(PeriodAnnual, 2024, 0))
	assert.Equal(t, 29, PeriodLength(PeriodMonthly, 2024, time.February))
}
