package entity

import (
	"sort"
	"time"
)

// PeriodKind selects the sub-period of a periodic summary
type PeriodKind string

// Period kinds
const (
	PeriodAnnual  PeriodKind = "annual"  // sub-period is the month, 1-12
	PeriodMonthly PeriodKind = "monthly" // sub-period is the day of month
)

// CategorySummary is the sum of one category's transactions
type CategorySummary struct {
	CategoryName string `csv:"category_name"`
	Amount       int64  `csv:"amount"`
}

// PeriodSummary aggregates one sub-period (a month of a year or a day of a month)
type PeriodSummary struct {
	PeriodNumber int
	TotalAmount  int64
	Summary      []CategorySummary
}

// PeriodRow is one flattened (period, category) record used by CSV export
type PeriodRow struct {
	PeriodNumber int    `csv:"period_number"`
	TotalAmount  int64  `csv:"total_amount"`
	CategoryName string `csv:"category_name"`
	Amount       int64  `csv:"amount"`
}

// SortCategorySummaries orders by amount desc then name asc
func SortCategorySummaries(items []CategorySummary) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].CategoryName < items[j].CategoryName
	})
}

// SummarizeByCategory groups transactions by category name
func SummarizeByCategory(transactions []*Transaction) []CategorySummary {
	sums := make(map[string]int64)
	for _, t := range transactions {
		sums[t.CategoryName] += t.Amount
	}

	items := make([]CategorySummary, 0, len(sums))
	for name, amount := range sums {
		items = append(items, CategorySummary{CategoryName: name, Amount: amount})
	}
	SortCategorySummaries(items)
	return items
}

// SummarizeByPeriod groups transactions by sub-period then by category
// Empty sub-periods are omitted; entries are in ascending period order
func SummarizeByPeriod(transactions []*Transaction, kind PeriodKind) []PeriodSummary {
	buckets := make(map[int][]*Transaction)
	for _, t := range transactions {
		n := periodNumber(t.Date, kind)
		buckets[n] = append(buckets[n], t)
	}

	numbers := make([]int, 0, len(buckets))
	for n := range buckets {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	result := make([]PeriodSummary, 0, len(numbers))
	for _, n := range numbers {
		items := SummarizeByCategory(buckets[n])
		var total int64
		for _, item := range items {
			total += item.Amount
		}
		result = append(result, PeriodSummary{PeriodNumber: n, TotalAmount: total, Summary: items})
	}
	return result
}

func periodNumber(t time.Time, kind PeriodKind) int {
	t = t.UTC()
	if kind == PeriodMonthly {
		return t.Day()
	}
	return int(t.Month())
}

// FlattenPeriodSummaries emits one row per (period, category) keeping the input order
func FlattenPeriodSummaries(summaries []PeriodSummary) []PeriodRow {
	var rows []PeriodRow
	for _, s := range summaries {
		for _, item := range s.Summary {
			rows = append(rows, PeriodRow{
				PeriodNumber: s.PeriodNumber,
				TotalAmount:  s.TotalAmount,
				CategoryName: item.CategoryName,
				Amount:       item.Amount,
			})
		}
	}
	return rows
}

// DensePeriodTotals returns the totals of sub-periods 1..n with missing ones set to zero
func DensePeriodTotals(summaries []PeriodSummary, n int) []int64 {
	totals := make([]int64, n)
	for _, s := range summaries {
		if s.PeriodNumber >= 1 && s.PeriodNumber <= n {
			totals[s.PeriodNumber-1] = s.TotalAmount
		}
	}
	return totals
}

// DaysInMonth returns the number of days of the month, leap years included
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PeriodLength is the number of sub-periods of an annual or monthly summary
func PeriodLength(kind PeriodKind, year int, month time.Month) int {
	if kind == PeriodMonthly {
		return DaysInMonth(year, month)
	}
	return 12
}
