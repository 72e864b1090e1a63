package dto

import "github.com/csmqbusy/personal-finances/internal/domain/entity"

// CategorySummaryResponse represents the total of one category
type CategorySummaryResponse struct {
	CategoryName string `json:"category_name"`
	Amount       int64  `json:"amount"`
}

// PeriodSummaryResponse represents one sub-period of a periodic summary
type PeriodSummaryResponse struct {
	PeriodNumber int                       `json:"period_number"`
	TotalAmount  int64                     `json:"total_amount"`
	Summary      []CategorySummaryResponse `json:"summary"`
}

// PublishResponse represents the spreadsheet range written by an export
type PublishResponse struct {
	Range string `json:"range"`
}

// NewCategorySummaryResponses maps category totals
func NewCategorySummaryResponses(items []entity.CategorySummary) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CategorySummaryResponse{CategoryName: item.CategoryName, Amount: item.Amount})
	}
	return out
}

// NewPeriodSummaryResponses maps periodic summaries
func NewPeriodSummaryResponses(summaries []entity.PeriodSummary) []PeriodSummaryResponse {
	out := make([]PeriodSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, PeriodSummaryResponse{
			PeriodNumber: s.PeriodNumber,
			TotalAmount:  s.TotalAmount,
			Summary:      NewCategorySummaryResponses(s.Summary),
		})
	}
	return out
}
