package dto

import (
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// DateLayout is the wire format of goal dates
const DateLayout = time.DateOnly

// CreateGoalRequest represents the API request for creating a saving goal
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	TargetAmount  int64   `json:"target_amount" binding:"required"`
	CurrentAmount int64   `json:"current_amount"`
	StartDate     *string `json:"start_date"`
	TargetDate    string  `json:"target_date" binding:"required"`
}

// UpdateGoalRequest represents a partial goal update
type UpdateGoalRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	TargetAmount  *int64  `json:"target_amount"`
	CurrentAmount *int64  `json:"current_amount"`
	StartDate     *string `json:"start_date"`
	TargetDate    *string `json:"target_date"`
}

// PaymentRequest represents a possibly negative payment towards a goal
type PaymentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// GoalResponse represents a saving goal
type GoalResponse struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	TargetAmount  int64   `json:"target_amount"`
	CurrentAmount int64   `json:"current_amount"`
	StartDate     string  `json:"start_date"`
	TargetDate    string  `json:"target_date"`
	EndDate       *string `json:"end_date"`
	Status        string  `json:"status"`
}

// NewGoalResponse maps a goal entity
func NewGoalResponse(g *entity.SavingGoal) GoalResponse {
	resp := GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		StartDate:     g.StartDate.Format(DateLayout),
		TargetDate:    g.TargetDate.Format(DateLayout),
		Status:        string(g.Status),
	}
	if g.EndDate != nil {
		end := g.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// ProgressResponse represents the computed progress of a goal
type ProgressResponse struct {
	CurrentAmount        int64   `json:"current_amount"`
	TargetAmount         int64   `json:"target_amount"`
	RestAmount           int64   `json:"rest_amount"`
	PercentageProgress   float64 `json:"percentage_progress"`
	DaysLeft             int     `json:"days_left"`
	ExpectedDailyPayment int64   `json:"expected_daily_payment"`
}

// NewProgressResponse maps a goal progress
func NewProgressResponse(p entity.GoalProgress) ProgressResponse {
	return ProgressResponse{
		CurrentAmount:        p.CurrentAmount,
		TargetAmount:         p.TargetAmount,
		RestAmount:           p.RestAmount,
		PercentageProgress:   p.PercentageProgress,
		DaysLeft:             p.DaysLeft,
		ExpectedDailyPayment: p.ExpectedDailyPayment,
	}
}

