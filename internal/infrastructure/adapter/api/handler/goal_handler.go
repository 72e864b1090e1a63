package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
)

// GoalHandler handles saving goal requests
type GoalHandler struct {
	goals  usecase.GoalUseCase
	logger coreport.Logger
}

// NewGoalHandler creates a new goal handler instance
func NewGoalHandler(goals usecase.GoalUseCase, logger coreport.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, logger: logger}
}

// List handles GET /goals?status=&search=&sort=&page=&page_size=
func (h *GoalHandler) List(c *gin.Context) {
	page, size, err := parsePage(c)
	if err != nil {
		respondError(c, h.logger, "list_goals", err)
		return
	}

	result, err := h.goals.List(c.Request.Context(), usecase.ListGoalsInput{
		UserID:   middleware.UserID(c),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Sort:     query.SplitSortParam(c.QueryArray("sort")),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		respondError(c, h.logger, "list_goals", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(result, dto.NewGoalResponse))
}

// Create handles POST /goals
func (h *GoalHandler) Create(c *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	targetDate, err := parseDate("target_date", req.TargetDate)
	if err != nil {
		respondError(c, h.logger, "create_goal", err)
		return
	}
	startDate, err := optionalDate("start_date", req.StartDate)
	if err != nil {
		respondError(c, h.logger, "create_goal", err)
		return
	}

	goal, err := h.goals.Create(c.Request.Context(), entity.NewGoalParams{
		UserID:        middleware.UserID(c),
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		StartDate:     startDate,
		TargetDate:    targetDate,
	})
	if err != nil {
		respondError(c, h.logger, "create_goal", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGoalResponse(goal))
}

// Get handles GET /goals/:id
func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := h.goals.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, h.logger, "get_goal", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalResponse(goal))
}

// Update handles PATCH /goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	startDate, err := optionalDate("start_date", req.StartDate)
	if err != nil {
		respondError(c, h.logger, "update_goal", err)
		return
	}
	targetDate, err := optionalDate("target_date", req.TargetDate)
	if err != nil {
		respondError(c, h.logger, "update_goal", err)
		return
	}

	goal, err := h.goals.Update(c.Request.Context(), middleware.UserID(c), id, entity.GoalUpdate{
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		StartDate:     startDate,
		TargetDate:    targetDate,
	})
	if err != nil {
		respondError(c, h.logger, "update_goal", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalResponse(goal))
}

// Delete handles DELETE /goals/:id
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, h.logger, "delete_goal", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Pay handles POST /goals/:id/payments; a negative amount withdraws
func (h *GoalHandler) Pay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.goals.ApplyPayment(c.Request.Context(), middleware.UserID(c), id, req.Amount)
	if err != nil {
		respondError(c, h.logger, "goal_payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalResponse(goal))
}

// Progress handles GET /goals/:id/progress
func (h *GoalHandler) Progress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	progress, err := h.goals.Progress(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, h.logger, "goal_progress", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProgressResponse(progress))
}
