package repository

import (
	"context"
	"strings"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var goalSortColumns = map[string]string{
	"id":             "id",
	"name":           "name",
	"target_amount":  "target_amount",
	"current_amount": "current_amount",
	"start_date":     "start_date",
	"target_date":    "target_date",
	"status":         "status",
}

// GoalRepository stores saving goals using GORM
type GoalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGoalRepository creates a new GoalRepository instance
func NewGoalRepository(db *gorm.DB, logger coreport.Logger) *GoalRepository {
	return &GoalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func goalToModel(goal *entity.SavingGoal) model.SavingGoal {
	return model.SavingGoal{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		StartDate:     goal.StartDate.UTC(),
		TargetDate:    goal.TargetDate.UTC(),
		EndDate:       goal.EndDate,
		Status:        string(goal.Status),
	}
}

func goalToEntity(m *model.SavingGoal) *entity.SavingGoal {
	goal := &entity.SavingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		StartDate:     coreport.TruncateToDate(m.StartDate),
		TargetDate:    coreport.TruncateToDate(m.TargetDate),
		Status:        entity.GoalStatus(m.Status),
	}
	if m.EndDate != nil {
		end := coreport.TruncateToDate(*m.EndDate)
		goal.EndDate = &end
	}
	return goal
}

func (r *GoalRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err,
		errs.ErrGoalNotFound, errs.ErrConstraintViolation, fields)
}

// Create stores a new goal
func (r *GoalRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := goalToModel(goal)
	if err := r.db.WithContext(ctx).Omit("User").Create(&goalModel).Error; err != nil {
		return r.handleDatabaseError("creating saving goal", err, map[string]any{"user_id": goal.UserID})
	}
	goal.ID = goalModel.ID
	return nil
}

// GetByID retrieves a goal owned by the user
func (r *GoalRepository) GetByID(ctx context.Context, userID, id uint64) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoal
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&goalModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting saving goal", err, map[string]any{"user_id": userID, "id": id})
	}
	return goalToEntity(&goalModel), nil
}

// List returns the goals matching the filter
func (r *GoalRepository) List(ctx context.Context, filter entity.GoalFilter) ([]*entity.SavingGoal, error) {
	db := r.applyFilter(r.db.WithContext(ctx).Model(&model.SavingGoal{}), filter)
	for _, option := range filter.Sort {
		column, ok := goalSortColumns[option.Field]
		if !ok {
			continue
		}
		if option.Descending {
			db = db.Order(column + " DESC")
		} else {
			db = db.Order(column + " ASC")
		}
	}
	db = applyWindow(db.Order("id ASC"), filter.Window)

	var models []model.SavingGoal
	if err := db.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing saving goals", err, map[string]any{"user_id": filter.UserID})
	}

	goals := make([]*entity.SavingGoal, 0, len(models))
	for i := range models {
		goals = append(goals, goalToEntity(&models[i]))
	}
	return goals, nil
}

// Count returns how many goals match the filter, ignoring its window
func (r *GoalRepository) Count(ctx context.Context, filter entity.GoalFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&model.SavingGoal{}), filter).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting saving goals", err, map[string]any{"user_id": filter.UserID})
	}
	return count, nil
}

func (r *GoalRepository) applyFilter(db *gorm.DB, filter entity.GoalFilter) *gorm.DB {
	db = db.Where("user_id = ?", filter.UserID)
	if filter.Status != nil {
		db = r.whereStatus(db, *filter.Status, filter.Today)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		db = db.Where(`(LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\')`, pattern, pattern)
	}
	return db
}

// whereStatus matches the status a goal has as of today, not only the stored one
func (r *GoalRepository) whereStatus(db *gorm.DB, status entity.GoalStatus, today time.Time) *gorm.DB {
	if today.IsZero() {
		return db.Where("status = ?", string(status))
	}
	today = coreport.TruncateToDate(today)

	switch status {
	case entity.GoalOverdue:
		return db.Where("(status = ? OR (status = ? AND target_date < ?))",
			string(entity.GoalOverdue), string(entity.GoalInProgress), today)
	case entity.GoalInProgress:
		return db.Where("status = ? AND target_date >= ?", string(entity.GoalInProgress), today)
	default:
		return db.Where("status = ?", string(status))
	}
}

// Update persists every mutable field
func (r *GoalRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := goalToModel(goal)
	result := r.db.WithContext(ctx).Model(&model.SavingGoal{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]any{
			"name":           goalModel.Name,
			"description":    goalModel.Description,
			"target_amount":  goalModel.TargetAmount,
			"current_amount": goalModel.CurrentAmount,
			"start_date":     goalModel.StartDate,
			"target_date":    goalModel.TargetDate,
			"end_date":       goalModel.EndDate,
			"status":         goalModel.Status,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating saving goal", result.Error, map[string]any{"user_id": goal.UserID, "id": goal.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal owned by the user
func (r *GoalRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.SavingGoal{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting saving goal", result.Error, map[string]any{"user_id": userID, "id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGoalNotFound
	}
	return nil
}
