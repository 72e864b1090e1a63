package repository

import (
	"context"
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CategoryRepository stores the categories of one transaction kind
type CategoryRepository struct {
	db              *gorm.DB
	kind            entity.TransactionKind
	table           string
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a repository over the category table of kind
func NewCategoryRepository(db *gorm.DB, kind entity.TransactionKind, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		kind:            kind,
		table:           model.CategoryTable(kind),
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CategoryRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *CategoryRepository) toEntity(m *model.Category) *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      r.kind,
		Name:      m.Name,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CategoryRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	fields["table"] = r.table
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err,
		errs.ErrCategoryNotFound, errs.ErrCategoryAlreadyExists, fields)
}

// Create stores a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{
		UserID:    category.UserID,
		Name:      category.Name,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
	}

	if err := r.query(ctx).Create(&categoryModel).Error; err != nil {
		return r.handleDatabaseError("creating category", err, map[string]any{
			"user_id": category.UserID,
			"name":    category.Name,
		})
	}

	category.ID = categoryModel.ID
	category.CreatedAt = categoryModel.CreatedAt
	return nil
}

// GetByID retrieves a category owned by the user
func (r *CategoryRepository) GetByID(ctx context.Context, userID, id uint64) (*entity.Category, error) {
	var categoryModel model.Category
	err := r.query(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&categoryModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting category", err, map[string]any{"user_id": userID, "id": id})
	}
	return r.toEntity(&categoryModel), nil
}

// GetByName retrieves a category by case-insensitive exact name
func (r *CategoryRepository) GetByName(ctx context.Context, userID uint64, name string) (*entity.Category, error) {
	var categoryModel model.Category
	err := r.query(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, strings.TrimSpace(name)).
		Take(&categoryModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting category by name", err, map[string]any{"user_id": userID, "name": name})
	}
	return r.toEntity(&categoryModel), nil
}

// GetDefault retrieves the user's default category
func (r *CategoryRepository) GetDefault(ctx context.Context, userID uint64) (*entity.Category, error) {
	var categoryModel model.Category
	err := r.query(ctx).Where("user_id = ? AND is_default = ?", userID, true).Take(&categoryModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting default category", err, map[string]any{"user_id": userID})
	}
	return r.toEntity(&categoryModel), nil
}

// List returns the user's categories ordered by name
func (r *CategoryRepository) List(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	var models []model.Category
	err := r.query(ctx).Where("user_id = ?", userID).Order("LOWER(name) ASC").Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing categories", err, map[string]any{"user_id": userID})
	}

	categories := make([]*entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, r.toEntity(&models[i]))
	}
	return categories, nil
}

// Update persists the category name
func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.query(ctx).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Update("name", category.Name)
	if result.Error != nil {
		return r.handleDatabaseError("updating category", result.Error, map[string]any{
			"user_id": category.UserID,
			"id":      category.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category
func (r *CategoryRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.query(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Category{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting category", result.Error, map[string]any{"user_id": userID, "id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}
