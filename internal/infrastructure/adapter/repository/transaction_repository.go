package repository

import (
	"context"
	"fmt"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// transactionSortColumns maps public sort fields to columns of the joined query
var transactionSortColumns = map[string]string{
	"id":            "t.id",
	"amount":        "t.amount",
	"category_name": "c.name",
	"description":   "t.description",
	"date":          "t.date",
}

// TransactionRepository stores spendings or incomes
type TransactionRepository struct {
	db              *gorm.DB
	kind            entity.TransactionKind
	table           string
	categoryTable   string
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a repository over the transaction table of kind
func NewTransactionRepository(db *gorm.DB, kind entity.TransactionKind, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		kind:            kind,
		table:           model.TransactionTable(kind),
		categoryTable:   model.CategoryTable(kind),
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		CategoryID:  transaction.CategoryID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date.UTC(),
	}
}

func (r *TransactionRepository) rowToEntity(row *model.TransactionRow) *entity.Transaction {
	return &entity.Transaction{
		ID:           row.ID,
		UserID:       row.UserID,
		Kind:         r.kind,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		Description:  row.Description,
		Date:         row.Date.UTC(),
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	fields["table"] = r.table
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err,
		errs.ErrTransactionNotFound, errs.ErrConstraintViolation, fields)
}

func (r *TransactionRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

// joined selects transactions with their category name
func (r *TransactionRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(r.table+" AS t").
		Joins(fmt.Sprintf("JOIN %s AS c ON c.id = t.category_id", r.categoryTable))
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.query(ctx).Create(&transactionModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, map[string]any{
			"user_id":     transaction.UserID,
			"category_id": transaction.CategoryID,
		})
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction created", map[string]any{
		"kind":    r.kind,
		"id":      transaction.ID,
		"user_id": transaction.UserID,
	})
	return nil
}

// GetByID retrieves a transaction owned by the user, with its category name
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	var row model.TransactionRow
	err := r.joined(ctx).
		Select("t.*, c.name AS category_name").
		Where("t.id = ? AND t.user_id = ?", id, userID).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"user_id": userID, "id": id})
	}
	return r.rowToEntity(&row), nil
}

// Update persists amount, description, date and category
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.query(ctx).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]any{
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"date":        transaction.Date.UTC(),
			"category_id": transaction.CategoryID,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, map[string]any{
			"user_id": transaction.UserID,
			"id":      transaction.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction owned by the user
func (r *TransactionRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.query(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, map[string]any{"user_id": userID, "id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// List returns the transactions matching the filter
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	db := r.applyFilter(r.joined(ctx).Select("t.*, c.name AS category_name"), filter)
	for _, option := range filter.Sort {
		column, ok := transactionSortColumns[option.Field]
		if !ok {
			continue
		}
		if option.Descending {
			db = db.Order(column + " DESC")
		} else {
			db = db.Order(column + " ASC")
		}
	}
	db = applyWindow(db.Order("t.id ASC"), filter.Window)

	var rows []model.TransactionRow
	if err := db.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{"user_id": filter.UserID})
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.rowToEntity(&rows[i]))
	}
	return transactions, nil
}

// Count returns how many transactions match the filter, ignoring its window
func (r *TransactionRepository) Count(ctx context.Context, filter entity.TransactionFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.joined(ctx), filter).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting matching transactions", err, map[string]any{"user_id": filter.UserID})
	}
	return count, nil
}

// Summarize sums matching transactions per category, by amount desc then name asc
func (r *TransactionRepository) Summarize(ctx context.Context, filter entity.TransactionFilter) ([]entity.CategorySummary, error) {
	var summaries []entity.CategorySummary
	err := r.applyFilter(r.joined(ctx), filter).
		Select("c.name AS category_name, CAST(SUM(t.amount) AS BIGINT) AS amount").
		Group("c.name").
		Order("amount DESC").
		Order("c.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, r.handleDatabaseError("summarizing transactions", err, map[string]any{"user_id": filter.UserID})
	}
	return summaries, nil
}

// CountByCategory returns how many transactions reference the category
func (r *TransactionRepository) CountByCategory(ctx context.Context, userID, categoryID uint64) (int64, error) {
	var count int64
	err := r.query(ctx).Where("user_id = ? AND category_id = ?", userID, categoryID).Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting transactions", err, map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
		})
	}
	return count, nil
}

// DeleteByCategory removes every transaction of the category
func (r *TransactionRepository) DeleteByCategory(ctx context.Context, userID, categoryID uint64) (int64, error) {
	result := r.query(ctx).Where("user_id = ? AND category_id = ?", userID, categoryID).Delete(&model.Transaction{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting category transactions", result.Error, map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
		})
	}
	return result.RowsAffected, nil
}

// ReassignCategory moves every transaction of one category to another
func (r *TransactionRepository) ReassignCategory(ctx context.Context, userID, fromID, toID uint64) (int64, error) {
	result := r.query(ctx).
		Where("user_id = ? AND category_id = ?", userID, fromID).
		Update("category_id", toID)
	if result.Error != nil {
		return 0, r.handleDatabaseError("reassigning transactions", result.Error, map[string]any{
			"user_id": userID,
			"from":    fromID,
			"to":      toID,
		})
	}
	return result.RowsAffected, nil
}

// applyFilter adds the predicates of filter to a query over the joined tables
func (r *TransactionRepository) applyFilter(db *gorm.DB, filter entity.TransactionFilter) *gorm.DB {
	db = db.Where("t.user_id = ?", filter.UserID)

	if len(filter.CategoryIDs) > 0 {
		db = db.Where("t.category_id IN ?", filter.CategoryIDs)
	}
	if filter.Amount != nil {
		if filter.Amount.Min != nil {
			db = db.Where("t.amount >= ?", *filter.Amount.Min)
		}
		if filter.Amount.Max != nil {
			db = db.Where("t.amount <= ?", *filter.Amount.Max)
		}
	}
	if filter.Dates != nil {
		if filter.Dates.From != nil {
			db = db.Where("t.date >= ?", filter.Dates.From.UTC())
		}
		if filter.Dates.To != nil {
			db = db.Where("t.date <= ?", filter.Dates.To.UTC())
		}
	}
	if filter.Search != "" {
		db = db.Where(`LOWER(t.description) LIKE LOWER(?) ESCAPE '\'`, containsPattern(filter.Search))
	}
	return db
}
