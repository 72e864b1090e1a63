package migration

import (
	"context"
	"fmt"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// IndexManager creates the indexes AutoMigrate cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the per-user unique category indexes and the query indexes
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	var statements []string
	for _, table := range []string{model.SpendingCategoriesTable, model.IncomeCategoriesTable} {
		statements = append(statements,
			// Names are unique per user regardless of case
			fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%[1]s_user_name ON %[1]s (user_id, LOWER(name))", table),
			// One default category per user
			fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%[1]s_user_default ON %[1]s (user_id) WHERE is_default = true", table),
		)
	}
	for _, table := range []string{model.SpendingsTable, model.IncomesTable} {
		statements = append(statements,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%[1]s_user_date ON %[1]s (user_id, date)", table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%[1]s_user_category ON %[1]s (user_id, category_id)", table),
		)
	}
	statements = append(statements,
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%[1]s_user_status ON %[1]s (user_id, status)", model.SavingGoalsTable))

	db := m.db.WithContext(ctx)
	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"statement": statement,
				"error":     err.Error(),
			})
			return err
		}
	}

	if db.Dialector.Name() == "postgres" {
		m.createPostgresIndexes(db)
	}

	m.logger.Info("Database indexes created successfully", nil)
	return nil
}

// createPostgresIndexes adds BRIN indexes over transaction dates; failures are not fatal
func (m *IndexManager) createPostgresIndexes(db *gorm.DB) {
	for _, table := range []string{model.SpendingsTable, model.IncomesTable} {
		statement := fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%[1]s_date_brin ON %[1]s USING BRIN (date) WITH (pages_per_range = 32)", table)
		if err := db.Exec(statement).Error; err != nil {
			m.logger.Warn("Failed to create BRIN index", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
