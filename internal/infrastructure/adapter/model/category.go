package model

import (
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// Table names of the two parallel category and transaction schemas
const (
	SpendingCategoriesTable = "spending_categories"
	IncomeCategoriesTable   = "income_categories"
	SpendingsTable          = "spendings"
	IncomesTable            = "incomes"
	SavingGoalsTable        = "saving_goals"
)

// Category is the row shape shared by spending_categories and income_categories
// Queries pick the table with db.Table(CategoryTable(kind))
type Category struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	Name      string    `gorm:"not null;size:100"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// SpendingCategory declares the spending_categories schema
type SpendingCategory struct {
	Category
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for SpendingCategory
func (SpendingCategory) TableName() string {
	return SpendingCategoriesTable
}

// IncomeCategory declares the income_categories schema
type IncomeCategory struct {
	Category
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for IncomeCategory
func (IncomeCategory) TableName() string {
	return IncomeCategoriesTable
}

// CategoryTable returns the category table of a transaction kind
func CategoryTable(kind entity.TransactionKind) string {
	if kind == entity.KindIncome {
		return IncomeCategoriesTable
	}
	return SpendingCategoriesTable
}
