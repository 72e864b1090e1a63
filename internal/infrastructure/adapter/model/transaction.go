package model

import (
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// Transaction is the row shape shared by spendings and incomes
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	CategoryID  uint64    `gorm:"not null;index"`
	Amount      int64     `gorm:"not null;check:amount > 0"`
	Description *string   `gorm:"size:500"`
	Date        time.Time `gorm:"not null;index"`
}

// TransactionRow is a transaction joined with its category name
type TransactionRow struct {
	Transaction
	CategoryName string
}

// Spending declares the spendings schema
type Spending struct {
	Transaction
	User     User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category SpendingCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Spending
func (Spending) TableName() string {
	return SpendingsTable
}

// Income declares the incomes schema
type Income struct {
	Transaction
	User     User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category IncomeCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Income
func (Income) TableName() string {
	return IncomesTable
}

// TransactionTable returns the transaction table of a kind
func TransactionTable(kind entity.TransactionKind) string {
	if kind == entity.KindIncome {
		return IncomesTable
	}
	return SpendingsTable
}
