package model

import (
	"time"
)

// SavingGoal represents the database model for saving goals
type SavingGoal struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	UserID        uint64     `gorm:"not null;index"`
	Name          string     `gorm:"not null;size:100"`
	Description   *string    `gorm:"size:500"`
	TargetAmount  int64      `gorm:"not null;check:target_amount > 0"`
	CurrentAmount int64      `gorm:"not null;default:0;check:current_amount >= 0"`
	StartDate     time.Time  `gorm:"not null"`
	TargetDate    time.Time  `gorm:"not null"`
	EndDate       *time.Time `gorm:"column:end_date"`
	Status        string     `gorm:"not null;size:20;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for SavingGoal
func (SavingGoal) TableName() string {
	return SavingGoalsTable
}
