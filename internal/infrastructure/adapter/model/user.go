package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"not null;size:50;uniqueIndex"`
	Email        string    `gorm:"not null;size:254;uniqueIndex"`
	PasswordHash string    `gorm:"not null;size:255"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
