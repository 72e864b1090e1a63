package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
)

// User represents an account owning categories, transactions and goals
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string    // bcrypt hash, never the raw password
	Active       bool      // soft-disable flag
	CreatedAt    time.Time
}

// NewUser validates sign-up data and creates an active user
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, errs.NewValidationError("username", "must be between 3 and 50 characters", errs.ErrInvalidRequest)
	}

	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.NewValidationError("email", "malformed address", errs.ErrInvalidRequest)
	}

	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "is required", errs.ErrInvalidRequest)
	}

	return &User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// Deactivate soft-disables the user
func (u *User) Deactivate() {
	u.Active = false
}
