package entity

import (
	"strings"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

const maxDescriptionLength = 500

// Transaction is a spending or an income; Amount is in minor currency units
type Transaction struct {
	ID           uint64
	UserID       uint64
	Kind         TransactionKind
	CategoryID   uint64
	CategoryName string // filled on reads
	Amount       int64
	Description  *string
	Date         time.Time
}

// NewTransaction validates input and creates a transaction; a nil date means now
func NewTransaction(
	userID uint64,
	kind TransactionKind,
	categoryID uint64,
	amount int64,
	description *string,
	date *time.Time,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	desc, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	when := timeProvider.Now()
	if date != nil {
		when = *date
	}

	return &Transaction{
		UserID:      userID,
		Kind:        kind,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: desc,
		Date:        when.UTC(),
	}, nil
}

// TransactionUpdate holds the optional fields of a partial update
type TransactionUpdate struct {
	Amount      *int64
	Description *string
	Date        *time.Time
	Category    CategoryRef
}

// Apply mutates the transaction with the non-nil fields of the update
// The category is resolved by the caller and passed as categoryID (0 keeps it)
func (t *Transaction) Apply(update TransactionUpdate, categoryID uint64) error {
	if update.Amount != nil {
		if err := ValidateAmount(*update.Amount); err != nil {
			return err
		}
	}

	desc, err := normalizeDescription(update.Description)
	if err != nil {
		return err
	}

	if update.Amount != nil {
		t.Amount = *update.Amount
	}
	if update.Description != nil {
		t.Description = desc
	}
	if update.Date != nil {
		t.Date = update.Date.UTC()
	}
	if categoryID != 0 {
		t.CategoryID = categoryID
	}
	return nil
}

// ValidateAmount rejects zero and negative amounts
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValidationError("amount", "must be positive", errs.ErrInvalidAmount)
	}
	return nil
}

func normalizeDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	d := strings.TrimSpace(*description)
	if len(d) > maxDescriptionLength {
		return nil, errs.NewValidationError("description", "must be at most 500 characters", errs.ErrInvalidRequest)
	}
	if d == "" {
		return nil, nil
	}
	return &d, nil
}
