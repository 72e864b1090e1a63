package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

const maxCategoryNameLength = 100

// TransactionKind distinguishes the two parallel transaction ledgers
type TransactionKind string

// Transaction kinds
const (
	KindSpending TransactionKind = "spending"
	KindIncome   TransactionKind = "income"
)

// Kinds lists every transaction kind, in the order default categories are created
var Kinds = []TransactionKind{KindSpending, KindIncome}

// ParseTransactionKind validates a kind name
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindSpending, KindIncome:
		return TransactionKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown transaction kind %q", errs.ErrInvalidRequest, s)
	}
}

// Category groups transactions of one kind for one user
type Category struct {
	ID        uint64
	UserID    uint64
	Kind      TransactionKind
	Name      string
	IsDefault bool // created with the user, cannot be deleted or renamed
	CreatedAt time.Time
}

// NewCategory validates a category name and builds a non-default category
func NewCategory(userID uint64, kind TransactionKind, name string) (*Category, error) {
	name, err := NormalizeCategoryName(name)
	if err != nil {
		return nil, err
	}

	return &Category{
		UserID: userID,
		Kind:   kind,
		Name:   name,
	}, nil
}

// NewDefaultCategory builds the per-user default category of a kind
func NewDefaultCategory(userID uint64, kind TransactionKind, name string) *Category {
	return &Category{
		UserID:    userID,
		Kind:      kind,
		Name:      name,
		IsDefault: true,
	}
}

// Rename changes the category name; the default category is read-only
func (c *Category) Rename(name string) error {
	if c.IsDefault {
		return errs.ErrDefaultCategoryReadOnly
	}

	name, err := NormalizeCategoryName(name)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

// NormalizeCategoryName trims and validates a category name
func NormalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError("name", "must not be empty", errs.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		return "", errs.NewValidationError("name", "must be at most 100 characters", errs.ErrInvalidRequest)
	}
	return name, nil
}

// CategoryRef identifies a category either by id or by name
type CategoryRef struct {
	ID   *uint64
	Name *string
}

// IsEmpty reports whether neither id nor name was supplied
func (r CategoryRef) IsEmpty() bool {
	return r.ID == nil && (r.Name == nil || strings.TrimSpace(*r.Name) == "")
}

// Key returns a stable identity used to resolve each reference once
func (r CategoryRef) Key() string {
	if r.ID != nil {
		return fmt.Sprintf("id:%d", *r.ID)
	}
	if r.Name != nil {
		return "name:" + strings.ToLower(strings.TrimSpace(*r.Name))
	}
	return ""
}

// Disposition tells what happens to the transactions of a deleted category
type Disposition string

// Category deletion dispositions
const (
	DispositionNone       Disposition = ""
	DispositionDelete     Disposition = "delete"
	DispositionToDefault  Disposition = "to_default"
	DispositionToExisting Disposition = "to_existing"
	DispositionToNew      Disposition = "to_new"
)

// ParseDisposition validates a disposition token; empty means none was given
func ParseDisposition(s string) (Disposition, error) {
	switch d := Disposition(s); d {
	case DispositionNone, DispositionDelete, DispositionToDefault, DispositionToExisting, DispositionToNew:
		return d, nil
	default:
		return "", errs.NewValidationError("disposition", fmt.Sprintf("unknown value %q", s), errs.ErrInvalidRequest)
	}
}

// NeedsTarget reports whether the disposition requires a target category name
func (d Disposition) NeedsTarget() bool {
	return d == DispositionToExisting || d == DispositionToNew
}
