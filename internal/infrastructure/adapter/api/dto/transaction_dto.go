package dto

import (
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for recording a spending or income
// Category is given by id or by name; neither means the default category
type CreateTransactionRequest struct {
	Amount       int64      `json:"amount" binding:"required"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	CategoryID   *uint64    `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Amount       *int64     `json:"amount"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	CategoryID   *uint64    `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}

// ToUpdate maps the request to a domain update
func (r UpdateTransactionRequest) ToUpdate() entity.TransactionUpdate {
	return entity.TransactionUpdate{
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
		Category:    entity.CategoryRef{ID: r.CategoryID, Name: r.CategoryName},
	}
}

// TransactionResponse represents one listed transaction
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	Amount       int64     `json:"amount"`
	CategoryName string    `json:"category_name"`
	Description  *string   `json:"description"`
	Date         time.Time `json:"date"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Amount:       t.Amount,
		CategoryName: t.CategoryName,
		Description:  t.Description,
		Date:         t.Date,
	}
}

// PageResponse represents one page of a listing
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPageResponse maps a page, converting each item
func NewPageResponse[E any, T any](page entity.Page[E], convert func(E) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return PageResponse[T]{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
}
