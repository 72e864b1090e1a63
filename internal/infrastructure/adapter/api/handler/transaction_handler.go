package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/export"
)

// TransactionHandler handles the spendings or the incomes of a user
type TransactionHandler struct {
	kind         entity.TransactionKind
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a transaction handler bound to kind
func NewTransactionHandler(kind entity.TransactionKind, transactions usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		kind:         kind,
		transactions: transactions,
		logger:       logger.With(map[string]any{"kind": string(kind)}),
	}
}

// List handles GET /{kind}
func (h *TransactionHandler) List(c *gin.Context) {
	params, err := parseQueryParams(c)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	page, size, err := parsePage(c)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}

	result, err := h.transactions.List(c.Request.Context(), usecase.ListTransactionsInput{
		UserID:   middleware.UserID(c),
		Kind:     h.kind,
		Query:    params,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(result, dto.NewTransactionResponse))
}

// Create handles POST /{kind}
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactions.Create(c.Request.Context(), usecase.CreateTransactionInput{
		UserID:      middleware.UserID(c),
		Kind:        h.kind,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Category:    entity.CategoryRef{ID: req.CategoryID, Name: req.CategoryName},
	})
	if err != nil {
		respondError(c, h.logger, "create_transaction", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// Get handles GET /{kind}/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactions.Get(c.Request.Context(), middleware.UserID(c), h.kind, id)
	if err != nil {
		respondError(c, h.logger, "get_transaction", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Update handles PATCH /{kind}/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactions.Update(c.Request.Context(), middleware.UserID(c), h.kind, id, req.ToUpdate())
	if err != nil {
		respondError(c, h.logger, "update_transaction", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Delete handles DELETE /{kind}/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), middleware.UserID(c), h.kind, id); err != nil {
		respondError(c, h.logger, "delete_transaction", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /{kind}/export, a CSV of every matching transaction
func (h *TransactionHandler) Export(c *gin.Context) {
	params, err := parseQueryParams(c)
	if err != nil {
		respondError(c, h.logger, "export_transactions", err)
		return
	}

	items, err := h.transactions.ListAll(c.Request.Context(), middleware.UserID(c), h.kind, params)
	if err != nil {
		respondError(c, h.logger, "export_transactions", err)
		return
	}

	rows := make([]entity.Transaction, 0, len(items))
	for _, t := range items {
		rows = append(rows, *t)
	}

	writeCSV(c, h.logger, export.FileName(string(h.kind)+"s"), func(w io.Writer) error {
		return export.WriteTransactions(w, rows)
	})
}

// writeCSV streams a CSV attachment
func writeCSV(c *gin.Context, logger coreport.Logger, fileName string, write func(io.Writer) error) {
	c.Header("Content-Type", export.ContentTypeCSV)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Status(http.StatusOK)
	if err := write(c.Writer); err != nil {
		logger.Error("Failed to write CSV", map[string]any{
			"file":  fileName,
			"error": err.Error(),
		})
		_ = c.Error(err)
	}
}
