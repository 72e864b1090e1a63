package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
)

// CategoryHandler handles the categories of one transaction kind
type CategoryHandler struct {
	kind       entity.TransactionKind
	categories usecase.CategoryUseCase
	logger     coreport.Logger
}

// NewCategoryHandler creates a category handler bound to kind
func NewCategoryHandler(kind entity.TransactionKind, categories usecase.CategoryUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		kind:       kind,
		categories: categories,
		logger:     logger.With(map[string]any{"kind": string(kind)}),
	}
}

// List handles GET /{kind}/categories
func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.categories.List(c.Request.Context(), middleware.UserID(c), h.kind)
	if err != nil {
		respondError(c, h.logger, "list_categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponses(items))
}

// Create handles POST /{kind}/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), middleware.UserID(c), h.kind, req.Name)
	if err != nil {
		respondError(c, h.logger, "create_category", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Rename handles PATCH /{kind}/categories/:id
func (h *CategoryHandler) Rename(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Rename(c.Request.Context(), middleware.UserID(c), h.kind, id, req.Name)
	if err != nil {
		respondError(c, h.logger, "rename_category", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /{kind}/categories/:id?disposition=...&target=...
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	disposition, err := entity.ParseDisposition(c.Query("disposition"))
	if err != nil {
		respondError(c, h.logger, "delete_category", err)
		return
	}

	err = h.categories.Delete(c.Request.Context(), usecase.DeleteCategoryInput{
		UserID:      middleware.UserID(c),
		Kind:        h.kind,
		CategoryID:  id,
		Disposition: disposition,
		Target:      c.Query("target"),
	})
	if err != nil {
		respondError(c, h.logger, "delete_category", err)
		return
	}
	c.Status(http.StatusNoContent)
}
