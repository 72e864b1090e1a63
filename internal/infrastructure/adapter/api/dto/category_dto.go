package dto

import "github.com/csmqbusy/personal-finances/internal/domain/entity"

// CategoryRequest represents the API request for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a spending or income category
type CategoryResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// NewCategoryResponse maps a category entity
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, IsDefault: c.IsDefault}
}

// NewCategoryResponses maps a category list
func NewCategoryResponses(items []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
