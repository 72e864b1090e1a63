package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
)

// parseQueryParams reads the shared list, summary and export filters:
// category_id and category (name) may repeat, sort is comma separated
func parseQueryParams(c *gin.Context) (usecase.QueryParams, error) {
	var params usecase.QueryParams

	for _, raw := range c.QueryArray("category_id") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return params, errs.NewValidationError("category_id", fmt.Sprintf("invalid id %q", raw), errs.ErrInvalidRequest)
		}
		params.Categories = append(params.Categories, entity.CategoryRef{ID: &id})
	}
	for _, raw := range c.QueryArray("category") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		params.Categories = append(params.Categories, entity.CategoryRef{Name: &name})
	}

	var err error
	if params.MinAmount, err = optionalInt(c, "min_amount"); err != nil {
		return params, err
	}
	if params.MaxAmount, err = optionalInt(c, "max_amount"); err != nil {
		return params, err
	}
	if params.From, err = optionalTime(c, "datetime_from", false); err != nil {
		return params, err
	}
	if params.To, err = optionalTime(c, "datetime_to", true); err != nil {
		return params, err
	}

	params.Search = c.Query("search")
	params.Sort = query.SplitSortParam(c.QueryArray("sort"))
	return params, nil
}

// parsePage reads page and page_size; absent values are left for the use case to default
func parsePage(c *gin.Context) (int, int, error) {
	page, err := intQuery(c, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := intQuery(c, "page_size")
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errs.NewValidationError(name, "must be a non-negative integer", errs.ErrInvalidRequest)
	}
	return v, nil
}

func optionalInt(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.NewValidationError(name, "must be an integer", errs.ErrInvalidRequest)
	}
	return &v, nil
}

// optionalTime accepts RFC 3339 or a bare date; a bare upper bound covers the whole day
func optionalTime(c *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewValidationError(name, "must be RFC 3339 or YYYY-MM-DD", errs.ErrInvalidRequest)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &t, nil
}

// parseDate parses a goal date
func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.NewValidationError(field, "must be YYYY-MM-DD", errs.ErrInvalidRequest)
	}
	return t, nil
}

func optionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
