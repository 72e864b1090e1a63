package query

import (
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// Sortable transaction fields
var TransactionSortFields = map[string]struct{}{
	"id":            {},
	"amount":        {},
	"category_name": {},
	"description":   {},
	"date":          {},
}

// Sortable goal fields
var GoalSortFields = map[string]struct{}{
	"id":             {},
	"name":           {},
	"target_amount":  {},
	"current_amount": {},
	"start_date":     {},
	"target_date":    {},
	"status":         {},
}

// ParseSortTokens turns "field" and "-field" tokens into sort options
// Every leading dash is stripped to find the field; a leading dash means descending
// Unknown fields are dropped
func ParseSortTokens(tokens []string, allowed map[string]struct{}) []entity.SortOption {
	var options []entity.SortOption
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		field := strings.TrimLeft(token, "-")
		if _, ok := allowed[field]; !ok {
			continue
		}
		options = append(options, entity.SortOption{
			Field:      field,
			Descending: strings.HasPrefix(token, "-"),
		})
	}
	return options
}

// SplitSortParam splits comma separated sort query values
func SplitSortParam(values []string) []string {
	var tokens []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}
