package repository

import (
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so a search term matches literally
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// containsPattern is the LIKE pattern matching term anywhere; compare it against LOWER(column) with LOWER(?)
func containsPattern(term string) string {
	return "%" + EscapeLike(strings.TrimSpace(term)) + "%"
}

// applyWindow limits db to the page window, if any
func applyWindow(db *gorm.DB, window *entity.PageWindow) *gorm.DB {
	if window == nil {
		return db
	}
	return db.Offset(window.Offset).Limit(window.Limit)
}
