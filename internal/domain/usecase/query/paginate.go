package query

import "github.com/csmqbusy/personal-finances/internal/domain/entity"

// PageDefaults are the configured pagination bounds
type PageDefaults struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultPageDefaults is used when no configuration is supplied
var DefaultPageDefaults = PageDefaults{DefaultPageSize: 20, MaxPageSize: 100}

// Normalize clamps page and size into valid values
func (d PageDefaults) Normalize(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = d.DefaultPageSize
	}
	if d.MaxPageSize > 0 && size > d.MaxPageSize {
		size = d.MaxPageSize
	}
	return page, size
}

// Window returns the offset of page within total items
// ok is false for a page past the end; the check runs before multiplying so huge pages cannot overflow
func Window(page, size int, total int64) (offset int, ok bool) {
	if page < 1 || size < 1 || total < 1 {
		return 0, false
	}
	pages := (total + int64(size) - 1) / int64(size)
	if int64(page-1) >= pages {
		return 0, false
	}
	return (page - 1) * size, true
}

// NewPage wraps the items fetched for a window
func NewPage[T any](items []T, page, size int, total int64) entity.Page[T] {
	if items == nil {
		items = []T{}
	}
	return entity.Page[T]{Items: items, Page: page, PageSize: size, Total: int(total)}
}

// Paginate returns one page of items held in memory; a page beyond the end is empty
func Paginate[T any](items []T, page, size int) entity.Page[T] {
	start, ok := Window(page, size, int64(len(items)))
	if !ok {
		return NewPage[T](nil, page, size, int64(len(items)))
	}
	end := min(start+size, len(items))
	return NewPage(items[start:end], page, size, int64(len(items)))
}
