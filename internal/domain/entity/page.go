package entity

// Page is one slice of a listing
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}
