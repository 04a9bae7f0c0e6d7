package models

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a zero-based page/size pair.
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize clamps the request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized request.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page wraps one page of results with the total count and the originating
// request.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}
