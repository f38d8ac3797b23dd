package query

import "strings"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause builds an ORDER BY fragment. SortBy must be in allowed,
// otherwise fallback is used.
func (f SortFilter) OrderClause(allowed map[string]bool, fallback string) string {
	if f.SortBy == "" || !allowed[f.SortBy] {
		return fallback
	}
	order := "ASC"
	if f.IsDescending() {
		order = "DESC"
	}
	return f.SortBy + " " + order
}

type BaseFilter struct {
	PageFilter
	SortFilter
}

func NewBaseFilter(page, pageSize int) BaseFilter {
	return BaseFilter{
		PageFilter: PageFilter{Page: page, PageSize: pageSize},
		SortFilter: SortFilter{SortOrder: "DESC"},
	}
}
