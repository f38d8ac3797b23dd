package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	assert.Equal(t, 0, PageFilter{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{}.Limit())
	assert.Equal(t, 100, PageFilter{PageSize: 500}.Limit())
}

func TestSortFilterOrderClause(t *testing.T) {
	allowed := map[string]bool{"created_at": true}

	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "desc"}.OrderClause(allowed, "id"))
	assert.Equal(t, "created_at ASC", SortFilter{SortBy: "created_at"}.OrderClause(allowed, "id"))
	assert.Equal(t, "id", SortFilter{SortBy: "password; DROP"}.OrderClause(allowed, "id"))
}
