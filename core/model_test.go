package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	p := ParsePagination("", "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageLimit, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = ParsePagination("3", "10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 20, p.Offset())

	p = ParsePagination("-1", "1000")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageLimit, p.Limit)

	p = ParsePagination("abc", "0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageLimit, p.Limit)
}

func TestNewPageNeverNil(t *testing.T) {
	page := NewPage[Post](nil, 0, Pagination{Page: 1, Limit: 20})
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
}
