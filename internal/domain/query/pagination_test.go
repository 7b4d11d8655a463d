package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowDefaults(t *testing.T) {
	w := ParseWindow("", "")
	assert.Equal(t, Window{Page: 1, Limit: 25, Skip: 0}, w)
}

func TestParseWindowValues(t *testing.T) {
	w := ParseWindow("2", "10")
	assert.Equal(t, Window{Page: 2, Limit: 10, Skip: 10}, w)
}

func TestParseWindowCoercesGarbage(t *testing.T) {
	w := ParseWindow("abc", "-5")
	assert.Equal(t, Window{Page: 1, Limit: 25, Skip: 0}, w)

	w = ParseWindow("0", "0")
	assert.Equal(t, Window{Page: 1, Limit: 25, Skip: 0}, w)
}

func TestPaginateMiddlePage(t *testing.T) {
	p := ParseWindow("2", "10").Paginate(25)

	require.NotNil(t, p.Next)
	assert.Equal(t, PageRef{Page: 3, Limit: 10}, *p.Next)
	require.NotNil(t, p.Prev)
	assert.Equal(t, PageRef{Page: 1, Limit: 10}, *p.Prev)
}

func TestPaginateSinglePage(t *testing.T) {
	p := ParseWindow("1", "25").Paginate(10)

	assert.Nil(t, p.Next)
	assert.Nil(t, p.Prev)
}

func TestPaginateLastPage(t *testing.T) {
	p := ParseWindow("3", "10").Paginate(25)

	assert.Nil(t, p.Next)
	require.NotNil(t, p.Prev)
	assert.Equal(t, PageRef{Page: 2, Limit: 10}, *p.Prev)
}

func TestPaginateExactBoundary(t *testing.T) {
	// 20 results at 10 per page: page 2 is the last page
	p := ParseWindow("2", "10").Paginate(20)
	assert.Nil(t, p.Next)
	require.NotNil(t, p.Prev)
}
