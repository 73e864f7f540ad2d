package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FirstAndSecondPage(t *testing.T) {
	p := New(14, "1", PageSize)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 2, p.NumPages)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())
	assert.True(t, p.HasNext())
	assert.False(t, p.HasPrev())

	p = New(14, "2", PageSize)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Offset())
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
}

func TestNew_FifteenTotalHasFivePageTwoRecords(t *testing.T) {
	p := New(15, "2", PageSize)
	assert.Equal(t, 2, p.NumPages)
	// 15 total, page 2 starts at record 10 and holds the remaining 5
	assert.Equal(t, int64(5), p.Total-int64(p.Offset()))
}

func TestNew_InvalidPageFallsBackToOne(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3"} {
		p := New(14, raw, PageSize)
		assert.Equal(t, 1, p.Number, "page %q", raw)
	}
}

func TestNew_PastTheEndClampsToLastPage(t *testing.T) {
	p := New(14, "99", PageSize)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Offset())
}

func TestNew_EmptyListingStillHasOnePage(t *testing.T) {
	p := New(0, "5", PageSize)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.NumPages)
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
}
