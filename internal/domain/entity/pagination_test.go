package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int64
		size  int
		want  int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 6))
	assert.Equal(t, 12, PageOffset(3, 6))
	assert.Equal(t, 0, PageOffset(0, 6))
	assert.Equal(t, 0, PageOffset(-4, 6))
}

func TestHasPreviousHasNext(t *testing.T) {
	assert.False(t, HasPrevious(1))
	assert.True(t, HasPrevious(2))
	assert.True(t, HasNext(1, 2))
	assert.False(t, HasNext(2, 2))
	assert.False(t, HasNext(1, 0))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"no pages", 1, 0, []int{}},
		{"fewer pages than buttons", 2, 3, []int{1, 2, 3}},
		{"start of range", 1, 10, []int{1, 2, 3, 4, 5}},
		{"centered", 6, 10, []int{4, 5, 6, 7, 8}},
		{"end of range", 10, 10, []int{6, 7, 8, 9, 10}},
		{"near end", 9, 10, []int{6, 7, 8, 9, 10}},
		{"current out of range", 42, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total, DefaultPageWindow))
		})
	}
}
