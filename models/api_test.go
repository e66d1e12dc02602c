package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		start, end         int
		totalPages         int
	}{
		{"first page", 1, 10, 25, 0, 10, 3},
		{"last partial page", 3, 10, 25, 20, 25, 3},
		{"page past the end", 4, 10, 25, 25, 25, 3},
		{"empty result", 1, 10, 0, 0, 0, 0},
		{"huge page", math.MaxInt, 10, 5, 5, 5, 1},
		{"huge limit", 2, math.MaxInt, 5, 5, 5, 1},
		{"defaults", 0, 0, 15, 0, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			start, end := p.Bounds()
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}
