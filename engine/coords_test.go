package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellName(t *testing.T) {
	tests := []struct {
		index, size int
		want        string
	}{
		{0, 3, "A1"},
		{4, 3, "B2"},
		{8, 3, "C3"},
		{2, 3, "C1"},
		{6, 3, "A3"},
		{5, 4, "B2"},
		{15, 4, "D4"},
		{24, 5, "E5"},
		{9, 3, "-"},
		{-1, 3, "-"},
		{0, 0, "-"},
	}
	for _, tt := range tests {
		got := CellName(tt.index, tt.size)
		assert.Equal(t, tt.want, got, "CellName(%d, %d)", tt.index, tt.size)
	}
}

func TestIndexRowColRoundTrip(t *testing.T) {
	for size := 3; size <= 5; size++ {
		for i := 0; i < size*size; i++ {
			row, col := RowCol(i, size)
			assert.Equal(t, i, IndexOf(row, col, size))
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.BoardSize)
	assert.Positive(t, cfg.ThinkDelay)
}
