package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactui/types"
)

func TestGenerateLinesShape(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		lines := GenerateLines(size)
		require.Len(t, lines, 2*size+2, "size %d", size)

		for _, line := range lines {
			require.Len(t, line, size)
			seen := make(map[int]bool)
			for _, idx := range line {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, size*size)
				assert.False(t, seen[idx], "duplicate index %d in %v", idx, line)
				seen[idx] = true
			}
		}
	}
}

func TestGenerateLinesOrder(t *testing.T) {
	want := []types.Line{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	assert.Equal(t, want, GenerateLines(3))
}

func TestGenerateLinesFourDiagonals(t *testing.T) {
	lines := GenerateLines(4)
	assert.Equal(t, types.Line{0, 5, 10, 15}, lines[8])
	assert.Equal(t, types.Line{3, 6, 9, 12}, lines[9])
}

func TestGenerateLinesDeterministic(t *testing.T) {
	assert.Equal(t, GenerateLines(5), GenerateLines(5))
}
