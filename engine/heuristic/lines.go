package heuristic

import "tictactui/types"

// GenerateLines returns every winning line for a size x size board:
// the rows top to bottom, the columns left to right, then the main
// diagonal and the anti-diagonal. The result always holds 2*size+2 lines.
func GenerateLines(size int) []types.Line {
	lines := make([]types.Line, 0, 2*size+2)

	for i := 0; i < size; i++ {
		row := make(types.Line, size)
		for j := 0; j < size; j++ {
			row[j] = i*size + j
		}
		lines = append(lines, row)
	}

	for i := 0; i < size; i++ {
		col := make(types.Line, size)
		for j := 0; j < size; j++ {
			col[j] = j*size + i
		}
		lines = append(lines, col)
	}

	diag := make(types.Line, size)
	anti := make(types.Line, size)
	for i := 0; i < size; i++ {
		diag[i] = i*size + i
		anti[i] = i*size + (size - 1 - i)
	}
	return append(lines, diag, anti)
}
