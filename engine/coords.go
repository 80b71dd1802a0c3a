package engine

import "fmt"

// Cell names use a column letter and a row number counted from the top:
// on a 3x3 board index 0 is A1, index 4 is B2 and index 8 is C3.

// IndexOf converts a row and column to a board index.
func IndexOf(row, col, size int) int {
	return row*size + col
}

// RowCol converts a board index to its row and column.
func RowCol(index, size int) (int, int) {
	return index / size, index % size
}

// CellName returns the display name of a board index, or "-" if it is off the board.
func CellName(index, size int) string {
	if size <= 0 || index < 0 || index >= size*size {
		return "-"
	}
	row, col := RowCol(index, size)
	return fmt.Sprintf("%c%d", 'A'+rune(col), row+1)
}
