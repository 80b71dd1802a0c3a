package heuristic

import (
	"math/rand"

	"tictactui/types"
)

// Stage names the rule of the opponent's cascade that produced a move.
type Stage int

const (
	StageNone Stage = iota
	StageWin
	StageBlock
	StageCenter
	StageRandom
)

func (s Stage) String() string {
	switch s {
	case StageWin:
		return "win"
	case StageBlock:
		return "block"
	case StageCenter:
		return "center"
	case StageRandom:
		return "random"
	}
	return "none"
}

// ChooseMove picks the opponent's next cell. The rules are tried in order
// and the first one that yields a cell wins: complete an own line, block a
// human line, take a center cell, pick any empty cell at random.
// It returns -1 and StageNone if the board has no empty cell.
func ChooseMove(board types.Board, size int, lines []types.Line, rng *rand.Rand) (int, Stage) {
	if idx := completingCell(board, size, lines, types.OpponentMark); idx >= 0 {
		return idx, StageWin
	}
	if idx := completingCell(board, size, lines, types.HumanMark); idx >= 0 {
		return idx, StageBlock
	}
	for _, idx := range CenterCells(size) {
		if board[idx] == types.Empty {
			return idx, StageCenter
		}
	}
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return -1, StageNone
	}
	return empty[rng.Intn(len(empty))], StageRandom
}

// completingCell returns the empty cell of the first line holding size-1
// marks of the given kind and exactly one empty cell, or -1.
func completingCell(board types.Board, size int, lines []types.Line, mark types.Cell) int {
	for _, line := range lines {
		if line.Count(board, mark) != size-1 || line.Count(board, types.Empty) != 1 {
			continue
		}
		for _, idx := range line {
			if board[idx] == types.Empty {
				return idx
			}
		}
	}
	return -1
}

// CenterCells returns the center of the board: the single middle cell for
// odd sizes, the central 2x2 block in row-major order for even sizes.
func CenterCells(size int) []int {
	mid := size / 2
	if size%2 == 1 {
		return []int{mid*size + mid}
	}
	top := (mid-1)*size + mid - 1
	return []int{top, top + 1, top + size, top + size + 1}
}
