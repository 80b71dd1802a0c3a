package heuristic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"tictactui/types"
)

const (
	e = types.Empty
	o = types.HumanMark
	x = types.OpponentMark
)

func TestChooseMove(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		board     types.Board
		wantIndex int
		wantStage Stage
	}{
		{
			name:      "win now outranks center",
			size:      3,
			board:     types.Board{x, x, e, e, e, e, e, e, e},
			wantIndex: 2,
			wantStage: StageWin,
		},
		{
			name:      "block outranks center",
			size:      3,
			board:     types.Board{o, o, e, x, e, e, e, e, e},
			wantIndex: 2,
			wantStage: StageBlock,
		},
		{
			name:      "win outranks block",
			size:      3,
			board:     types.Board{o, o, e, x, x, e, e, e, e},
			wantIndex: 5,
			wantStage: StageWin,
		},
		{
			name:      "column scanned before diagonal",
			size:      3,
			board:     types.Board{o, e, e, o, e, e, e, e, o},
			wantIndex: 6,
			wantStage: StageBlock,
		},
		{
			name:      "column block",
			size:      3,
			board:     types.Board{e, o, e, e, o, e, e, e, x},
			wantIndex: 7,
			wantStage: StageBlock,
		},
		{
			name:      "anti diagonal win",
			size:      3,
			board:     types.Board{o, o, x, e, x, e, e, e, o},
			wantIndex: 6,
			wantStage: StageWin,
		},
		{
			name:      "odd center",
			size:      3,
			board:     types.Board{o, e, e, e, e, e, e, e, e},
			wantIndex: 4,
			wantStage: StageCenter,
		},
		{
			name:      "even center first free in row-major order",
			size:      4,
			board:     types.Board{e, e, e, e, e, o, e, e, e, e, e, e, e, e, e, e},
			wantIndex: 6,
			wantStage: StageCenter,
		},
		{
			name: "four by four block needs three marks",
			size: 4,
			board: types.Board{
				o, o, o, e,
				e, x, x, e,
				e, e, e, e,
				e, e, e, e,
			},
			wantIndex: 3,
			wantStage: StageBlock,
		},
		{
			name: "two of four is not a threat",
			size: 4,
			board: types.Board{
				o, o, e, e,
				e, e, e, e,
				e, e, e, e,
				e, e, e, e,
			},
			wantIndex: 5,
			wantStage: StageCenter,
		},
		{
			name:      "five by five center",
			size:      5,
			board:     types.NewBoard(5),
			wantIndex: 12,
			wantStage: StageCenter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, stage := ChooseMove(tt.board, tt.size, GenerateLines(tt.size), rand.New(rand.NewSource(1)))
			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantStage, stage)
		})
	}
}

func TestChooseMoveRandomFallback(t *testing.T) {
	// Center taken, no line holds two of a kind.
	board := types.Board{
		e, e, e,
		e, o, e,
		e, e, e,
	}
	lines := GenerateLines(3)
	rng := rand.New(rand.NewSource(7))

	counts := make(map[int]int)
	for i := 0; i < 800; i++ {
		idx, stage := ChooseMove(board, 3, lines, rng)
		assert.Equal(t, StageRandom, stage)
		assert.Equal(t, types.Empty, board[idx])
		counts[idx]++
	}
	assert.Len(t, counts, 8, "every empty cell should be reachable")
}

func TestChooseMoveFullBoard(t *testing.T) {
	board := types.Board{o, x, o, o, x, o, x, o, x}
	idx, stage := ChooseMove(board, 3, GenerateLines(3), rand.New(rand.NewSource(1)))
	assert.Equal(t, -1, idx)
	assert.Equal(t, StageNone, stage)
}

func TestCenterCells(t *testing.T) {
	assert.Equal(t, []int{4}, CenterCells(3))
	assert.Equal(t, []int{5, 6, 9, 10}, CenterCells(4))
	assert.Equal(t, []int{12}, CenterCells(5))
}
