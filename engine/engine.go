// Package engine defines the interface for game engines.
package engine

import (
	"time"

	"tictactui/types"
)

// GameEngine defines the interface for playing tic-tac-toe against the computer.
// Every call is synchronous. Calls that violate a precondition leave the
// session unchanged and return it as is.
type GameEngine interface {
	// StartSession discards any current game and starts an empty one.
	StartSession(size int) types.Session

	// Session returns a snapshot of the current session.
	Session() types.Session

	// ApplyHumanMove places the human's mark at index.
	ApplyHumanMove(index int) types.Session

	// ComputeOpponentMove lets the computer pick and play one cell.
	ComputeOpponentMove() types.Session

	// Lines returns the winning lines for the current board size.
	Lines() []types.Line

	// EndSession discards the current session.
	EndSession()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize  int           // 3, 4 or 5
	ThinkDelay time.Duration // cosmetic pause before the opponent answers
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:  3,
		ThinkDelay: 600 * time.Millisecond,
	}
}
