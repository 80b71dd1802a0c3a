// Package types contains shared data structures for tictactui.
package types

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	HumanMark
	OpponentMark
)

// Player identifies who is to move.
type Player uint8

const (
	Human Player = iota + 1
	Opponent
)

// Mark returns the cell value a player places on the board.
func (p Player) Mark() Cell {
	if p == Opponent {
		return OpponentMark
	}
	return HumanMark
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Human {
		return Opponent
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Opponent:
		return "opponent"
	}
	return "none"
}

// Status is the outcome state of a session.
type Status uint8

const (
	InProgress Status = iota
	HumanWon
	OpponentWon
	Draw
)

// Finished returns true if the game is over.
func (s Status) Finished() bool {
	return s != InProgress
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case HumanWon:
		return "human_won"
	case OpponentWon:
		return "opponent_won"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// WonBy returns the terminal status for a win by p.
func WonBy(p Player) Status {
	if p == Opponent {
		return OpponentWon
	}
	return HumanWon
}

// Board holds size*size cells in row-major order (index = row*size + col).
type Board []Cell

// NewBoard creates an empty board for the given dimension.
func NewBoard(size int) Board {
	return make(Board, size*size)
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (b Board) EmptyCells() []int {
	var cells []int
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Full returns true if no empty cell remains.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Line is an ordered set of board indices that wins when uniformly owned.
type Line []int

// Count returns how many cells of the line hold c.
func (l Line) Count(b Board, c Cell) int {
	n := 0
	for _, i := range l {
		if b[i] == c {
			n++
		}
	}
	return n
}

// Session represents the complete state of one game.
type Session struct {
	ID         string `json:"id"`
	Size       int    `json:"size"`
	Board      Board  `json:"board"`
	Active     Player `json:"active"`
	Status     Status `json:"status"`
	MoveNumber int    `json:"move_number"`
	LastMove   int    `json:"last_move"` // -1 before the first move
}

// NewSession creates an empty session of the given size with the human to move.
func NewSession(id string, size int) *Session {
	return &Session{
		ID:       id,
		Size:     size,
		Board:    NewBoard(size),
		Active:   Human,
		Status:   InProgress,
		LastMove: -1,
	}
}

// Finished returns true if the game is over.
func (s Session) Finished() bool {
	return s.Status.Finished()
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	c := s
	c.Board = make(Board, len(s.Board))
	copy(c.Board, s.Board)
	return c
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}
