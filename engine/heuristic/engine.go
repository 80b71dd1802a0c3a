// Package heuristic provides a rule-based tic-tac-toe opponent.
package heuristic

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tictactui/engine"
	"tictactui/types"
)

var _ engine.GameEngine = (*Engine)(nil)

// Engine implements the GameEngine interface with a fixed priority heuristic.
// It is not safe for concurrent use; the presentation layer owns it.
type Engine struct {
	session *types.Session
	lines   []types.Line
	rng     *rand.Rand
	log     zerolog.Logger
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used for the random fallback move.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger for session and move events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// NewEngine creates an engine without an active session.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   zerolog.Nop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession resets the board to the given size with the human to move.
func (e *Engine) StartSession(size int) types.Session {
	if e.session != nil && !e.session.Finished() {
		e.log.Debug().Str("session", e.session.ID).Msg("session abandoned")
	}
	e.session = types.NewSession(e.newID(), size)
	e.lines = GenerateLines(size)
	e.log.Info().Str("session", e.session.ID).Int("size", size).Msg("session started")
	return e.session.Clone()
}

// Session returns a snapshot of the current session.
// The zero Session is returned if none is active.
func (e *Engine) Session() types.Session {
	if e.session == nil {
		return types.Session{LastMove: -1}
	}
	return e.session.Clone()
}

// Lines returns a copy of the winning lines for the current session.
func (e *Engine) Lines() []types.Line {
	if e.lines == nil {
		return nil
	}
	lines := make([]types.Line, len(e.lines))
	for i, line := range e.lines {
		lines[i] = append(types.Line(nil), line...)
	}
	return lines
}

// EndSession discards the current session.
func (e *Engine) EndSession() {
	if e.session == nil {
		return
	}
	e.log.Info().Str("session", e.session.ID).Stringer("status", e.session.Status).Msg("session ended")
	e.session = nil
	e.lines = nil
}

// ApplyHumanMove plays the human's mark at index. Moves on a finished
// session, out of turn, off the board or onto a filled cell are ignored.
func (e *Engine) ApplyHumanMove(index int) types.Session {
	s := e.session
	if s == nil {
		return e.Session()
	}
	if s.Finished() || s.Active != types.Human || index < 0 || index >= len(s.Board) || s.Board[index] != types.Empty {
		e.log.Debug().Str("session", s.ID).Int("index", index).Msg("human move rejected")
		return s.Clone()
	}
	e.place(index, types.Human)
	return s.Clone()
}

// ComputeOpponentMove picks a cell for the opponent and plays it.
// It does nothing unless the session is running and the opponent is to move.
func (e *Engine) ComputeOpponentMove() types.Session {
	s := e.session
	if s == nil {
		return e.Session()
	}
	if s.Finished() || s.Active != types.Opponent {
		e.log.Debug().Str("session", s.ID).Msg("opponent move rejected")
		return s.Clone()
	}
	index, stage := ChooseMove(s.Board, s.Size, e.lines, e.rng)
	if index < 0 {
		return s.Clone()
	}
	e.log.Debug().Str("session", s.ID).Int("index", index).Stringer("stage", stage).Msg("opponent chose move")
	e.place(index, types.Opponent)
	return s.Clone()
}

// place marks index for p, evaluates the outcome and passes the turn.
func (e *Engine) place(index int, p types.Player) {
	s := e.session
	s.Board[index] = p.Mark()
	s.MoveNumber++
	s.LastMove = index

	s.Status = Evaluate(s.Board, e.lines, p)
	if s.Finished() {
		e.log.Info().Str("session", s.ID).Stringer("status", s.Status).Int("moves", s.MoveNumber).Msg("game over")
		return
	}
	s.Active = p.Other()
}

// Evaluate returns the status of board after p has placed a mark.
// A completed line beats a full board.
func Evaluate(board types.Board, lines []types.Line, p types.Player) types.Status {
	mark := p.Mark()
	for _, line := range lines {
		if line.Count(board, mark) == len(line) {
			return types.WonBy(p)
		}
	}
	if board.Full() {
		return types.Draw
	}
	return types.InProgress
}
