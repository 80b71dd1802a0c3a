// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"tictactui/config"
	"tictactui/engine"
	"tictactui/types"
)

// Each cell is 3 columns wide with a 1 column separator, and rows are
// separated by a line of box-drawing characters.
const (
	cellWidth  = 3
	cellStride = cellWidth + 1
	rowStride  = 2
	marginLeft = 4
	marginTop  = 1
)

// MoveEntry is one played move shown in the info panel.
type MoveEntry struct {
	Player types.Player
	Index  int
}

// Tally counts finished games since the program started.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

type BoardUI struct {
	Box       *tview.Box
	Session   types.Session
	hint      *tview.TextView
	cfg       *config.Config
	app       *tview.Application
	eng       engine.GameEngine
	gameCfg   engine.GameConfig
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	log       zerolog.Logger

	selX, selY       int
	originX, originY int
	thinking         bool
	focusMode        bool
	moveHistory      []MoveEntry
	tally            Tally

	// after runs fn on the UI goroutine once d has elapsed.
	after func(d time.Duration, fn func())
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView, eng engine.GameEngine, log zerolog.Logger) *BoardUI {
	board := &BoardUI{
		Box:     tview.NewBox(),
		Session: types.Session{LastMove: -1},
		hint:    hint,
		app:     app,
		eng:     eng,
		log:     log,
		selX:    -1,
		selY:    -1,
	}
	board.after = func(d time.Duration, fn func()) {
		time.AfterFunc(d, func() {
			app.QueueUpdateDraw(fn)
		})
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		x, y := event.Position()
		if idx, ok := board.cellAt(x, y); ok {
			board.PlayCell(idx)
			return action, nil
		}
		return action, event
	})
	return board
}

// StartGame begins a new session with the given configuration.
func (g *BoardUI) StartGame(gameCfg engine.GameConfig) {
	g.gameCfg = gameCfg
	g.moveHistory = nil
	g.thinking = false
	g.ResetSelection()
	g.Session = g.eng.StartSession(gameCfg.BoardSize)
	if g.infoPanel != nil {
		g.infoPanel.SetBoardSize(gameCfg.BoardSize)
	}
	g.refreshHint()
}

// Restart starts a fresh session with the current configuration.
func (g *BoardUI) Restart() {
	g.StartGame(g.gameCfg)
}

// Close discards the session. A pending opponent move is dropped.
func (g *BoardUI) Close() {
	g.eng.EndSession()
	g.Session = types.Session{LastMove: -1}
	g.thinking = false
	g.ResetSelection()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// FocusMode reports whether the board is shown without the side panel.
func (g *BoardUI) FocusMode() bool {
	return g.focusMode
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.Session.Finished()
}

// Tally returns the results of the games finished so far.
func (g *BoardUI) Tally() Tally {
	return g.tally
}

// canPlay reports whether a human move at index would be accepted.
func (g *BoardUI) canPlay(index int) bool {
	s := g.Session
	if len(s.Board) == 0 || s.Finished() || s.Active != types.Human || g.thinking {
		return false
	}
	return index >= 0 && index < len(s.Board) && s.Board[index] == types.Empty
}

// PlayCell plays the human's mark at index and schedules the opponent's answer.
func (g *BoardUI) PlayCell(index int) {
	if !g.canPlay(index) {
		return
	}
	g.update(g.eng.ApplyHumanMove(index))
	if !g.Session.Finished() && g.Session.Active == types.Opponent {
		g.scheduleOpponent(g.Session.ID)
	}
}

// PlaySelected plays the cell under the cursor.
func (g *BoardUI) PlaySelected() {
	sel := g.SelectedTile()
	if sel == nil {
		return
	}
	g.PlayCell(engine.IndexOf(sel.Y, sel.X, g.Session.Size))
}

func (g *BoardUI) scheduleOpponent(sessionID string) {
	g.thinking = true
	g.refreshHint()
	g.after(g.gameCfg.ThinkDelay, func() {
		if g.Session.ID != sessionID {
			g.log.Debug().Str("session", sessionID).Msg("dropping opponent move for stale session")
			return
		}
		g.thinking = false
		g.update(g.eng.ComputeOpponentMove())
	})
}

// update stores s, records the move it contains and refreshes the panels.
func (g *BoardUI) update(s types.Session) {
	prev := g.Session
	g.Session = s
	if s.MoveNumber > prev.MoveNumber && s.LastMove >= 0 {
		mover := types.Human
		if s.Board[s.LastMove] == types.OpponentMark {
			mover = types.Opponent
		}
		g.moveHistory = append(g.moveHistory, MoveEntry{Player: mover, Index: s.LastMove})
	}
	if s.Finished() && !prev.Finished() {
		switch s.Status {
		case types.HumanWon:
			g.tally.Wins++
		case types.OpponentWon:
			g.tally.Losses++
		case types.Draw:
			g.tally.Draws++
		}
		g.ResetSelection()
	}
	g.refreshHint()
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	size := g.Session.Size
	if size == 0 || g.Session.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if g.Session.LastMove >= 0 {
			g.selY, g.selX = engine.RowCol(g.Session.LastMove, size)
		} else {
			g.selX, g.selY = size/2, size/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),    // 0
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt), // 1
		tcell.PaletteColor(c.Theme.Colors.HumanColor),    // 2
		tcell.PaletteColor(c.Theme.Colors.OpponentColor), // 3
		tcell.PaletteColor(c.Theme.Colors.LineColor),     // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG), // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG), // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedBG),  // 7
		tcell.PaletteColor(c.Theme.Colors.WinColorBG),    // 8
	}
	g.cfg = c
}

// cellAt maps a screen position to a board index using the last drawn origin.
func (g *BoardUI) cellAt(x, y int) (int, bool) {
	size := g.Session.Size
	rx, ry := x-g.originX, y-g.originY
	if size == 0 || rx < 0 || ry < 0 {
		return -1, false
	}
	if rx%cellStride == cellWidth || ry%rowStride == 1 {
		return -1, false
	}
	col, row := rx/cellStride, ry/rowStride
	if col >= size || row >= size {
		return -1, false
	}
	return engine.IndexOf(row, col, size), true
}

// winningCells returns the indices of every line the winner completed.
func (g *BoardUI) winningCells() map[int]bool {
	cells := make(map[int]bool)
	var mark types.Cell
	switch g.Session.Status {
	case types.HumanWon:
		mark = types.HumanMark
	case types.OpponentWon:
		mark = types.OpponentMark
	default:
		return cells
	}
	for _, line := range g.eng.Lines() {
		if line.Count(g.Session.Board, mark) == len(line) {
			for _, idx := range line {
				cells[idx] = true
			}
		}
	}
	return cells
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := g.Session.Size
	if size == 0 || len(g.Session.Board) == 0 {
		return x, y, 1, 1
	}
	g.originX, g.originY = x+marginLeft, y+marginTop
	theme := g.cfg.Theme
	lineStyle := tcell.StyleDefault.Foreground(g.styles[4]).Background(g.styles[0])
	winning := g.winningCells()

	for row := 0; row < size; row++ {
		top := g.originY + row*rowStride
		for col := 0; col < size; col++ {
			idx := engine.IndexOf(row, col, size)
			left := g.originX + col*cellStride

			bg := g.styles[0]
			if theme.CheckerBoard && (row+col)%2 == 1 {
				bg = g.styles[1]
			}
			fg := g.styles[5]
			r := theme.Symbols.EmptyCell
			switch g.Session.Board[idx] {
			case types.HumanMark:
				r, fg = theme.Symbols.HumanMark, g.styles[2]
			case types.OpponentMark:
				r, fg = theme.Symbols.OpponentMark, g.styles[3]
			}
			switch {
			case winning[idx]:
				bg = g.styles[8]
			case col == g.selX && row == g.selY && theme.DrawCursorBackground:
				bg = g.styles[6]
			case idx == g.Session.LastMove && theme.DrawLastPlayedBackground:
				bg = g.styles[7]
			}
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			drawCell(screen, style, r, left, top)
			if col == g.selX && row == g.selY && !theme.DrawCursorBackground {
				screen.SetContent(left, top, '[', nil, style)
				screen.SetContent(left+2, top, ']', nil, style)
			}
			if col < size-1 {
				screen.SetContent(left+cellWidth, top, '│', nil, lineStyle)
			}
		}
		if row < size-1 {
			drawSeparator(screen, lineStyle, g.originX, top+1, size)
		}
	}
	drawCoordinates(screen, x, g)
	return x, y, marginLeft + size*cellStride, marginTop + size*rowStride + 1
}

// drawCell draws a cell with its mark in the middle column.
func drawCell(s tcell.Screen, c tcell.Style, r rune, left, top int) {
	s.SetContent(left, top, ' ', nil, c)
	s.SetContent(left+1, top, r, nil, c)
	s.SetContent(left+2, top, ' ', nil, c)
}

// drawSeparator draws the horizontal rule between two rows: ───┼───┼───
func drawSeparator(s tcell.Screen, c tcell.Style, left, y, size int) {
	width := size*cellStride - 1
	for i := 0; i < width; i++ {
		r := '─'
		if i%cellStride == cellWidth {
			r = '┼'
		}
		s.SetContent(left+i, y, r, nil, c)
	}
}

// drawCoordinates labels rows with numbers and columns with letters, matching engine.CellName.
func drawCoordinates(s tcell.Screen, x int, g *BoardUI) {
	size := g.Session.Size
	style := tcell.StyleDefault.Foreground(MenuColors.Hint)
	highlight := tcell.StyleDefault.Background(g.styles[6])

	for col := 0; col < size; col++ {
		_style := style
		if col == g.selX {
			_style = highlight
		}
		s.SetContent(g.originX+col*cellStride+1, g.originY+size*rowStride-1, rune('A'+col), nil, _style)
	}
	for row := 0; row < size; row++ {
		_style := style
		if row == g.selY {
			_style = highlight
		}
		s.SetContent(x+1, g.originY+row*rowStride, rune('1'+row), nil, _style)
	}
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetSession(g.Session, g.moveHistory, g.tally)
	}

	var statusLine, controlsLine string
	marks := g.cfg.Theme.Symbols

	switch {
	case len(g.Session.Board) == 0:
		statusLine = "  No game in progress"
	case g.Session.Finished():
		statusLine = "  " + resultText(g.Session.Status)
		controlsLine = "  r · rematch   q · return to menu"
	case g.focusMode:
		statusLine = "  " + turnText(g.Session, marks.HumanMark, marks.OpponentMark)
		controlsLine = "  f to toggle"
	case g.thinking || g.Session.Active == types.Opponent:
		statusLine = fmt.Sprintf("  ◌ Thinking... (%c)", marks.OpponentMark)
		controlsLine = "  q · return to menu"
	default:
		statusLine = fmt.Sprintf("  %c Your move", marks.HumanMark)
		controlsLine = "  hjkl/↑↓←→ move   ⏎/click play   r restart   f focus   q quit"
	}

	g.hint.SetText(fmt.Sprintf("%s\n%s", statusLine, controlsLine))
}

// turnText returns a one-line summary of whose turn it is.
func turnText(s types.Session, human, opponent rune) string {
	if s.Active == types.Opponent {
		return fmt.Sprintf("◌ %c", opponent)
	}
	return fmt.Sprintf("%c your move", human)
}

// resultText returns the message shown when a game ends.
func resultText(s types.Status) string {
	switch s {
	case types.HumanWon:
		return colorTag(MenuColors.Win) + "You win! 🎉[-]"
	case types.OpponentWon:
		return colorTag(MenuColors.Loss) + "The computer wins[-]"
	case types.Draw:
		return colorTag(MenuColors.Draw) + "Draw! 🤝[-]"
	}
	return ""
}
