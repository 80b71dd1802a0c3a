package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"tictactui/engine"
	"tictactui/types"
)

const maxVisibleMoves = 12

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box       *tview.TextView
	session   types.Session
	history   []MoveEntry
	tally     Tally
	boardSize int
	marks     [2]rune
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(humanMark, opponentMark rune) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		marks: [2]rune{humanMark, opponentMark},
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardSize sets the size shown in the panel title.
func (p *GameInfoPanel) SetBoardSize(size int) {
	p.boardSize = size
	p.refresh()
}

// SetSession updates the panel with the current session, its moves and the tally.
func (p *GameInfoPanel) SetSession(s types.Session, history []MoveEntry, tally Tally) {
	p.session = s
	p.history = history
	p.tally = tally
	p.refresh()
}

func (p *GameInfoPanel) mark(pl types.Player) rune {
	if pl == types.Opponent {
		return p.marks[1]
	}
	return p.marks[0]
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardSize == 0 {
		p.box.SetText("")
		return
	}

	var text string

	text += fmt.Sprintf("[white::b]%d × %d match[-:-:-]\n", p.boardSize, p.boardSize)
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.session.MoveNumber)
	text += fmt.Sprintf("[white]You:[-:-:-] %c  [white]CPU:[-:-:-] %c\n", p.marks[0], p.marks[1])
	text += fmt.Sprintf("[white]W/L/D:[-:-:-] %d/%d/%d\n", p.tally.Wins, p.tally.Losses, p.tally.Draws)

	if len(p.history) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		start := 0
		if len(p.history) > maxVisibleMoves {
			start = len(p.history) - maxVisibleMoves
		}

		for i := start; i < len(p.history); i++ {
			m := p.history[i]
			marker := " "
			if i == len(p.history)-1 {
				marker = "[white]>[-]"
			}
			who := "[white]"
			if m.Player == types.Opponent {
				who = "[dimgray]"
			}
			text += fmt.Sprintf("%s[dimgray]%2d.[-] %s%c[-] %s\n", marker, i+1, who, p.mark(m.Player), engine.CellName(m.Index, p.boardSize))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel(board.cfg.Theme.Symbols.HumanMark, board.cfg.Theme.Symbols.OpponentMark)
	board.infoPanel = infoPanel
	infoPanel.SetBoardSize(board.Session.Size)
	infoPanel.SetSession(board.Session, board.moveHistory, board.tally)

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// ApplyLayout rebuilds gameFrame for the board's current mode and size.
// The focus layout sizes the board box from the session, so it must be
// rebuilt whenever a game of another size starts.
func ApplyLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	if board.FocusMode() {
		BuildFocusLayout(gameFrame, board, hint)
		return
	}
	RebuildNormalLayout(gameFrame, board, hint)
}

// BuildFocusLayout builds the focus mode layout with the centered board and the status bar.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	size := board.Session.Size
	if size == 0 {
		size = 3
	}
	boardWidth := marginLeft + size*cellStride
	boardHeight := marginTop + size*rowStride + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
	gameFrame.AddItem(hint, 2, 0, false)
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
