package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactui/config"
	"tictactui/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	status    *tview.TextView
	cfg       *config.Config
	onDone    func()

	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing grid line color, false = editing board color
}

type namedColor struct {
	code int
	name string
}

// Dark backgrounds so both marks stay readable
var boardColors = []namedColor{
	{236, "Charcoal"},
	{237, "Graphite"},
	{235, "Coal"},
	{234, "Ink"},
	{238, "Slate"},
	{239, "Storm"},
	{17, "Navy"},
	{18, "Deep Blue"},
	{22, "Forest"},
	{23, "Deep Teal"},
	{52, "Maroon"},
	{53, "Plum"},
	{58, "Olive"},
	{94, "Saddle Brown"},
	{16, "True Black"},
}

// Grid line colors
var lineColors = []namedColor{
	{60, "Muted Blue"},
	{67, "Steel Blue"},
	{109, "Frost"},
	{244, "Medium Gray"},
	{248, "Light Gray"},
	{180, "Tan"},
	{137, "Bronze"},
	{65, "Sage"},
	{96, "Mauve"},
	{255, "White"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	cc.populateColorList()

	// Preview follows the highlighted entry
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		colors := cc.currentColors()
		if index < 0 || index >= len(colors) {
			return
		}
		if cc.editingLine {
			cc.selectedLineColor = colors[index].code
		} else {
			cc.selectedBoardColor = colors[index].code
		}
	})

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.currentColors()) {
			return
		}
		if cc.editingLine {
			cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
		} else {
			cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
			cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		}
		if err := cc.cfg.Save(); err != nil {
			cc.status.SetText(fmt.Sprintf("[red]%s[-]", err))
			return
		}
		cc.status.SetText("")
		if cc.editingLine {
			cc.ToggleMode()
			return
		}
		if cc.onDone != nil {
			cc.onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.status = tview.NewTextView()
	cc.status.SetDynamicColors(true)

	top := tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)
	cc.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, true).
		AddItem(cc.status, 1, 0, false)

	return cc
}

func (cc *ColorConfigUI) currentColors() []namedColor {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedBoardColor
	title := " Select Board Color (Tab: switch to lines) "
	if cc.editingLine {
		selected = cc.selectedLineColor
		title = " Select Line Color (Tab: switch to board) "
	}
	cc.colorList.SetTitle(title)

	for i, c := range cc.currentColors() {
		cc.colorList.AddItem(fmt.Sprintf("%s████[-] %s (%d)", colorTag(tcell.PaletteColor(c.code)), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.currentColors() {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewBoard is a finished 3x3 game with the human's diagonal win.
var previewBoard = types.Board{
	types.HumanMark, types.OpponentMark, types.Empty,
	types.OpponentMark, types.HumanMark, types.Empty,
	types.Empty, types.OpponentMark, types.HumanMark,
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 3
	startX := x + 2
	startY := y + 1
	if width < size*cellStride+4 || height < size*rowStride+3 {
		return x, y, width, height
	}

	theme := cc.cfg.Theme
	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	lineStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	humanStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(theme.Colors.HumanColor))
	opponentStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(theme.Colors.OpponentColor))

	for row := 0; row < size; row++ {
		top := startY + row*rowStride
		for col := 0; col < size; col++ {
			left := startX + col*cellStride
			style, r := lineStyle, theme.Symbols.EmptyCell
			switch previewBoard[row*size+col] {
			case types.HumanMark:
				style, r = humanStyle, theme.Symbols.HumanMark
			case types.OpponentMark:
				style, r = opponentStyle, theme.Symbols.OpponentMark
			}
			drawCell(screen, style, r, left, top)
			if col < size-1 {
				screen.SetContent(left+cellWidth, top, '│', nil, lineStyle)
			}
		}
		if row < size-1 {
			drawSeparator(screen, lineStyle, startX, top+1, size)
		}
	}

	info := fmt.Sprintf("Board: %d  Line: %d", cc.selectedBoardColor, cc.selectedLineColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size*rowStride, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
