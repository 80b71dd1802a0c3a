package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactui/config"
	"tictactui/engine"
)

// boardSizes lists the sizes offered in the setup form, classic first.
var boardSizes = []struct {
	size  int
	label string
}{
	{3, "3x3 (classic)"},
	{4, "4x4"},
	{5, "5x5"},
}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	boardSize  int
	thinkDelay time.Duration
}

// NewGameSetup creates a new game setup form seeded from the game settings.
func NewGameSetup(settings config.GameSettings, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:    onStart,
		onCancel:   onCancel,
		onColors:   onColors,
		boardSize:  settings.DefaultBoardSize,
		thinkDelay: time.Duration(settings.ThinkDelayMs) * time.Millisecond,
	}

	labels := make([]string, len(boardSizes))
	initial := 0
	for i, b := range boardSizes {
		labels[i] = b.label
		if b.size == settings.DefaultBoardSize {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", labels, initial, func(option string, index int) {
		if index >= 0 && index < len(boardSizes) {
			setup.boardSize = boardSizes[index].size
		}
	})

	form.AddInputField("Think Delay (ms)", strconv.Itoa(settings.ThinkDelayMs), 8, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			setup.thinkDelay = 0
			return
		}
		if val, err := strconv.Atoi(text); err == nil && val >= 0 {
			setup.thinkDelay = time.Duration(val) * time.Millisecond
		}
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration currently selected in the form.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		BoardSize:  s.boardSize,
		ThinkDelay: s.thinkDelay,
	}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}
