package ui

import (
	"testing"
	"time"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactui/config"
	"tictactui/engine"
	"tictactui/types"
)

func TestGameSetupDefaults(t *testing.T) {
	setup := NewGameSetup(config.GameSettings{DefaultBoardSize: 4, ThinkDelayMs: 250}, func(engine.GameConfig) {}, func() {}, nil)

	assert.Equal(t, engine.GameConfig{BoardSize: 4, ThinkDelay: 250 * time.Millisecond}, setup.GameConfig())
}

func TestGameSetupFormChanges(t *testing.T) {
	setup := NewGameSetup(config.DefaultConfig.Game, func(engine.GameConfig) {}, func() {}, nil)

	dropDown, ok := setup.form.GetFormItemByLabel("Board Size").(*tview.DropDown)
	require.True(t, ok)
	dropDown.SetCurrentOption(2)

	delay, ok := setup.form.GetFormItemByLabel("Think Delay (ms)").(*tview.InputField)
	require.True(t, ok)
	delay.SetText("0")

	assert.Equal(t, engine.GameConfig{BoardSize: 5, ThinkDelay: 0}, setup.GameConfig())
}

func TestGameSetupEmptyDelayIsZero(t *testing.T) {
	setup := NewGameSetup(config.GameSettings{DefaultBoardSize: 3, ThinkDelayMs: 600}, func(engine.GameConfig) {}, func() {}, nil)

	delay, ok := setup.form.GetFormItemByLabel("Think Delay (ms)").(*tview.InputField)
	require.True(t, ok)
	delay.SetText("")

	assert.Equal(t, time.Duration(0), setup.GameConfig().ThinkDelay)
}

func TestGameInfoPanel(t *testing.T) {
	panel := NewGameInfoPanel('O', 'X')
	assert.Empty(t, panel.Box().GetText(true))

	panel.SetBoardSize(3)
	s := types.Session{Size: 3, MoveNumber: 2, LastMove: 4}
	history := []MoveEntry{{types.Human, 0}, {types.Opponent, 4}}
	panel.SetSession(s, history, Tally{Wins: 2, Losses: 1})

	text := panel.Box().GetText(true)
	assert.Contains(t, text, "3 × 3 match")
	assert.Contains(t, text, "Move: 2")
	assert.Contains(t, text, "W/L/D: 2/1/0")
	assert.Contains(t, text, "O A1")
	assert.Contains(t, text, "X B2")
}

func TestGameInfoPanelTruncatesHistory(t *testing.T) {
	panel := NewGameInfoPanel('O', 'X')
	panel.SetBoardSize(5)
	var history []MoveEntry
	for i := 0; i < maxVisibleMoves+3; i++ {
		history = append(history, MoveEntry{Player: types.Human, Index: i})
	}
	panel.SetSession(types.Session{Size: 5}, history, Tally{})

	text := panel.Box().GetText(true)
	assert.Contains(t, text, "3 earlier")
	assert.NotContains(t, text, " 1. ")
}
