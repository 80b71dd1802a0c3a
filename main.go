// tictactui is a terminal tic-tac-toe game against a heuristic computer opponent.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"tictactui/config"
	"tictactui/engine"
	"tictactui/engine/heuristic"
	"tictactui/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("size", 0, "Board size (3, 4 or 5)")
	flagDelay      = flag.Int("delay", -1, "Opponent think delay in milliseconds")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tictactui %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagBoardSize != 0 && (*flagBoardSize < config.MinBoardSize || *flagBoardSize > config.MaxBoardSize) {
		fmt.Fprintf(os.Stderr, "Invalid board size %d: choose between %d and %d\n", *flagBoardSize, config.MinBoardSize, config.MaxBoardSize)
		os.Exit(2)
	}

	logger, logCloser, err := initLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagDelay >= 0 || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⊞ tictactui ")
	rootPage.SetBorderColor(ui.MenuColors.Border).SetTitleColor(ui.MenuColors.Title)

	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)

	eng := heuristic.NewEngine(heuristic.WithLogger(logger.With().Str("component", "engine").Logger()))
	gameBoard = ui.NewBoardUI(app, cfg, gameHint, eng, logger.With().Str("component", "ui").Logger())
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlaySelected()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				gameBoard.PlaySelected()
			case 'r':
				gameBoard.Restart()
			case 'f':
				gameBoard.ToggleFocusMode()
				ui.ApplyLayout(gameFrame, gameBoard, gameHint)
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg.Game,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		gameBoard.SetFocusMode(*flagFocus)
		startGame(buildGameConfigFromFlags())
	}

	logger.Info().Str("version", Version).Msg("starting")
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error().Err(err).Msg("application stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.StartGame(gameCfg)
	ui.ApplyLayout(gameFrame, gameBoard, gameHint)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := engine.GameConfig{
		BoardSize:  cfg.Game.DefaultBoardSize,
		ThinkDelay: time.Duration(cfg.Game.ThinkDelayMs) * time.Millisecond,
	}

	if *flagBoardSize >= config.MinBoardSize && *flagBoardSize <= config.MaxBoardSize {
		gameCfg.BoardSize = *flagBoardSize
	}

	if *flagDelay >= 0 {
		gameCfg.ThinkDelay = time.Duration(*flagDelay) * time.Millisecond
	}

	return gameCfg
}

// initLogger opens the log file. The terminal is owned by tview, so nothing
// is ever written to stdout.
func initLogger(c config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}
	if c.File == "" {
		c.File = filepath.Join(os.TempDir(), "tictactui.log")
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
}
