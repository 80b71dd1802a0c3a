package config

import (
	"time"

	"tictactui/engine"
)

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		CheckerBoard:             false,
		Colors: ConfigColors{
			BoardColor:    236,
			BoardColorAlt: 237,
			HumanColor:    117,
			OpponentColor: 210,
			LineColor:     60,
			CursorColorFG: 255,
			CursorColorBG: 24,
			LastPlayedBG:  238,
			WinColorBG:    22,
		},
		Symbols: ConfigSymbols{
			HumanMark:    'O',
			OpponentMark: 'X',
			EmptyCell:    ' ',
		},
	}

	game := engine.DefaultConfig()
	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			DefaultBoardSize: game.BoardSize,
			ThinkDelayMs:     int(game.ThinkDelay / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
