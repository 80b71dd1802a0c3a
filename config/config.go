package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "tictactui/config.json"
	logFile = "tictactui/tictactui.log"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 5
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor    int `json:"board"`
	BoardColorAlt int `json:"board_alt"`
	HumanColor    int `json:"human"`
	OpponentColor int `json:"opponent"`
	LineColor     int `json:"line"`
	CursorColorFG int `json:"cursor_fg"`
	CursorColorBG int `json:"cursor_bg"`
	LastPlayedBG  int `json:"last_played_bg"`
	WinColorBG    int `json:"win_bg"`
}

type ConfigSymbols struct {
	HumanMark    rune `json:"human"`
	OpponentMark rune `json:"opponent"`
	EmptyCell    rune `json:"empty"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	CheckerBoard             bool          `json:"checker_board"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults used when a new game is set up.
type GameSettings struct {
	DefaultBoardSize int `json:"default_board_size" env:"TICTACTUI_BOARD_SIZE"`
	ThinkDelayMs     int `json:"think_delay_ms" env:"TICTACTUI_THINK_DELAY_MS"`
}

// LogConfig controls where debug logs are written. The terminal belongs
// to the UI, so logs always go to a file.
type LogConfig struct {
	Level string `json:"level" env:"TICTACTUI_LOG_LEVEL"`
	File  string `json:"file" env:"TICTACTUI_LOG_FILE"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the config file if one exists, applies environment
// overrides and validates the result.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path on top of the defaults. An empty path
// skips the file and only applies the environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if config.Log.File == "" {
		if p, err := xdg.StateFile(logFile); err == nil {
			config.Log.File = p
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Game.DefaultBoardSize < MinBoardSize || c.Game.DefaultBoardSize > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Game.DefaultBoardSize)}
	}
	if c.Game.ThinkDelayMs < 0 {
		return &InvalidConfig{"think delay cannot be negative"}
	}
	for _, r := range []rune{c.Theme.Symbols.HumanMark, c.Theme.Symbols.OpponentMark, c.Theme.Symbols.EmptyCell} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
