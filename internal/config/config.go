package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the on-disk game configuration. All blocks and fields are
// optional; anything missing falls back to the defaults.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Bot  *BotSettings  `hcl:"bot,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings contains session-level settings
type GameSettings struct {
	PlayerName    string `hcl:"player_name,optional"`
	StartingCoins int    `hcl:"starting_coins,optional"`
}

// BotSettings contains bot-specific settings
type BotSettings struct {
	Name       string `hcl:"name,optional"`
	Difficulty string `hcl:"difficulty,optional"`
	PaceMs     int    `hcl:"pace_ms,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Plain    bool   `hcl:"plain,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			PlayerName:    "Player",
			StartingCoins: 100,
		},
		Bot: &BotSettings{
			Name:       "Bot",
			Difficulty: "normal",
			PaceMs:     1000,
		},
		UI: &UISettings{
			LogLevel: "warn",
			LogFile:  "ochko.log",
			Plain:    false,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file is parsed and merged over them.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()

	if cfg.Game == nil {
		cfg.Game = defaults.Game
	} else {
		if cfg.Game.PlayerName == "" {
			cfg.Game.PlayerName = defaults.Game.PlayerName
		}
		if cfg.Game.StartingCoins == 0 {
			cfg.Game.StartingCoins = defaults.Game.StartingCoins
		}
	}

	if cfg.Bot == nil {
		cfg.Bot = defaults.Bot
	} else {
		if cfg.Bot.Name == "" {
			cfg.Bot.Name = defaults.Bot.Name
		}
		if cfg.Bot.Difficulty == "" {
			cfg.Bot.Difficulty = defaults.Bot.Difficulty
		}
		if cfg.Bot.PaceMs == 0 {
			cfg.Bot.PaceMs = defaults.Bot.PaceMs
		}
	}

	if cfg.UI == nil {
		cfg.UI = defaults.UI
	} else {
		if cfg.UI.LogLevel == "" {
			cfg.UI.LogLevel = defaults.UI.LogLevel
		}
		if cfg.UI.LogFile == "" {
			cfg.UI.LogFile = defaults.UI.LogFile
		}
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingCoins <= 0 {
		return fmt.Errorf("starting coins must be positive")
	}

	if c.Bot.PaceMs < 0 {
		return fmt.Errorf("bot pace cannot be negative")
	}

	validDifficulties := map[string]bool{
		"easy":   true,
		"normal": true,
		"hard":   true,
	}
	if !validDifficulties[c.Bot.Difficulty] {
		return fmt.Errorf("invalid difficulty: %s", c.Bot.Difficulty)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
