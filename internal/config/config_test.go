package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ochko.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  starting_coins = 250
}

bot {
  difficulty = "hard"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250, cfg.Game.StartingCoins)
	assert.Equal(t, "Player", cfg.Game.PlayerName)
	assert.Equal(t, "hard", cfg.Bot.Difficulty)
	assert.Equal(t, "Bot", cfg.Bot.Name)
	assert.Equal(t, 1000, cfg.Bot.PaceMs)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  player_name    = "Egor"
  starting_coins = 500
}

bot {
  name       = "Dealer"
  difficulty = "easy"
  pace_ms    = 250
}

ui {
  log_level = "debug"
  log_file  = "debug.log"
  plain     = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Egor", cfg.Game.PlayerName)
	assert.Equal(t, 500, cfg.Game.StartingCoins)
	assert.Equal(t, "Dealer", cfg.Bot.Name)
	assert.Equal(t, 250, cfg.Bot.PaceMs)
	assert.True(t, cfg.UI.Plain)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Bot.Difficulty = "nightmare"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Game.StartingCoins = -5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}
