package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/ochko/internal/cli"
	"github.com/lox/ochko/internal/config"
	"github.com/lox/ochko/internal/game"
	"github.com/lox/ochko/internal/randutil"
	"github.com/lox/ochko/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Config     string           `short:"c" help:"Path to HCL config file" default:"ochko.hcl"`
	Plain      bool             `help:"Plain line-oriented terminal instead of the full-screen UI"`
	Difficulty string           `short:"d" help:"Bot difficulty (easy, normal, hard)"`
	Coins      int              `help:"Starting coin balance for both sides"`
	Seed       int64            `help:"RNG seed for reproducible sessions (0 seeds from the clock)"`
	Debug      bool             `help:"Enable debug logging"`
}

func main() {
	var flags CLI
	ctx := kong.Parse(&flags,
		kong.Name("ochko"),
		kong.Description("Russian Blackjack in the terminal: first to 21 takes the pot"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(run(flags))
}

func run(flags CLI) error {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	if flags.Difficulty != "" {
		cfg.Bot.Difficulty = flags.Difficulty
	}
	if flags.Coins != 0 {
		cfg.Game.StartingCoins = flags.Coins
	}
	if flags.Plain {
		cfg.UI.Plain = true
	}
	if flags.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	difficulty, err := game.ParseDifficulty(cfg.Bot.Difficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	rng := randutil.NewFromTime()
	if flags.Seed != 0 {
		rng = randutil.New(flags.Seed)
	}

	session := game.NewSession(game.Options{
		HumanName:     cfg.Game.PlayerName,
		BotName:       cfg.Bot.Name,
		StartingCoins: cfg.Game.StartingCoins,
		Difficulty:    difficulty,
		Pace:          time.Duration(cfg.Bot.PaceMs) * time.Millisecond,
		RNG:           rng,
		Logger:        logger,
	})

	logger.Info("session started",
		"difficulty", difficulty,
		"coins", cfg.Game.StartingCoins,
		"plain", cfg.UI.Plain)

	if cfg.UI.Plain {
		return cli.NewDriver(session, cli.NewPlain(), logger).Run()
	}
	return tui.Run(session, logger)
}

// setupLogger writes logs to the configured file so they never fight the
// game screen for the terminal.
func setupLogger(cfg *config.Config) (*log.Logger, func(), error) {
	file, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, func() { _ = file.Close() }, nil
}
