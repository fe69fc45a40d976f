package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ochko/internal/deck"
)

// Difficulty selects the bot's draw threshold and bet range
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// String returns the string representation of a difficulty
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty parses a difficulty name
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("invalid difficulty %q", s)
	}
}

// threshold is the minimum safe fraction the bot demands before drawing
// below the stand score. A higher threshold means a more conservative bot.
func (d Difficulty) threshold() float64 {
	switch d {
	case Easy:
		return 0.20
	case Hard:
		return 0.50
	default:
		return 0.35
	}
}

// betRange is the inclusive range the bot picks its bet from
func (d Difficulty) betRange() (min, max int) {
	switch d {
	case Easy:
		return 5, 15
	case Hard:
		return 20, 50
	default:
		return 10, 30
	}
}

// standScore is the score at or above which the bot always stands
const standScore = 17

// BotAgent draws on a probabilistic policy: hit while the score is below 17
// and the fraction of undrawn cards that would not bust the hand beats the
// difficulty threshold.
type BotAgent struct {
	difficulty Difficulty
	rng        *rand.Rand
	clock      quartz.Clock
	pace       time.Duration
	logger     *log.Logger
}

// NewBotAgent creates a bot agent. The clock drives the pacing pause after
// each draw so tests can run with a zero pace or a mocked clock.
func NewBotAgent(difficulty Difficulty, rng *rand.Rand, clock quartz.Clock, pace time.Duration, logger *log.Logger) *BotAgent {
	return &BotAgent{
		difficulty: difficulty,
		rng:        rng,
		clock:      clock,
		pace:       pace,
		logger:     logger.WithPrefix("bot"),
	}
}

// Difficulty returns the agent's difficulty tier
func (b *BotAgent) Difficulty() Difficulty {
	return b.difficulty
}

// Decide hits while score < 17 and the safe fraction clears the threshold
func (b *BotAgent) Decide(view TurnView) Decision {
	if view.Score >= standScore {
		return Stand
	}
	fraction := safeFraction(view.Score, view.Remaining)
	b.logger.Debug("evaluating draw",
		"score", view.Score,
		"safeFraction", fraction,
		"threshold", b.difficulty.threshold())
	if fraction > b.difficulty.threshold() {
		return Hit
	}
	return Stand
}

// ChooseBet picks a uniform bet from the difficulty's range, clamped so it
// never exceeds what either side can cover.
func (b *BotAgent) ChooseBet(view BetView) int {
	min, max := b.difficulty.betRange()
	bet := min + b.rng.IntN(max-min+1)
	if bet > view.Coins {
		bet = view.Coins
	}
	if bet > view.OpponentCoins {
		bet = view.OpponentCoins
	}
	return bet
}

// Pace blocks for the configured pause after a draw. Turn order is
// preserved because the engine calls this synchronously.
func (b *BotAgent) Pace() {
	if b.pace <= 0 {
		return
	}
	done := make(chan struct{})
	timer := b.clock.AfterFunc(b.pace, func() {
		close(done)
	})
	defer timer.Stop()
	<-done
}

// safeFraction returns the fraction of undrawn cards that would not bust a
// hand at the given score. An undrawn ace counts as 1 when that keeps the
// total at or under the limit - an estimate only, never actual scoring.
func safeFraction(score int, pool []deck.Card) float64 {
	if len(pool) == 0 {
		return 0
	}
	safe := 0
	for _, c := range pool {
		if wouldNotBust(score, c) {
			safe++
		}
	}
	return float64(safe) / float64(len(pool))
}

func wouldNotBust(score int, c deck.Card) bool {
	value := c.Points()
	if c.IsAce() && score+1 <= BustLimit {
		value = 1
	}
	return score+value <= BustLimit
}
