package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ochko/internal/randutil"
)

func testBot(t *testing.T, d Difficulty) *BotAgent {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewBotAgent(d, randutil.New(1), quartz.NewReal(), 0, logger)
}

func TestBotNeverDrawsAtStandScore(t *testing.T) {
	bot := testBot(t, Easy)

	// Even with a pool of guaranteed-safe cards the bot stands at 17+.
	safePool := mustCards(t, "JsJhJdJc")
	for score := 17; score <= 25; score++ {
		view := TurnView{Score: score, Remaining: safePool}
		assert.Equal(t, Stand, bot.Decide(view), "score %d", score)
	}
}

func TestBotDrawsOnGoodOdds(t *testing.T) {
	bot := testBot(t, Normal)

	view := TurnView{Score: 13, Remaining: mustCards(t, "6s6h6d6c")}
	assert.Equal(t, Hit, bot.Decide(view))
}

func TestBotStandsOnPoorOdds(t *testing.T) {
	bot := testBot(t, Normal)

	// Every remaining ten busts a 16.
	view := TurnView{Score: 16, Remaining: mustCards(t, "TsThTdTc")}
	assert.Equal(t, Stand, bot.Decide(view))
}

func TestBotStandsOnEmptyPool(t *testing.T) {
	bot := testBot(t, Easy)
	view := TurnView{Score: 10, Remaining: nil}
	assert.Equal(t, Stand, bot.Decide(view))
}

func TestDifficultyThresholds(t *testing.T) {
	// One safe card (ace as 1) out of four: fraction 0.25. Only the easy
	// bot takes those odds.
	quarter := TurnView{Score: 16, Remaining: mustCards(t, "AsThTdTc")}
	assert.Equal(t, Hit, testBot(t, Easy).Decide(quarter))
	assert.Equal(t, Stand, testBot(t, Normal).Decide(quarter))
	assert.Equal(t, Stand, testBot(t, Hard).Decide(quarter))

	// Two safe out of four: fraction 0.50 clears easy and normal but not
	// hard, whose threshold demands strictly better than half.
	half := TurnView{Score: 16, Remaining: mustCards(t, "AsAhTdTc")}
	assert.Equal(t, Hit, testBot(t, Easy).Decide(half))
	assert.Equal(t, Hit, testBot(t, Normal).Decide(half))
	assert.Equal(t, Stand, testBot(t, Hard).Decide(half))
}

func TestSafeFractionCountsAceAsOne(t *testing.T) {
	ace := mustCards(t, "As")

	// At 16 an ace drawn counts as 1 for the estimate, keeping 17.
	assert.Equal(t, 1.0, safeFraction(16, ace))

	// At 21 even an ace as 1 busts; the fraction drops to zero.
	assert.Equal(t, 0.0, safeFraction(21, ace))
}

func TestChooseBetWithinRange(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		min, max   int
	}{
		{Easy, 5, 15},
		{Normal, 10, 30},
		{Hard, 20, 50},
	}

	for _, tt := range tests {
		bot := testBot(t, tt.difficulty)
		view := BetView{Coins: 1000, OpponentCoins: 1000}
		for i := 0; i < 200; i++ {
			bet := bot.ChooseBet(view)
			require.GreaterOrEqual(t, bet, tt.min, "difficulty %s", tt.difficulty)
			require.LessOrEqual(t, bet, tt.max, "difficulty %s", tt.difficulty)
		}
	}
}

func TestChooseBetNeverExceedsBalances(t *testing.T) {
	bot := testBot(t, Hard)

	for i := 0; i < 200; i++ {
		bet := bot.ChooseBet(BetView{Coins: 7, OpponentCoins: 1000})
		require.LessOrEqual(t, bet, 7)

		bet = bot.ChooseBet(BetView{Coins: 1000, OpponentCoins: 3})
		require.LessOrEqual(t, bet, 3)
	}
}

func TestPaceZeroReturnsImmediately(t *testing.T) {
	bot := testBot(t, Normal)
	bot.Pace() // must not block
}

func TestPaceWaitsOnClock(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	bot := NewBotAgent(Normal, randutil.New(1), mock, time.Second, logger)

	done := make(chan struct{})
	go func() {
		bot.Pace()
		close(done)
	}()

	call := trap.MustWait(context.Background())
	call.MustRelease(context.Background())

	select {
	case <-done:
		t.Fatal("Pace returned before the clock advanced")
	default:
	}

	mock.Advance(time.Second).MustWait(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pace did not return after the clock advanced")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}
