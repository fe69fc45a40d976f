package game

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ochko/internal/deck"
	"github.com/lox/ochko/internal/randutil"
)

// DefaultStartingCoins is the balance each side begins a session with
const DefaultStartingCoins = 100

// Options configures a new session. Zero values fall back to sensible
// defaults so callers only set what they care about.
type Options struct {
	HumanName     string
	BotName       string
	StartingCoins int
	Difficulty    Difficulty
	Pace          time.Duration // pause after each bot draw
	RNG           *rand.Rand
	Clock         quartz.Clock
	Logger        *log.Logger
}

// Session holds everything that persists across rounds: the deck, both
// participants with their balances and counters, and the difficulty used to
// build bot agents. Hands and the bet are per-round.
type Session struct {
	Human *Player
	Bot   *Player
	Deck  *deck.Deck

	difficulty Difficulty
	botAgent   *BotAgent
	rng        *rand.Rand
	clock      quartz.Clock
	pace       time.Duration
	logger     *log.Logger
}

// NewSession creates a session with a fresh shuffled deck and two
// participants at the starting balance.
func NewSession(opts Options) *Session {
	if opts.HumanName == "" {
		opts.HumanName = "Player"
	}
	if opts.BotName == "" {
		opts.BotName = "Bot"
	}
	if opts.StartingCoins == 0 {
		opts.StartingCoins = DefaultStartingCoins
	}
	if opts.RNG == nil {
		opts.RNG = randutil.NewFromTime()
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Session{
		Human:      NewPlayer(opts.HumanName, opts.StartingCoins),
		Bot:        NewPlayer(opts.BotName, opts.StartingCoins),
		Deck:       deck.New(opts.RNG),
		difficulty: opts.Difficulty,
		rng:        opts.RNG,
		clock:      opts.Clock,
		pace:       opts.Pace,
		logger:     opts.Logger.WithPrefix("session"),
	}
	s.botAgent = NewBotAgent(s.difficulty, s.rng, s.clock, s.pace, opts.Logger)
	return s
}

// Difficulty returns the session's current difficulty tier
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// SetDifficulty rebuilds the bot agent at the given tier. The bot player's
// coins and counters carry over.
func (s *Session) SetDifficulty(d Difficulty) {
	s.difficulty = d
	s.botAgent = NewBotAgent(d, s.rng, s.clock, s.pace, s.logger)
	s.logger.Info("difficulty changed", "difficulty", d)
}

// GrantCoins adds an arbitrary amount to the human's balance. The balance
// never goes below zero. Debug affordance.
func (s *Session) GrantCoins(amount int) {
	s.Human.Coins += amount
	if s.Human.Coins < 0 {
		s.Human.Coins = 0
	}
	s.logger.Info("coins granted", "amount", amount, "balance", s.Human.Coins)
}

// RemainingCards returns the undrawn pool. Debug affordance.
func (s *Session) RemainingCards() []deck.Card {
	return s.Deck.Pool()
}

// BotCards returns the bot's current hand. Debug affordance.
func (s *Session) BotCards() []deck.Card {
	return s.Bot.Hand.Cards()
}

// NarrowDeckToHeld shrinks the deck to only the cards currently held by
// either side. The deck may run out on the very next draw afterwards, which
// is the point. Debug affordance.
func (s *Session) NarrowDeckToHeld() {
	held := append(s.Human.Hand.Cards(), s.Bot.Hand.Cards()...)
	s.Deck.KeepOnly(held)
	s.logger.Info("deck narrowed to held cards", "held", len(held))
}
